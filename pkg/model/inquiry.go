package model

import "time"

// Inquiry is a contact request, either about one venue or to the site team.
type Inquiry struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	VenueID   string    `json:"venue_id,omitempty" bson:"venue_id,omitempty"`
	VenueName string    `json:"venue_name,omitempty" bson:"venue_name,omitempty"`
	UserID    string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Date      string    `json:"date,omitempty" bson:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Message   string    `json:"message" bson:"message" validate:"required,min=10,max=2000"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
