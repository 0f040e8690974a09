package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID          string    `json:"user_id" bson:"user_id" validate:"required"`
	VenueID         string    `json:"venue_id" bson:"venue_id" validate:"required"`
	VenueName       string    `json:"venue_name" bson:"venue_name" validate:"required"`
	VenueImage      string    `json:"venue_image" bson:"venue_image"`
	VenueCity       string    `json:"venue_city" bson:"venue_city"`
	CheckInDate     string    `json:"check_in_date" bson:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string    `json:"check_out_date" bson:"check_out_date" validate:"required,datetime=2006-01-02"`
	Guests          int       `json:"guests" bson:"guests" validate:"required,min=1"`
	TotalPrice      float64   `json:"total_price" bson:"total_price" validate:"gte=0"`
	DepositPaid     float64   `json:"deposit_paid" bson:"deposit_paid" validate:"gte=0,ltefield=TotalPrice"`
	Reference       string    `json:"reference" bson:"reference" validate:"required,len=9,alphanum,uppercase"`
	Status          string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	ContactName     string    `json:"contact_name" bson:"contact_name" validate:"required,min=2,max=100"`
	ContactEmail    string    `json:"contact_email" bson:"contact_email" validate:"required,email"`
	ContactPhone    string    `json:"contact_phone" bson:"contact_phone" validate:"required,e164"`
	SpecialRequests string    `json:"special_requests,omitempty" bson:"special_requests,omitempty" validate:"max=1000"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
