package model

import "time"

type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty" yaml:"id"`
	VenueID   string    `json:"venue_id,omitempty" bson:"venue_id,omitempty" yaml:"-" validate:"required"`
	UserID    string    `json:"user_id" bson:"user_id" yaml:"user_id" validate:"required"`
	UserName  string    `json:"user_name" bson:"user_name" yaml:"user_name" validate:"required,max=100"`
	Rating    int       `json:"rating" bson:"rating" yaml:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" bson:"comment" yaml:"comment" validate:"required,min=3,max=500"`
	Date      string    `json:"date" bson:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"-"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
