package model

import "time"

// WishlistItem is one saved venue. Venue fields are copied at save time.
type WishlistItem struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id" validate:"required"`
	VenueID    string    `json:"venue_id" bson:"venue_id" validate:"required,venue_slug"`
	VenueName  string    `json:"venue_name" bson:"venue_name"`
	VenueImage string    `json:"venue_image" bson:"venue_image"`
	VenueCity  string    `json:"venue_city" bson:"venue_city"`
	VenuePrice float64   `json:"venue_price" bson:"venue_price"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type WishlistInput struct {
	VenueID string `json:"venue_id"`
}
