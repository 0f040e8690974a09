// Package events defines the domain events venuehub services emit and the
// publishers that deliver them.
package events

import (
	"context"
	"time"

	"venuehub/pkg/logger"
)

const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeReviewCreated    = "review.created"
	TypeInquirySubmitted = "inquiry.submitted"
	TypeWishlistAdded    = "wishlist.added"
	TypeWishlistRemoved  = "wishlist.removed"
	TypeProfileUpdated   = "profile.updated"

	SchemaVersion = "1"
)

// Event is one domain fact. UserID keys the message so a user's events stay
// ordered. An empty ID gets a random one when published.
type Event struct {
	ID      string
	Type    string
	UserID  string
	Payload any
}

type BookingConfirmed struct {
	BookingID    string  `json:"booking_id"`
	Reference    string  `json:"reference"`
	UserID       string  `json:"user_id"`
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	CheckInDate  string  `json:"check_in_date"`
	Guests       int     `json:"guests"`
	TotalPrice   float64 `json:"total_price"`
	DepositPaid  float64 `json:"deposit_paid"`
	ContactEmail string  `json:"contact_email"`
}

type BookingCancelled struct {
	BookingID string `json:"booking_id"`
	Reference string `json:"reference"`
	UserID    string `json:"user_id"`
	VenueID   string `json:"venue_id"`
	VenueName string `json:"venue_name"`
}

type ReviewCreated struct {
	ReviewID string `json:"review_id"`
	VenueID  string `json:"venue_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
}

// InquirySubmitted covers both venue inquiries and general contact messages.
// VenueID is empty for the latter.
type InquirySubmitted struct {
	InquiryID string `json:"inquiry_id"`
	VenueID   string `json:"venue_id,omitempty"`
	VenueName string `json:"venue_name,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email"`
}

type WishlistChanged struct {
	UserID    string `json:"user_id"`
	VenueID   string `json:"venue_id"`
	VenueName string `json:"venue_name,omitempty"`
}

type ProfileUpdated struct {
	UserID string   `json:"user_id"`
	Fields []string `json:"fields"`
}

// Publisher delivers events to the bus.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Pinger is implemented by publishers backed by a remote bus.
type Pinger interface {
	Ping(ctx context.Context) error
}

const emitTimeout = 5 * time.Second

// Emit publishes e without letting a bus failure fail the caller. The
// request context is detached so a finished response does not cancel the write.
func Emit(ctx context.Context, pub Publisher, log *logger.Logger, e Event) {
	if pub == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
	defer cancel()

	if err := pub.Publish(ctx, e); err != nil {
		log.Error("Failed to publish event",
			"event_type", e.Type,
			"user_id", e.UserID,
			"error", err,
		)
	}
}
