// Package render turns domain events into user facing toast notifications.
package render

import (
	"errors"
	"fmt"

	"venuehub/internal/bookings/receipt"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
)

var ErrUnknownEvent = errors.New("no notification for event type")

// Toast is the visible part of a notification.
type Toast struct {
	Title       string
	Description string
	Variant     string
}

// Decoder unmarshals an event payload into v.
type Decoder func(v any) error

type renderer func(decode Decoder) (Toast, error)

var renderers = map[string]renderer{
	events.TypeBookingConfirmed: bookingConfirmed,
	events.TypeBookingCancelled: fixed(Toast{
		Title:       "Booking cancelled",
		Description: "Your booking has been successfully cancelled.",
	}),
	events.TypeReviewCreated: fixed(Toast{
		Title:       "Review submitted",
		Description: "Thank you for sharing your experience!",
	}),
	events.TypeInquirySubmitted: inquirySubmitted,
	events.TypeWishlistAdded:    wishlistAdded,
	events.TypeWishlistRemoved: fixed(Toast{
		Title:       "Removed from wishlist",
		Description: "The venue has been removed from your wishlist.",
	}),
	events.TypeProfileUpdated: fixed(Toast{
		Title:       "Profile updated",
		Description: "Your profile has been updated successfully.",
	}),
}

// Render builds the toast for one event. Unknown types return ErrUnknownEvent.
func Render(eventType string, decode Decoder) (Toast, error) {
	r, ok := renderers[eventType]
	if !ok {
		return Toast{}, fmt.Errorf("%w: %q", ErrUnknownEvent, eventType)
	}
	t, err := r(decode)
	if err != nil {
		return Toast{}, fmt.Errorf("failed to decode %s payload: %w", eventType, err)
	}
	if t.Variant == "" {
		t.Variant = model.NotificationVariantDefault
	}
	return t, nil
}

func fixed(t Toast) renderer {
	return func(Decoder) (Toast, error) { return t, nil }
}

func bookingConfirmed(decode Decoder) (Toast, error) {
	var e events.BookingConfirmed
	if err := decode(&e); err != nil {
		return Toast{}, err
	}
	description := "Your booking has been confirmed."
	if e.Reference != "" && e.VenueName != "" {
		description = fmt.Sprintf("Your booking at %s on %s has been confirmed. Reference %s, deposit paid %s.",
			e.VenueName, e.CheckInDate, e.Reference, receipt.FormatUSD(e.DepositPaid))
	}
	return Toast{Title: "Booking successful!", Description: description}, nil
}

func inquirySubmitted(decode Decoder) (Toast, error) {
	var e events.InquirySubmitted
	if err := decode(&e); err != nil {
		return Toast{}, err
	}
	if e.VenueName == "" {
		return Toast{
			Title:       "Message sent successfully",
			Description: "We'll get back to you as soon as possible.",
		}, nil
	}
	return Toast{
		Title:       "Message sent",
		Description: fmt.Sprintf("Your message has been sent to the team at %s. They will respond to you shortly.", e.VenueName),
	}, nil
}

func wishlistAdded(decode Decoder) (Toast, error) {
	var e events.WishlistChanged
	if err := decode(&e); err != nil {
		return Toast{}, err
	}
	description := "This venue has been added to your wishlist."
	if e.VenueName != "" {
		description = fmt.Sprintf("%s has been added to your wishlist.", e.VenueName)
	}
	return Toast{Title: "Added to wishlist", Description: description}, nil
}
