package render

import (
	"encoding/json"
	"testing"

	"venuehub/pkg/events"
	"venuehub/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, v any) Decoder {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return raw(data)
}

func raw(data []byte) Decoder {
	return func(v any) error { return json.Unmarshal(data, v) }
}

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   any
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "booking confirmed",
			eventType: events.TypeBookingConfirmed,
			payload: events.BookingConfirmed{
				Reference: "K7Q2ZP41M", VenueName: "The Grand Palace",
				CheckInDate: "2024-06-15", DepositPaid: 1700,
			},
			wantTitle: "Booking successful!",
			wantDesc:  "Your booking at The Grand Palace on 2024-06-15 has been confirmed. Reference K7Q2ZP41M, deposit paid $1,700.00.",
		},
		{
			name:      "booking confirmed without details",
			eventType: events.TypeBookingConfirmed,
			payload:   events.BookingConfirmed{},
			wantTitle: "Booking successful!",
			wantDesc:  "Your booking has been confirmed.",
		},
		{
			name:      "booking cancelled",
			eventType: events.TypeBookingCancelled,
			payload:   events.BookingCancelled{Reference: "K7Q2ZP41M"},
			wantTitle: "Booking cancelled",
			wantDesc:  "Your booking has been successfully cancelled.",
		},
		{
			name:      "review",
			eventType: events.TypeReviewCreated,
			payload:   events.ReviewCreated{Rating: 5},
			wantTitle: "Review submitted",
			wantDesc:  "Thank you for sharing your experience!",
		},
		{
			name:      "venue inquiry",
			eventType: events.TypeInquirySubmitted,
			payload:   events.InquirySubmitted{VenueID: "urban-loft", VenueName: "Urban Loft"},
			wantTitle: "Message sent",
			wantDesc:  "Your message has been sent to the team at Urban Loft. They will respond to you shortly.",
		},
		{
			name:      "general inquiry",
			eventType: events.TypeInquirySubmitted,
			payload:   events.InquirySubmitted{Email: "ada@example.com"},
			wantTitle: "Message sent successfully",
			wantDesc:  "We'll get back to you as soon as possible.",
		},
		{
			name:      "wishlist added",
			eventType: events.TypeWishlistAdded,
			payload:   events.WishlistChanged{VenueName: "Seaside Villa"},
			wantTitle: "Added to wishlist",
			wantDesc:  "Seaside Villa has been added to your wishlist.",
		},
		{
			name:      "wishlist removed",
			eventType: events.TypeWishlistRemoved,
			payload:   events.WishlistChanged{VenueID: "seaside-villa"},
			wantTitle: "Removed from wishlist",
			wantDesc:  "The venue has been removed from your wishlist.",
		},
		{
			name:      "profile updated",
			eventType: events.TypeProfileUpdated,
			payload:   events.ProfileUpdated{Fields: []string{"phone"}},
			wantTitle: "Profile updated",
			wantDesc:  "Your profile has been updated successfully.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast, err := Render(tt.eventType, payload(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, toast.Title)
			assert.Equal(t, tt.wantDesc, toast.Description)
			assert.Equal(t, model.NotificationVariantDefault, toast.Variant)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := Render("venue.deleted", raw([]byte(`{}`)))
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = Render(events.TypeWishlistAdded, raw([]byte(`{"venue_name":`)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownEvent)
}
