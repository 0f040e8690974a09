package validator

import (
	"errors"
	"testing"

	"venuehub/internal/bookings/flow"
	"venuehub/pkg/model"
	"venuehub/pkg/validation"
)

var loft = flow.Venue{
	ID:           "urban-loft",
	Name:         "Urban Loft",
	Price:        6200,
	Capacity:     model.Capacity{Min: 75, Max: 220},
	Availability: []string{"2024-06-22", "2024-07-06"},
}

func validDetails() flow.Details {
	return flow.Details{
		Date:   "2024-06-22",
		Guests: 100,
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  "+16502530000",
	}
}

func TestValidateDetails(t *testing.T) {
	v := NewBookingValidator()

	tests := []struct {
		name       string
		mutate     func(d *flow.Details)
		wantFields []string
	}{
		{name: "valid", mutate: func(*flow.Details) {}},
		{name: "missing phone", mutate: func(d *flow.Details) { d.Phone = "" }, wantFields: []string{"phone"}},
		{name: "bad email", mutate: func(d *flow.Details) { d.Email = "ada" }, wantFields: []string{"email"}},
		{name: "zero guests", mutate: func(d *flow.Details) { d.Guests = 0 }, wantFields: []string{"guests"}},
		{name: "unavailable date", mutate: func(d *flow.Details) { d.Date = "2024-06-23" }, wantFields: []string{"date"}},
		{name: "over capacity", mutate: func(d *flow.Details) { d.Guests = 221 }, wantFields: []string{"guests"}},
		{
			name:       "under capacity on an unavailable date",
			mutate:     func(d *flow.Details) { d.Guests = 10; d.Date = "2025-01-01" },
			wantFields: []string{"date", "guests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			err := v.ValidateDetails(d, loft)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("got %v, want fields %v", verrs, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if verrs[i].Field != f {
					t.Errorf("error %d field = %s, want %s", i, verrs[i].Field, f)
				}
			}
			if !IsValidationError(err) {
				t.Errorf("IsValidationError() = false")
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	v := NewBookingValidator()
	b := &model.Booking{
		UserID:       "user-1",
		VenueID:      "urban-loft",
		VenueName:    "Urban Loft",
		CheckInDate:  "2024-06-22",
		CheckOutDate: "2024-06-23",
		Guests:       100,
		TotalPrice:   6200,
		DepositPaid:  1240,
		Reference:    "K7Q2ZP41M",
		Status:       model.BookingStatusConfirmed,
		ContactName:  "Ada Lovelace",
		ContactEmail: "ada@example.com",
		ContactPhone: "+16502530000",
	}
	if err := v.ValidateBooking(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Reference = "k7q2zp41m"
	b.DepositPaid = 9000
	err := v.ValidateBooking(b)
	var verrs validation.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Fatalf("expected reference and deposit errors, got %v", err)
	}
}
