package validator

import (
	"errors"
	"strings"
	"testing"

	"venuehub/pkg/model"
	"venuehub/pkg/validation"
)

func validReview() *model.Review {
	return &model.Review{
		VenueID:  "grand-palace",
		UserID:   "user-1",
		UserName: "Ada Lovelace",
		Rating:   5,
		Comment:  "Stunning ballroom.",
		Date:     "2024-06-20",
	}
}

func TestValidateReview(t *testing.T) {
	v := NewVenueValidator()

	tests := []struct {
		name      string
		mutate    func(r *model.Review)
		wantField string
	}{
		{name: "valid", mutate: func(*model.Review) {}},
		{name: "rating too low", mutate: func(r *model.Review) { r.Rating = 0 }, wantField: "rating"},
		{name: "rating too high", mutate: func(r *model.Review) { r.Rating = 6 }, wantField: "rating"},
		{name: "comment too short", mutate: func(r *model.Review) { r.Comment = "ok" }, wantField: "comment"},
		{name: "comment too long", mutate: func(r *model.Review) { r.Comment = strings.Repeat("a", 501) }, wantField: "comment"},
		{name: "missing user name", mutate: func(r *model.Review) { r.UserName = "" }, wantField: "user_name"},
		{name: "bad date", mutate: func(r *model.Review) { r.Date = "June 20" }, wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReview()
			tt.mutate(r)
			err := v.ValidateReview(r)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) || len(verrs) != 1 || verrs[0].Field != tt.wantField {
				t.Fatalf("expected a single %s error, got %v", tt.wantField, err)
			}
		})
	}
}

func TestValidateInquiry(t *testing.T) {
	v := NewVenueValidator()

	tests := []struct {
		name    string
		inquiry model.Inquiry
		wantErr bool
	}{
		{
			name:    "general contact",
			inquiry: model.Inquiry{Name: "Ada", Email: "ada@example.com", Message: "Do you host weddings?"},
		},
		{
			name:    "venue inquiry with phone and date",
			inquiry: model.Inquiry{VenueID: "urban-loft", Name: "Ada", Email: "ada@example.com", Phone: "+16502530000", Date: "2024-07-01", Message: "Is the loft free that day?"},
		},
		{
			name:    "message too short",
			inquiry: model.Inquiry{Name: "Ada", Email: "ada@example.com", Message: "hi"},
			wantErr: true,
		},
		{
			name:    "bad email",
			inquiry: model.Inquiry{Name: "Ada", Email: "ada", Message: "Do you host weddings?"},
			wantErr: true,
		},
		{
			name:    "unnormalized phone",
			inquiry: model.Inquiry{Name: "Ada", Email: "ada@example.com", Phone: "555 0100", Message: "Do you host weddings?"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInquiry(&tt.inquiry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateInquiry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
