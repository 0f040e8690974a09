package validator

import (
	"errors"
	"fmt"
	"slices"

	"venuehub/internal/bookings/flow"
	"venuehub/pkg/model"
	"venuehub/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{
		validate: validation.New(),
	}
}

func (v *BookingValidator) ValidateBooking(b *model.Booking) error {
	return validation.Struct(v.validate, b)
}

// ValidateDetails checks the first step's fields and that the venue can
// host them on the chosen date.
func (v *BookingValidator) ValidateDetails(d flow.Details, venue flow.Venue) error {
	if err := validation.Struct(v.validate, &d); err != nil {
		return err
	}
	return v.validateBusinessRules(d, venue)
}

func (v *BookingValidator) validateBusinessRules(d flow.Details, venue flow.Venue) error {
	var errs validation.ValidationErrors

	if !slices.Contains(venue.Availability, d.Date) {
		errs = append(errs, validation.ValidationError{
			Field:   "date",
			Message: "is not available at this venue",
		})
	}
	if d.Guests < venue.Capacity.Min || d.Guests > venue.Capacity.Max {
		errs = append(errs, validation.ValidationError{
			Field:   "guests",
			Message: fmt.Sprintf("must be between %d and %d", venue.Capacity.Min, venue.Capacity.Max),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidationError reports whether err came from this validator.
func IsValidationError(err error) bool {
	var verrs validation.ValidationErrors
	return errors.As(err, &verrs)
}
