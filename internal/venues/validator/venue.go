package validator

import (
	"venuehub/pkg/model"
	"venuehub/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type VenueValidator struct {
	validate *validator.Validate
}

func NewVenueValidator() *VenueValidator {
	return &VenueValidator{
		validate: validation.New(),
	}
}

func (v *VenueValidator) ValidateReview(review *model.Review) error {
	return validation.Struct(v.validate, review)
}

func (v *VenueValidator) ValidateInquiry(inquiry *model.Inquiry) error {
	return validation.Struct(v.validate, inquiry)
}
