package validator

import (
	"venuehub/pkg/model"
	"venuehub/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type WishlistValidator struct {
	validate *validator.Validate
}

func NewWishlistValidator() *WishlistValidator {
	return &WishlistValidator{
		validate: validation.New(),
	}
}

func (v *WishlistValidator) ValidateItem(item *model.WishlistItem) error {
	return validation.Struct(v.validate, item)
}
