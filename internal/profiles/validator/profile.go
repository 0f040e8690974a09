package validator

import (
	"venuehub/pkg/model"
	"venuehub/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ProfileValidator struct {
	validate *validator.Validate
}

func NewProfileValidator() *ProfileValidator {
	return &ProfileValidator{
		validate: validation.New(),
	}
}

func (v *ProfileValidator) ValidateProfile(p *model.Profile) error {
	return validation.Struct(v.validate, p)
}

// profileChanges holds the values of an update. Unset and cleared fields
// are both empty here, and omitempty lets either through.
type profileChanges struct {
	FullName  string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

func (v *ProfileValidator) ValidateUpdate(u *model.ProfileUpdate) error {
	return validation.Struct(v.validate, profileChanges{
		FullName:  deref(u.FullName),
		Phone:     deref(u.Phone),
		AvatarURL: deref(u.AvatarURL),
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
