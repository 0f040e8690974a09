package model

import "time"

// Profile mirrors the account held by the auth provider. ID is the user ID.
type Profile struct {
	ID        string    `json:"id" bson:"_id" validate:"required"`
	FullName  string    `json:"full_name" bson:"full_name" validate:"omitempty,min=2,max=100"`
	AvatarURL string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty" validate:"omitempty,url"`
	Email     string    `json:"email" bson:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate is a partial update. A nil field is left alone; an empty
// string clears it.
type ProfileUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
