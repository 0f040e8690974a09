package errors

import "errors"

var (
	ErrNotFound = errors.New("profile not found")

	ErrAlreadyExists = errors.New("profile already exists")
)
