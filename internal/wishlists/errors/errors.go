package errors

import "errors"

var (
	ErrNotFound = errors.New("wishlist item not found")

	ErrAlreadySaved = errors.New("venue already in wishlist")

	ErrVenueNotFound = errors.New("venue not found")
)
