package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("validation failed")
)
