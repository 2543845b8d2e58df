package domain

import "errors"

// Error kinds surfaced by the warehouse core. Store-level failures are not
// translated; they propagate as wrapped driver errors.
var (
	// ErrNotFound means a referenced warehouse entry or unit record is absent.
	ErrNotFound = errors.New("record not found")

	// ErrValidation means an id or field in the request is missing or malformed.
	ErrValidation = errors.New("validation failed")
)
