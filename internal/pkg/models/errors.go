package models

import "errors"

// ErrNotFound reports that a record does not exist or is not visible to the
// caller.
var ErrNotFound = errors.New("record not found")

// ValidationError is a client-input error with a message safe to return to
// the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError constructs a ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
