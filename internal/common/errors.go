// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates an operation referenced a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig indicates the configuration could not be used as given.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports user input that failed validation, naming the
// offending field. A failed validation never partially applies: callers must
// leave prior state untouched when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
