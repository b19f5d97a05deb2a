package domain

import (
	"errors"
	"fmt"
)

// Application-level rejections raised before any storage call is made.
var (
	// ErrInvalidRequest is returned when an identifier or scalar input is not
	// valid for its storage type (non-numeric id, limit, page or vote delta).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrIncompleteBody is returned when a create payload is missing one of
	// its required fields.
	ErrIncompleteBody = errors.New("incomplete body")

	// ErrBadSort is returned when a sort column or sort order is not in the
	// allow-list for the resource.
	ErrBadSort = errors.New("bad sort")
)

// ValidationError describes which input failed validation. It wraps one of
// the sentinel errors above so callers can branch with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
}

// Unwrap returns the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
