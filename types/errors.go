package types

import (
	errs "errors"
)

var (
	// ErrNotFound is returned when a record does not exist or belongs to
	// another owner. Callers cannot tell the two apart.
	ErrNotFound = errs.New("not found")
	// ErrInvalidInput is returned for unparseable numeric fields.
	ErrInvalidInput = errs.New("invalid input")
)

// ValidationError describes a form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field string, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
