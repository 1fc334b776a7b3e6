package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the headerlines library

var (
	// ErrClosed indicates that an operation was attempted on an ended line or block
	ErrClosed = errors.New("resource is closed")

	// ErrInvalidContent indicates that written content was rejected by a validation check
	ErrInvalidContent = errors.New("invalid content")
)

// ValidationError describes a value rejected by one of the library's checks.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint sets the hint and returns e for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match ErrInvalidContent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidContent
}

// IsClosed returns true if the error reports use of an ended line or block
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsInvalidContent returns true if the error reports rejected content
func IsInvalidContent(err error) bool {
	return errors.Is(err, ErrInvalidContent)
}
