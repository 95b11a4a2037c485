package calculation

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Match them with errors.Is.
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidCount        = errors.New("invalid count")
	ErrUnsupportedYear     = errors.New("unsupported year")
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
)

// ValidationError reports an input rejected before any calculation ran
type ValidationError struct {
	Kind    error
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s, got %v", e.Kind, e.Field, e.Message, e.Value)
}

// Unwrap exposes the kind. An invalid count is also an invalid amount.
func (e *ValidationError) Unwrap() []error {
	if e.Kind == ErrInvalidCount {
		return []error{ErrInvalidCount, ErrInvalidAmount}
	}
	return []error{e.Kind}
}

func newValidationError(kind error, field string, value any, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value, Message: message}
}
