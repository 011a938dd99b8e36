package pattern

import (
	"errors"
	"fmt"
)

// ErrUnknownPattern is matched by every *UnknownPatternError.
var ErrUnknownPattern = errors.New("unknown pattern")

// ValidationError reports a malformed constructor argument.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func newValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownPatternError is returned by the registry for names it does not know.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("%q is not associated with any lighting configurations", e.Name)
}

func (e *UnknownPatternError) Is(target error) bool {
	return target == ErrUnknownPattern
}
