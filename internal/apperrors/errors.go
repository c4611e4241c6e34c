// Package apperrors defines the error taxonomy shared by services and
// handlers. Errors are built by wrapping one of the sentinel values so
// callers can classify with errors.Is while keeping the message specific.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrCycle      = errors.New("cycle detected")
	ErrConstraint = errors.New("constraint violation")
	ErrStore      = errors.New("store failure")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Cyclef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCycle, fmt.Sprintf(format, args...))
}

func Constraintf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConstraint, fmt.Sprintf(format, args...))
}

// Storef wraps an underlying persistence error. The cause stays in the
// chain so callers can still unwrap driver errors when needed.
func Storef(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, fmt.Sprintf(format, args...), err)
}
