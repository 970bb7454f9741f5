package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrConflict     = errors.New("already exists")
)

// ValidationError reports missing or malformed input. Its message is safe to
// return to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a failed query or connection. The wrapped driver error is
// for logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
