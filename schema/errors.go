package schema

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the server, the background workers and the client.
// Concrete errors wrap one of these so callers can classify them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrPermission   = errors.New("permission denied")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrNetwork      = errors.New("network error")
)

// NewValidationError wraps ErrValidation with a readable reason
func NewValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewPermissionError wraps ErrPermission with a readable reason
func NewPermissionError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPermission, fmt.Sprintf(format, args...))
}

// NewInvalidStateError wraps ErrInvalidState with a readable reason
func NewInvalidStateError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// NewNotFoundError wraps ErrNotFound with the kind of the missing entity
func NewNotFoundError(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// NewConflictError wraps ErrConflict with a readable reason
func NewConflictError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
