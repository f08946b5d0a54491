package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound          = errors.New("server not found")
	ErrServerNameAlreadyExists = errors.New("server name already exists")
	ErrViewNotFound            = errors.New("view not found")
)

// ValidationError marks a malformed record draft rejected before it
// reaches the persistence layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field string, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// TransportError wraps a failure to reach or understand the backing
// store (network, driver, deserialization).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error in %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(op string, err error) error {
	return &TransportError{
		Op:  op,
		Err: err,
	}
}
