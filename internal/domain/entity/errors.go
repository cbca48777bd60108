package entity

import (
	"fmt"

	"gsale/internal/errors"
)

// Sentinel errors shared by all aggregates.
var (
	// ErrInvalidTransition is returned when a state-machine guard rejects
	// an operation for the entity's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingArgument is returned when a required operation argument is
	// empty.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrValidation is the target for all entity validation failures; use
	// errors.Is against it and errors.As to recover the ValidationError.
	ErrValidation = errors.New("entity validation failed")
)

// ValidationError reports a malformed or out-of-range field found during
// construction or update. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
