package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-specific errors below wrap it so callers can match the whole
	// class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a task ID is zero or negative.
	ErrInvalidID = fmt.Errorf("%w: invalid task id", ErrValidation)

	// ErrEmptyTaskType is returned when a task is created without a type.
	ErrEmptyTaskType = fmt.Errorf("%w: task_type cannot be empty", ErrValidation)

	// ErrEmptyAssignedTo is returned when a task is created without an assignee.
	ErrEmptyAssignedTo = fmt.Errorf("%w: assigned_to cannot be empty", ErrValidation)

	// ErrEmptyStatus is returned when a status update carries an empty status.
	ErrEmptyStatus = fmt.Errorf("%w: status cannot be empty", ErrValidation)

	// ErrEmptyEventType is returned when a log event is recorded without a type.
	ErrEmptyEventType = fmt.Errorf("%w: event_type cannot be empty", ErrValidation)

	// ErrEmptyEventDetails is returned when a log event is recorded without details.
	ErrEmptyEventDetails = fmt.Errorf("%w: details cannot be empty", ErrValidation)
)

// IsValidationError reports whether err is any kind of domain validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
