package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrNotFound signals that a requested entity does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidationFailed signals one or more violated business rules.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDataOperation wraps lower-level I/O or (de)serialization failures.
	ErrDataOperation = errors.New("data operation failed")

	// ErrInvalidArgument signals a nil or blank required parameter,
	// detected before any I/O takes place.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError represents application-specific errors with additional context
type DomainError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *DomainError) WithDetails(details map[string]interface{}) *DomainError {
	e.Details = details
	return e
}

// NewNotFoundError creates a not-found error naming the entity type and
// the identifier or business key that was looked up.
func NewNotFoundError(entityType, key string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with identifier '%s' was not found", entityType, key),
		Details: map[string]interface{}{"entityType": entityType, "key": key},
	}
}

// NewValidationError aggregates one or more rule violations into a single
// error. The messages are joined so the caller sees every violation at once.
func NewValidationError(messages ...string) error {
	return &DomainError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf("validation failed: %s", strings.Join(messages, "; ")),
		Details: map[string]interface{}{"violations": messages},
	}
}

// NewDataOperationError wraps an unexpected lower-level failure. The cause
// stays visible in the message; errors.Is still matches ErrDataOperation.
func NewDataOperationError(message string, cause error) error {
	msg := message
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", message, cause)
	}
	return &DomainError{
		Err:     ErrDataOperation,
		Message: msg,
		Details: map[string]interface{}{"cause": cause},
	}
}

// NewInvalidArgumentError creates an error for a nil or blank required parameter.
func NewInvalidArgumentError(name string) error {
	return &DomainError{
		Err:     ErrInvalidArgument,
		Message: fmt.Sprintf("invalid argument: %s is required", name),
	}
}

// IsNotFound reports whether err is (or wraps) a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsDomain reports whether err belongs to the expected error taxonomy
// (not found, validation, invalid argument) as opposed to an unexpected failure.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidArgument)
}
