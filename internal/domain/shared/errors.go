// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
// Every failure the rules layer reports maps onto exactly one of these kinds;
// the transport layer translates them to HTTP status codes.
var (
	// ErrNotFound - the referenced entity id does not resolve.
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden - the actor lacks the role or ownership required.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation - malformed or incomplete input.
	ErrValidation = errors.New("validation error")

	// ErrConflict - the operation would duplicate an existing entity.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState - the operation is not permitted in the entity's current status.
	ErrInvalidState = errors.New("invalid state")

	// ErrCapacityExceeded - the activity's participant cap is reached.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "activity", "registration", "complaint"
	Op      string // Operation that failed, e.g., "Create", "Update"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConflict checks if the error is a duplicate-entity error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInvalidState checks if the error is a status-precondition error.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsCapacityExceeded checks if the error is a participant-cap error.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}
