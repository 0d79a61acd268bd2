// Package apperrors defines the typed failure results the core returns to
// the HTTP layer. Validation and transition failures are recoverable and
// never escape as panics; network failures are the only class allowed to
// degrade functionality.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed registrar input. Recoverable, reported
// inline, never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidTransitionError reports a state-machine action that the current
// status does not allow. The appointment is left unchanged.
type InvalidTransitionError struct {
	Action string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %q is not allowed from status %q", e.Action, e.Status)
}

// NotFoundError reports a missing service, provider or patient reference.
// Callers fall back to a safe default and surface a warning.
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

// ConflictError reports a uniqueness conflict, e.g. a duplicate patient
// phone on create. The existing record is attached when it was recovered.
type ConflictError struct {
	Kind     string
	Ref      string
	Existing interface{}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Ref)
}

// NetworkError wraps a failed storage or transport operation. Reads degrade
// to the last-known-good snapshot; writes surface as retryable and are never
// retried automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var v *InvalidTransitionError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var v *ConflictError
	return errors.As(err, &v)
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var v *NetworkError
	return errors.As(err, &v)
}
