// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application. Handlers map these to
// HTTP status codes exactly once, at the API boundary.
var (
	// ErrValidation is returned when input fails a field-level rule.
	// Maps to 422.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when a business rule involving uniqueness or
	// referential integrity is violated. Maps to 400.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when a requested entity does not exist.
	// Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when credentials are missing, invalid,
	// expired, or reference an unknown or inactive user. Maps to 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated user lacks the role or
	// ownership required for an operation. Maps to 403.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries the user-facing message for a failed field rule.
// It wraps ErrValidation so callers can match the whole category with
// errors.Is.
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

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError carries the user-facing message for a violated business rule.
// It wraps ErrConflict.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError carries the user-facing message for a missing entity.
// It wraps ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ForbiddenError carries the user-facing message for an authorization
// failure. It wraps ErrForbidden.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a ForbiddenError with the given message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}
