package services

import (
	"errors"
	"fmt"
)

// ===== SERVICE ERROR TYPES =====

// NotFoundError means a referenced entity (or a required non-empty result
// set) does not exist.
type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError means the request collides with existing state (duplicate
// email at signup).
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidCredentialsError covers failed login and wrong current password.
type InvalidCredentialsError struct {
	Message string
}

func NewInvalidCredentialsError(message string) *InvalidCredentialsError {
	return &InvalidCredentialsError{Message: message}
}

func (e *InvalidCredentialsError) Error() string {
	return e.Message
}

// ValidationError is a single failed business rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ===== CLASSIFIERS =====

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsInvalidCredentials(err error) bool {
	var ic *InvalidCredentialsError
	return errors.As(err, &ic)
}
