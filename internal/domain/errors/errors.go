// Package errors defines the application-level error taxonomy. Every
// failure a request can surface maps to one of the predefined values
// below, which carry the HTTP status code emitted by the delivery
// layer's error funnel.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface implemented by all application errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error value that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage derives an error that surfaces a more specific
// user-facing message while keeping the base error's codes and its
// identity under errors.Is.
func (e *BaseError) WrapMessage(message string) error {
	return errors.WithStack(&detailError{base: e, message: message})
}

// detailError overrides the user-facing message of a BaseError.
type detailError struct {
	base    *BaseError
	message string
}

func (e *detailError) Error() string {
	return e.message
}

func (e *detailError) Unwrap() error {
	return e.base
}

// HTTPCode returns the base error's HTTP status code.
func (e *detailError) HTTPCode() int {
	return e.base.httpCode
}

// ErrorCode returns the base error's business error code.
func (e *detailError) ErrorCode() string {
	return e.base.errorCode
}

// Message returns the overriding user-friendly message.
func (e *detailError) Message() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values.
var (
	// ErrValidation covers missing or empty required fields.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"All fields are required",
	)

	// ErrDuplicateEmail is returned when a registration email already
	// exists, whether caught by the pre-check or by the store's unique
	// constraint.
	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EMAIL",
		"User already exists",
	)

	// ErrInvalidCredentials is deliberately identical for an unknown
	// email and a wrong password so callers cannot tell which failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// ErrUnauthorized covers a missing, malformed or expired token.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authorized",
	)

	// ErrForbidden is returned when an authenticated user is not the
	// owner of the record being mutated.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Not authorized to modify this resource",
	)

	// ErrNotFound covers a malformed id as well as a missing record;
	// the two are intentionally indistinguishable to external callers.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)
)
