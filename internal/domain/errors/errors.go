package errors

import (
	"net/http"

	"unifeast/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithCause attaches the underlying error. The result still matches e through errors.Is
// and answers errors.Is and errors.As for the cause; the cause never reaches Details.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e, cause: errors.WithStack(cause)}
}

// causedError is a BaseError carrying the error that triggered it.
type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.BaseError.Error() + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_CREATION_FAILED",
		"Failed to create profile",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid profile data",
		"",
	)

	// Catalog-related errors
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"The menu is temporarily unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendError reports a transport, credential, throttling or timeout failure of a
// profile store. It is never retried by the core and never treated as absence.
type BackendError struct {
	store string
	op    string
	err   error
}

// NewBackendError creates a backend error for the given store and operation.
func NewBackendError(store, op string, err error) *BackendError {
	return &BackendError{
		store: store,
		op:    op,
		err:   err,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.err == nil {
		return e.store + " " + e.op + " failed"
	}

	return e.store + " " + e.op + " failed: " + e.err.Error()
}

// Unwrap exposes the underlying cause.
func (e *BackendError) Unwrap() error {
	return e.err
}

// Store names the backend that failed.
func (e *BackendError) Store() string {
	return e.store
}

// Op names the operation that failed.
func (e *BackendError) Op() string {
	return e.op
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return "Profile storage is temporarily unavailable"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.store + " " + e.op
}

// IsBackendError reports whether err carries a BackendError anywhere in its chain.
func IsBackendError(err error) bool {
	_, ok := errors.Find[*BackendError](err)

	return ok
}
