package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// Is matches any BaseError carrying the same error code, so errors built with
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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

// Guard failures returned by the access gate and the pre-authentication hook.
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrDeviceRequired = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_REQUIRED",
		"a device identifier is required for this request",
		"",
	)

	ErrDeviceNotRegistered = NewBaseError(
		http.StatusForbidden,
		"DEVICE_NOT_REGISTERED",
		"this device is not registered for the account, sign in again",
		"",
	)

	ErrDeviceLimitExceeded = NewBaseError(
		http.StatusForbidden,
		"DEVICE_LIMIT_EXCEEDED",
		"the account has reached its device limit",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// Device management errors
var (
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	ErrDeviceOwnedByAnotherAccount = NewBaseError(
		http.StatusConflict,
		"DEVICE_OWNED_BY_ANOTHER_ACCOUNT",
		"this device is registered to another account",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	// ErrPublicEnforcement is returned when the gate is invoked for a route declared public.
	ErrPublicEnforcement = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"access gate invoked for a public route",
	)
)

// StoreError signals that the backing store could not answer. It is never an
// authorization outcome: callers must surface it as unavailable, not as denied.
type StoreError struct {
	err       error
	operation string
}

// NewStoreError wraps a store failure for the named operation
func NewStoreError(err error, operation string) AppError {
	return &StoreError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrapf(e.err, "store unavailable during %s", e.operation).Error()
}

// Unwrap exposes the underlying driver error
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "service temporarily unavailable"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.operation
}

// IsStoreError reports whether err carries a StoreError anywhere in its chain.
func IsStoreError(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr)
}
