package errors

import (
	"net/http"

	"guidematch/internal/errors"
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
	// Validation errors. Messages mirror the public API responses and are
	// checked before any persistence attempt.
	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"Email and password are required",
		"",
	)

	ErrInvalidBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BODY",
		"Invalid request body",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters long",
		"",
	)

	// Conflict errors
	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"User with this email already exists",
		"",
	)

	// Authentication errors. One generic message for both unknown-email and
	// wrong-password paths so the response cannot be used to enumerate users.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue access token",
		"",
	)

	// Not-found errors
	ErrGuideNotFound = NewBaseError(
		http.StatusNotFound,
		"GUIDE_NOT_FOUND",
		"Guide not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
