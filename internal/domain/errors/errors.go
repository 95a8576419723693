package errors

import (
	"net/http"

	"nagarsetu/internal/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Route-related errors
	ErrRouteStartMissing = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_START_MISSING",
		"a start address or start coordinates are required",
		"",
	)

	ErrRouteInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_INVALID_COORDINATE",
		"coordinates are out of range",
		"",
	)

	ErrRouteInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_INVALID_INPUT",
		"route input is invalid",
		"",
	)

	// Report-related errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"report not found",
		"",
	)

	ErrReportNotActionable = NewBaseError(
		http.StatusUnprocessableEntity,
		"REPORT_NOT_ACTIONABLE",
		"report does not need collection",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_STATUS_TRANSITION",
		"report status cannot change that way",
		"",
	)

	// Geocoding-related errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOCODING_FAILED",
		"could not resolve the location",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
