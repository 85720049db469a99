// Package errors defines the application errors that cross the usecase/delivery boundary.
package errors

import (
	"net/http"

	"macrolog/internal/errors"
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

// WithMessage returns a copy carrying a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches on the business error code so copies made by WithMessage still
// satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Not authenticated",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Email already registered",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Resources. Cross-user access reports the same not-found errors.
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrFoodEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_ENTRY_NOT_FOUND",
		"Food entry not found",
		"",
	)

	ErrMealPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_PLAN_NOT_FOUND",
		"Meal plan not found",
		"",
	)

	ErrPlannedFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"PLANNED_FOOD_NOT_FOUND",
		"Planned food not found",
		"",
	)

	ErrCustomFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOM_FOOD_NOT_FOUND",
		"Custom food not found",
		"",
	)

	ErrCustomFoodConflict = NewBaseError(
		http.StatusConflict,
		"CUSTOM_FOOD_CONFLICT",
		"A custom food with this name already exists",
		"",
	)

	// Infrastructure
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrArchiveUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"ARCHIVE_UNAVAILABLE",
		"Export storage is not configured",
		"",
	)

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

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// StoreUnavailableError is returned when the database cannot be reached at all.
// It is retryable and only hints at configuration, never at connection details.
type StoreUnavailableError struct {
	err error
}

// NewStoreUnavailableError wraps a connectivity failure.
func NewStoreUnavailableError(err error) AppError {
	return &StoreUnavailableError{err: err}
}

func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, "database unavailable").Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

func (e *StoreUnavailableError) Message() string {
	return "Database is unreachable, check the postgres configuration"
}

func (e *StoreUnavailableError) Details() string {
	return ""
}

// NewValidationError returns a validation error naming the offending field.
func NewValidationError(message string) error {
	return ErrValidationFailed.WithMessage(message)
}
