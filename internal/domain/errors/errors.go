package errors

import (
	"net/http"

	"multipost/internal/errors"
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

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails or WithMessage still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithMessage replaces the user-facing message, keeping code and status.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request",
		"",
	)

	ErrUnsupportedPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PLATFORM",
		"unsupported platform",
		"",
	)

	// Ownership-related errors
	ErrAuthorization = NewBaseError(
		http.StatusUnauthorized,
		"AUTHORIZATION_REQUIRED",
		"a valid owner is required",
		"",
	)

	// Lookup errors
	ErrWorkspaceNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKSPACE_NOT_FOUND",
		"folder not found",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"token not found",
		"",
	)

	ErrCredentialNotFound = NewBaseError(
		http.StatusNotFound,
		"CREDENTIAL_NOT_FOUND",
		"no credential found for this account",
		"",
	)

	// Generative output that could not be decoded
	ErrParse = NewBaseError(
		http.StatusUnprocessableEntity,
		"PARSE_FAILED",
		"model output is not valid JSON",
		"",
	)

	ErrNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"NOT_IMPLEMENTED",
		"publishing is not implemented for this platform",
		"",
	)

	ErrProviderNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_NOT_CONFIGURED",
		"this platform is not configured",
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
		"internal error",
		"",
	)
)

// ProviderExchangeError is a rejection or error payload from a third-party platform.
type ProviderExchangeError struct {
	platform   string
	message    string
	statusCode int
	err        error
}

// NewProviderExchangeError keeps the provider's own message as the user-facing text.
func NewProviderExchangeError(platform, message string, statusCode int, err error) *ProviderExchangeError {
	return &ProviderExchangeError{
		platform:   platform,
		message:    message,
		statusCode: statusCode,
		err:        err,
	}
}

func (e *ProviderExchangeError) Error() string {
	if e.err != nil {
		return e.platform + ": " + e.message + ": " + e.err.Error()
	}

	return e.platform + ": " + e.message
}

func (e *ProviderExchangeError) Unwrap() error {
	return e.err
}

func (e *ProviderExchangeError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *ProviderExchangeError) ErrorCode() string {
	return "PROVIDER_EXCHANGE_FAILED"
}

func (e *ProviderExchangeError) Message() string {
	return e.message
}

func (e *ProviderExchangeError) Details() string {
	return e.platform
}

// Platform returns the provider that produced the error.
func (e *ProviderExchangeError) Platform() string {
	return e.platform
}

// StatusCode returns the upstream HTTP status, zero when no response was received.
func (e *ProviderExchangeError) StatusCode() int {
	return e.statusCode
}

// PersistenceError represents a failed store write or read, implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a database-related error
func NewPersistenceError(err error, details string) *PersistenceError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
