package errors

import (
	"fmt"
	"net/http"

	"backoffice/internal/errors"
)

// Kind is the closed set of failure categories the API can report.
// Every AppError belongs to exactly one Kind, and Kind alone decides the HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// HTTPStatus maps a Kind to its HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	default:
		panic(fmt.Sprintf("unhandled error kind %d", int(k)))
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindForbidden:
		return "ForbiddenError"
	case KindNotFound:
		return "NotFoundError"
	case KindConflict:
		return "ConflictError"
	default:
		return "InternalError"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is lets errors.Is match copies produced by WithDetails against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPStatus()
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
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and session errors
	ErrUserNotFound = NewBaseError(KindNotFound, "USER_NOT_FOUND", "User not found", "")

	ErrUserAlreadyExists = NewBaseError(KindConflict, "USER_ALREADY_EXISTS", "Email is already registered", "")

	ErrPasswordMismatch = NewBaseError(KindValidation, "PASSWORD_MISMATCH", "Password and password confirmation do not match", "")

	ErrInvalidCredentials = NewBaseError(KindUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", "")

	ErrSessionNotFound = NewBaseError(KindUnauthorized, "SESSION_NOT_FOUND", "No active session for this token", "")

	ErrPasswordHashFailed = NewBaseError(KindInternal, "PASSWORD_HASH_FAILED", "Failed to process password", "")

	// Client errors
	ErrClientNotFound = NewBaseError(KindNotFound, "CLIENT_NOT_FOUND", "Client not found", "")

	ErrClientAlreadyExists = NewBaseError(KindConflict, "CLIENT_ALREADY_EXISTS", "A client with this name, email or tax id already exists", "")

	// Address errors
	ErrAddressNotFound = NewBaseError(KindNotFound, "ADDRESS_NOT_FOUND", "Address not found for this client", "")

	// Product errors
	ErrProductNotFound = NewBaseError(KindNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")

	ErrProductAlreadyExists = NewBaseError(KindConflict, "PRODUCT_ALREADY_EXISTS", "A product with this code or name already exists", "")

	// Payment type errors
	ErrPaymentTypeNotFound = NewBaseError(KindNotFound, "PAYMENT_TYPE_NOT_FOUND", "Payment type not found", "")

	ErrPaymentTypeAlreadyExists = NewBaseError(KindConflict, "PAYMENT_TYPE_ALREADY_EXISTS", "Payment type already exists", "")

	// Order errors
	ErrOrderNotFound = NewBaseError(KindNotFound, "ORDER_NOT_FOUND", "Order not found", "")

	ErrOrderReferenceNotFound = NewBaseError(KindNotFound, "ORDER_REFERENCE_NOT_FOUND", "Order references a client, address or user that no longer exists", "")

	ErrOrderTotalMismatch = NewBaseError(KindConflict, "ORDER_TOTAL_MISMATCH", "Sum of item values does not match sum of payments", "")

	// Validation-related errors
	ErrValidationFailed = NewBaseError(KindValidation, "VALIDATION_FAILED", "Input validation failed", "")

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(KindInternal, "TRANSACTION_FAILED", "Database transaction failed", "")

	// General errors
	ErrInternalError = NewBaseError(KindInternal, "INTERNAL_ERROR", "Internal server error", "")

	ErrUnauthorized = NewBaseError(KindUnauthorized, "UNAUTHORIZED", "Authentication required", "")

	ErrForbidden = NewBaseError(KindForbidden, "FORBIDDEN", "Access denied", "")
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return KindInternal.HTTPStatus()
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
