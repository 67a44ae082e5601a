package errors

import (
	"net/http"

	"storefront/internal/errors"
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

// Is reports whether target is the same catalogue entry, ignoring details.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session and identity
	ErrUserRequired = NewBaseError(
		http.StatusBadRequest,
		"USER_REQUIRED",
		"User information is not available. Please restart the app.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired session",
		"",
	)

	ErrInitDataInvalid = NewBaseError(
		http.StatusUnauthorized,
		"INIT_DATA_INVALID",
		"Could not verify Telegram user data",
		"",
	)

	ErrProfileLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_LOAD_FAILED",
		"Could not load your profile. Please try refreshing.",
		"",
	)

	ErrCitySelectionFailed = NewBaseError(
		http.StatusBadGateway,
		"CITY_SELECTION_FAILED",
		"Could not save your city selection. Please try again.",
		"",
	)

	ErrCityRequired = NewBaseError(
		http.StatusConflict,
		"CITY_REQUIRED",
		"Please select your city first",
		"",
	)

	// Cart
	ErrCartLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_LOAD_FAILED",
		"Failed to load cart",
		"",
	)

	ErrCartUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_UPDATE_FAILED",
		"Error updating cart",
		"",
	)

	// Checkout
	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"Your cart is empty.",
		"",
	)

	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"Your order is already being placed",
		"",
	)

	ErrCheckoutNotCollecting = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_NOT_COLLECTING",
		"There is no delivery address form open",
		"",
	)

	ErrUnknownDraftField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_DRAFT_FIELD",
		"Unknown address field",
		"",
	)

	ErrProfileSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_SAVE_FAILED",
		"Could not save your delivery information",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_CREATION_FAILED",
		"Failed to place order",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Catalog and favorites
	ErrCatalogUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CATALOG_UNAVAILABLE",
		"Could not load data. Please try again.",
		"",
	)

	ErrFavoriteToggleFailed = NewBaseError(
		http.StatusBadGateway,
		"FAVORITE_TOGGLE_FAILED",
		"Could not update favorites",
		"",
	)

	ErrFavoritesBusy = NewBaseError(
		http.StatusConflict,
		"FAVORITES_BUSY",
		"Favorites are still loading",
		"",
	)

	// Generic
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// LedgerExecuteError represents a checkout ledger failure, implementing the AppError interface
type LedgerExecuteError struct {
	err     error
	details string
}

// NewLedgerExecuteError creates a ledger-related error
func NewLedgerExecuteError(err error, details string) AppError {
	return &LedgerExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *LedgerExecuteError) Error() string {
	return errors.Wrap(e.err, "checkout ledger execution failed").Error()
}

// Unwrap exposes the underlying ledger error
func (e *LedgerExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *LedgerExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *LedgerExecuteError) ErrorCode() string {
	return "LEDGER_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *LedgerExecuteError) Message() string {
	return "Could not record the checkout attempt"
}

// Details returns detailed error information
func (e *LedgerExecuteError) Details() string {
	return e.details
}

// AlertMessage renders err the way the storefront shows a blocking alert:
// the catalogue message, followed by upstream details when present.
func AlertMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return appErr.Message() + ": " + appErr.Details()
		}

		return appErr.Message()
	}

	return ErrInternalError.Message()
}

// upstreamError is implemented by failures that carry a message from the backend.
type upstreamError interface {
	UpstreamMessage() string
}

// UpstreamDetails returns the backend message carried by err, or its text.
func UpstreamDetails(err error) string {
	if err == nil {
		return ""
	}

	var upstream upstreamError
	if errors.As(err, &upstream) {
		return upstream.UpstreamMessage()
	}

	return err.Error()
}
