// Package response writes the JSON envelope every API route answers with:
// {data, meta} on success, {error, meta} on failure.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "CART_EMPTY"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Extra context, 4xx and 502 only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for auth failures and
// server faults; a 502 keeps them because they carry the backend's message.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	case statusCode == http.StatusBadGateway:
		return true
	default:
		return statusCode < http.StatusInternalServerError
	}
}

// AppError writes the envelope for a catalogued domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError writes domain errors and hands anything else back to the
// echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
