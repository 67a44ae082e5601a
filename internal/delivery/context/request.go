// Package context carries request-scoped values between the echo layer and
// the usecases: request ID, request logger and the authenticated user.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests and forwarded to the backend.
const HeaderXRequestID = "X-Request-Id"

type valueKey string

const (
	requestIDKey valueKey = "request_id"
	loggerKey    valueKey = "logger"
	userKey      valueKey = "user"
)

// GetRequestID prefers the id the middleware stored on c over the one on the
// request context. Empty when neither is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(requestIDKey)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(requestIDKey), requestID)
}

// GetRequestIDFromContext is GetRequestID for code below the echo layer.
func GetRequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey).(string)

	return requestID
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the logger the request middleware attached,
// or fallback when ctx carries none (background jobs, the CLI).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, _ := ctx.Value(loggerKey).(*slog.Logger); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
