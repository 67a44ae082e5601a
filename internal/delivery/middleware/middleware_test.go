package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	return echo.New()
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Request().Header.Set(deliverycontext.HeaderXRequestID, "req-123")

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", c.Response().Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Request().Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 100))

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

	id := deliverycontext.GetRequestID(c)
	assert.NotEmpty(t, id)
	assert.LessOrEqual(t, len(id), maxRequestIDLength)
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return domainerrors.ErrCartLoadFailed })(c)

	assert.Error(t, err)
	assert.Contains(t, buf.String(), "status=502")

	buf.Reset()
	c = newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
