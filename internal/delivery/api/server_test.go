package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowedOrigins = []string{"https://shop.example"}

	return cfg
}

func TestNewEcho_ErrorEnvelopeCarriesRequestID(t *testing.T) {
	e := newEcho(newTestServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/boom", func(echo.Context) error { return domainerrors.ErrOrderNotFound })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"ORDER_NOT_FOUND","message":"Order not found"},"meta":{"request_id":"req-7"}}`,
		rec.Body.String())
}

func TestNewEcho_CORSAllowsIdempotencyKey(t *testing.T) {
	e := newEcho(newTestServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/api/v1/checkout", handler.HealthCheck)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/checkout", nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, handler.HeaderIdempotencyKey)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), handler.HeaderIdempotencyKey)
}

func TestNewEcho_RejectsOversizedBody(t *testing.T) {
	e := newEcho(newTestServerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", handler.HealthCheck)

	body := make([]byte, 4096)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
