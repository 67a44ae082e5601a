package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "r1")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestGetUser_RejectsZeroID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUser(c)
	assert.False(t, ok)

	SetUser(c, &entity.User{})
	_, ok = GetUser(c)
	assert.False(t, ok)

	SetUser(c, &entity.User{ID: 42})
	user, ok := GetUser(c)
	assert.True(t, ok)
	assert.Equal(t, entity.UserID(42), user.ID)
}
