package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAppError_DetailsPolicy(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetails bool
	}{
		{"validation keeps details", domainerrors.ErrValidationFailed.WithDetails("cityId is required"), http.StatusBadRequest, true},
		{"backend message kept", domainerrors.ErrOrderCreationFailed.WithDetails("Out of stock"), http.StatusBadGateway, true},
		{"auth drops details", domainerrors.ErrUnauthorized.WithDetails("token expired"), http.StatusUnauthorized, false},
		{"internal drops details", domainerrors.ErrInternalError.WithDetails("nil pointer"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetails {
				assert.Contains(t, rec.Body.String(), `"details"`)
			} else {
				assert.NotContains(t, rec.Body.String(), `"details"`)
			}
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := HandleAppError(c, assert.AnError)

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, c.Response().Committed)
}
