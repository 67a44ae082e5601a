package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mockUC.MockOrderUsecase) {
	orderUC := mockUC.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: discardLogger()}), orderUC
}

func TestOrderHandler_OrderQRCode(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	orderUC.EXPECT().OrderQRCode(mock.Anything, entity.UserID(42), int64(5)).Return(png, nil)

	c, rec := newAuthedContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.OrderQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_OrderQRCode_NotOwned(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().OrderQRCode(mock.Anything, entity.UserID(42), int64(5)).Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newAuthedContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.OrderQRCode(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().ListOrders(mock.Anything, entity.UserID(42)).Return([]entity.Order{{ID: 5, Status: "new"}}, nil)

	c, rec := newAuthedContext(http.MethodGet, "/api/v1/orders", "")
	require.NoError(t, h.ListOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"new"`)
}
