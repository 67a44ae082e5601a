package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: discardLogger()}), cartUC
}

func TestCartHandler_AddItem(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	snap := &entity.CartSnapshot{
		Items:      []entity.CartLine{{ProductID: 7, Quantity: 1, Price: decimal.RequireFromString("3.50")}},
		ActiveItem: &entity.ActiveItem{ProductID: 7, Quantity: 1, ControlsVisible: true},
		ItemCount:  1,
	}

	cartUC.EXPECT().AddToCart(mock.Anything, entity.UserID(42), mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == 7 && p.Name == "Gauze" && p.Price.Equal(decimal.RequireFromString("3.50"))
	})).Return(snap, nil)

	c, rec := newAuthedContext(http.MethodPost, "/api/v1/cart/items", `{"productId":7,"name":"Gauze","price":"3.50"}`)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body CartMutationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Empty(t, body.Alert)
	assert.Equal(t, 1, body.Cart.ActiveItem.Quantity)
}

func TestCartHandler_AddItem_MissingProduct(t *testing.T) {
	h, _ := createTestCartHandler(t)

	c, _ := newAuthedContext(http.MethodPost, "/api/v1/cart/items", `{}`)
	err := h.AddItem(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartHandler_DecreaseItem_FailureCarriesAlert(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	refetched := &entity.CartSnapshot{Items: []entity.CartLine{{ProductID: 7, Quantity: 2}}}

	cartUC.EXPECT().DecreaseQuantity(mock.Anything, entity.UserID(42), entity.ProductID(7)).
		Return(refetched, domainerrors.ErrCartUpdateFailed.WithDetails("Item not found in cart"))

	c, rec := newAuthedContext(http.MethodPost, "/", "")
	c.SetParamNames("productId")
	c.SetParamValues("7")
	require.NoError(t, h.DecreaseItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body CartMutationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "Error updating cart: Item not found in cart", body.Alert)
	assert.Equal(t, 2, body.Cart.Items[0].Quantity)
}

func TestCartHandler_RemoveItem_BadProductID(t *testing.T) {
	h, _ := createTestCartHandler(t)

	c, _ := newAuthedContext(http.MethodDelete, "/", "")
	c.SetParamNames("productId")
	c.SetParamValues("abc")

	err := h.RemoveItem(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartHandler_GetCart_RequiresUser(t *testing.T) {
	h, _ := createTestCartHandler(t)

	c, _ := newTestContext(http.MethodGet, "/api/v1/cart", "")
	err := h.GetCart(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCartHandler_GetCart_LoadFailureShowsInlineError(t *testing.T) {
	h, cartUC := createTestCartHandler(t)

	cartUC.EXPECT().GetCart(mock.Anything, entity.UserID(42)).
		Return(&entity.CartSnapshot{Items: []entity.CartLine{}, Error: "Failed to load cart"}, domainerrors.ErrCartLoadFailed)

	c, rec := newAuthedContext(http.MethodGet, "/api/v1/cart", "")
	require.NoError(t, h.GetCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var snap entity.CartSnapshot
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &snap))
	assert.Equal(t, "Failed to load cart", snap.Error)
	assert.Empty(t, snap.Items)
}
