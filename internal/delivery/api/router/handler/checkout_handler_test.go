package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUC.MockCheckoutUsecase) {
	checkoutUC := mockUC.NewMockCheckoutUsecase(t)

	return NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: discardLogger()}), checkoutUC
}

func TestCheckoutHandler_Begin_PassesIdempotencyKey(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)

	checkoutUC.EXPECT().Begin(mock.Anything, handlerUser, "retry-1").Return(&usecase.CheckoutView{
		State:          entity.CheckoutConfirmed,
		Confirmation:   &entity.OrderConfirmation{OrderID: 9},
		IdempotencyKey: "retry-1",
	}, nil)

	c, rec := newAuthedContext(http.MethodPost, "/api/v1/checkout", "")
	c.Request().Header.Set(HeaderIdempotencyKey, "retry-1")
	require.NoError(t, h.Begin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var view usecase.CheckoutView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, entity.CheckoutConfirmed, view.State)
	assert.Equal(t, int64(9), view.Confirmation.OrderID)
}

func TestCheckoutHandler_Begin_EmptyCart(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)

	checkoutUC.EXPECT().Begin(mock.Anything, handlerUser, "").Return(nil, domainerrors.ErrCartEmpty)

	c, rec := newAuthedContext(http.MethodPost, "/api/v1/checkout", "")
	require.NoError(t, h.Begin(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)
}

func TestCheckoutHandler_UpdateDraft(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)

	checkoutUC.EXPECT().UpdateDraftField(mock.Anything, handlerUser, "city", "Lagos").Return(&usecase.CheckoutView{
		State: entity.CheckoutAddressCollection,
		Draft: &entity.AddressDraft{City: "Lagos"},
	}, nil)

	c, rec := newAuthedContext(http.MethodPatch, "/api/v1/checkout/draft", `{"field":"city","value":"Lagos"}`)
	require.NoError(t, h.UpdateDraft(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_UpdateDraft_MissingField(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)

	c, _ := newAuthedContext(http.MethodPatch, "/api/v1/checkout/draft", `{"value":"Lagos"}`)
	err := h.UpdateDraft(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCheckoutHandler_SubmitAddress_ValidationDetails(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)

	checkoutUC.EXPECT().SubmitAddress(mock.Anything, handlerUser, mock.MatchedBy(func(d *entity.AddressDraft) bool {
		return d != nil && d.PhoneNumber == ""
	})).Return(nil, domainerrors.ErrValidationFailed.WithDetails("phoneNumber is required"))

	c, rec := newAuthedContext(http.MethodPost, "/api/v1/checkout/address", `{"draft":{"city":"Lagos"}}`)
	require.NoError(t, h.SubmitAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "phoneNumber is required", env.Error.Details)
}

func TestCheckoutHandler_Cancel(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)

	checkoutUC.EXPECT().Cancel(mock.Anything, handlerUser).Return(&usecase.CheckoutView{State: entity.CheckoutIdle}, nil)

	c, rec := newAuthedContext(http.MethodDelete, "/api/v1/checkout", "")
	require.NoError(t, h.Cancel(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
