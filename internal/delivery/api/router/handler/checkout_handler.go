package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets the client retry POST /checkout without ordering twice.
const HeaderIdempotencyKey = "Idempotency-Key"

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the checkout flow.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// UpdateDraftRequest edits one field of the address form
type UpdateDraftRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// SubmitAddressRequest submits the address form. A nil draft submits the
// form as edited through PATCH /checkout/draft.
type SubmitAddressRequest struct {
	Draft *entity.AddressDraft `json:"draft"`
}

// Begin starts checkout.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := h.checkoutUC.Begin(c.Request().Context(), user, c.Request().Header.Get(HeaderIdempotencyKey))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Status returns the current checkout step.
func (h *CheckoutHandler) Status(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := h.checkoutUC.Status(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateDraft edits one field of the address form.
func (h *CheckoutHandler) UpdateDraft(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UpdateDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.UpdateDraftField(c.Request().Context(), user, req.Field, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitAddress saves the delivery details and places the order.
func (h *CheckoutHandler) SubmitAddress(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req SubmitAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.checkoutUC.SubmitAddress(c.Request().Context(), user, req.Draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Cancel closes the address form.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := h.checkoutUC.Cancel(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DismissConfirmation closes the order confirmation.
func (h *CheckoutHandler) DismissConfirmation(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := h.checkoutUC.DismissConfirmation(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
