package handler

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart and mini-cart popover.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest is the product the user tapped. Fields beyond productId
// feed the popover before the server cart answers.
type AddToCartRequest struct {
	ProductID     int64               `json:"productId" validate:"required,gt=0"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discountPrice"`
	IsOnSale      bool                `json:"isOnSale"`
	ImageURL      string              `json:"imageUrl"`
}

// CartMutationResponse is the cart after a mutation. Alert is set when the
// mutation failed; the cart is then the refetched server state.
type CartMutationResponse struct {
	Cart  *entity.CartSnapshot `json:"cart"`
	Alert string               `json:"alert,omitempty"`
}

// GetCart returns the cart, loading it on first use.
func (h *CartHandler) GetCart(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	snap, err := h.cartUC.GetCart(c.Request().Context(), user.ID)
	if err != nil && snap == nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// AddItem adds one unit of a product and opens the popover on it.
func (h *CartHandler) AddItem(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product := &entity.Product{
		ID:            entity.ProductID(req.ProductID),
		Name:          req.Name,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		IsOnSale:      req.IsOnSale,
		ImageURL:      req.ImageURL,
	}

	return h.mutationResult(c, func() (*entity.CartSnapshot, error) {
		return h.cartUC.AddToCart(c.Request().Context(), user.ID, product)
	})
}

// IncreaseItem adds one unit of a product already in the cart.
func (h *CartHandler) IncreaseItem(c echo.Context) error {
	return h.productMutation(c, h.cartUC.IncreaseQuantity)
}

// DecreaseItem removes one unit, deleting the line at zero.
func (h *CartHandler) DecreaseItem(c echo.Context) error {
	return h.productMutation(c, h.cartUC.DecreaseQuantity)
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.productMutation(c, h.cartUC.RemoveItem)
}

// ViewCart opens the full cart.
func (h *CartHandler) ViewCart(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return h.mutationResult(c, func() (*entity.CartSnapshot, error) {
		return h.cartUC.ViewCart(c.Request().Context(), user.ID)
	})
}

// CloseCart hides the full cart.
func (h *CartHandler) CloseCart(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return h.mutationResult(c, func() (*entity.CartSnapshot, error) {
		return h.cartUC.CloseCart(c.Request().Context(), user.ID)
	})
}

type productMutationFunc func(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error)

func (h *CartHandler) productMutation(c echo.Context, mutate productMutationFunc) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	productID, err := productIDParam(c)
	if err != nil {
		return err
	}

	return h.mutationResult(c, func() (*entity.CartSnapshot, error) {
		return mutate(c.Request().Context(), user.ID, productID)
	})
}

// mutationResult answers 200 with the refetched cart and an alert when the
// mutation failed but the cart could still be read.
func (h *CartHandler) mutationResult(c echo.Context, mutate func() (*entity.CartSnapshot, error)) error {
	snap, err := mutate()
	if err != nil && snap == nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartMutationResponse{
		Cart:  snap,
		Alert: domainerrors.AlertMessage(err),
	})
}
