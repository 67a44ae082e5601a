package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoritesHandlerParams holds dependencies for FavoritesHandler, injected by Fx.
type FavoritesHandlerParams struct {
	fx.In

	FavoritesUC usecase.FavoritesUsecase
	Logger      *slog.Logger
}

// FavoritesHandler serves the favorites tab and heart toggles.
type FavoritesHandler struct {
	favoritesUC usecase.FavoritesUsecase
	logger      *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler
func NewFavoritesHandler(params FavoritesHandlerParams) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUC: params.FavoritesUC,
		logger:      params.Logger,
	}
}

// ListIDs returns the favorite product ids.
func (h *FavoritesHandler) ListIDs(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	ids, err := h.favoritesUC.ListFavoriteIDs(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ids)
}

// Toggle flips a product in or out of the favorites.
func (h *FavoritesHandler) Toggle(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	productID, err := productIDParam(c)
	if err != nil {
		return err
	}

	out, err := h.favoritesUC.ToggleFavorite(c.Request().Context(), user.ID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ListProducts returns the favorite products.
func (h *FavoritesHandler) ListProducts(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	products, err := h.favoritesUC.ListFavoriteProducts(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
