package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves products, deals, suppliers, featured items and search.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts returns one page of products in the user's city.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer")
		}
	}

	result, err := h.catalogUC.ListProducts(c.Request().Context(), user, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetProduct returns a product with availability. ?context=favorites adds alternatives.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	productContext := c.QueryParam("context")
	if productContext == "" {
		productContext = constants.ProductContextDefault
	}

	details, err := h.catalogUC.GetProductDetails(c.Request().Context(), entity.ProductID(id), productContext)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

func (h *CatalogHandler) ListDeals(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	deals, err := h.catalogUC.ListDeals(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deals)
}

func (h *CatalogHandler) GetDeal(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	deal, err := h.catalogUC.GetDeal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deal)
}

func (h *CatalogHandler) ListSuppliers(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	suppliers, err := h.catalogUC.ListSuppliers(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suppliers)
}

func (h *CatalogHandler) GetSupplier(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.catalogUC.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, supplier)
}

func (h *CatalogHandler) ListFeatured(c echo.Context) error {
	items, err := h.catalogUC.ListFeaturedItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Search runs a catalog search for ?q.
func (h *CatalogHandler) Search(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	results, err := h.catalogUC.Search(c.Request().Context(), user, c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}
