package handler

import (
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// int64Param reads a positive integer path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return value, nil
}

func productIDParam(c echo.Context) (entity.ProductID, error) {
	id, err := int64Param(c, "productId")

	return entity.ProductID(id), err
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}
