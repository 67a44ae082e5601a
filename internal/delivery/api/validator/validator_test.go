package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type selectCityRequest struct {
	CityID int64 `json:"cityId" validate:"required,gt=0"`
	Note   string `json:"note,omitempty" validate:"max=5"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&selectCityRequest{CityID: 3}))

	err := v.Validate(&selectCityRequest{Note: "too long"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "cityId is required; note must be at most 5", appErr.Details())
}
