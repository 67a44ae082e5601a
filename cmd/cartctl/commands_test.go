package main

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestOverlayDraft_KeepsPrefilledValues(t *testing.T) {
	prefilled := &entity.AddressDraft{FullName: "Ada Lovelace", City: "Lagos"}
	flags := &checkoutFlags{
		fullName:     strPtr(""),
		phoneNumber:  strPtr("+2348000000"),
		addressLine1: strPtr("1 Marina Rd"),
		addressLine2: strPtr(""),
		city:         strPtr(""),
	}

	draft := overlayDraft(prefilled, flags)

	assert.Equal(t, "Ada Lovelace", draft.FullName)
	assert.Equal(t, "+2348000000", draft.PhoneNumber)
	assert.Equal(t, "1 Marina Rd", draft.AddressLine1)
	assert.Equal(t, "Lagos", draft.City)
	assert.Empty(t, prefilled.PhoneNumber)
}

func TestReportMutation_ReturnsAlert(t *testing.T) {
	err := reportMutation(&entity.CartSnapshot{}, domainerrors.ErrCartUpdateFailed.WithDetails("Out of stock"))

	assert.EqualError(t, err, "Error updating cart: Out of stock")
	assert.NoError(t, reportMutation(&entity.CartSnapshot{}, nil))
}
