// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase drives the checkout flow of one user:
// idle → profile_check → address_collection? → order_creation → confirmed.
type CheckoutUsecase interface {
	// Begin starts checkout. idempotencyKey may be empty, a key is generated then.
	Begin(ctx context.Context, user *entity.User, idempotencyKey string) (*CheckoutView, error)
	Status(ctx context.Context, user *entity.User) (*CheckoutView, error)
	UpdateDraftField(ctx context.Context, user *entity.User, field, value string) (*CheckoutView, error)
	// SubmitAddress saves the draft to the profile and places the order.
	SubmitAddress(ctx context.Context, user *entity.User, draft *entity.AddressDraft) (*CheckoutView, error)
	Cancel(ctx context.Context, user *entity.User) (*CheckoutView, error)
	DismissConfirmation(ctx context.Context, user *entity.User) (*CheckoutView, error)
}

// --- Output DTOs ---

// CheckoutView is the render state of the checkout flow.
type CheckoutView struct {
	State          entity.CheckoutState      `json:"state"`
	Draft          *entity.AddressDraft      `json:"draft,omitempty"`
	Error          string                    `json:"error,omitempty"`
	Confirmation   *entity.OrderConfirmation `json:"confirmation,omitempty"`
	IdempotencyKey string                    `json:"idempotencyKey,omitempty"`
}
