// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the checkout ledger.
var (
	// ErrCheckoutRecordNotFound is returned when no attempt was recorded for a key.
	ErrCheckoutRecordNotFound = errors.New("checkout record not found")
	// ErrDuplicateCheckoutKey is returned when a key is reserved twice.
	ErrDuplicateCheckoutKey = errors.New("checkout key already reserved")
)

// CheckoutRepository records checkout attempts so a replayed submission never
// creates a second order. Keys are scoped to a user: the same key sent by two
// users names two unrelated attempts.
type CheckoutRepository interface {
	// Reserve stores a pending attempt for record.UserID. Fails with
	// ErrDuplicateCheckoutKey if that user already used the key.
	Reserve(ctx context.Context, record *entity.CheckoutRecord) error

	// FindByKey retrieves the attempt a user recorded under a key.
	FindByKey(ctx context.Context, userID entity.UserID, idempotencyKey string) (*entity.CheckoutRecord, error)

	// Complete marks the attempt as completed and stores the confirmation.
	Complete(ctx context.Context, userID entity.UserID, idempotencyKey string, confirmation *entity.OrderConfirmation) error

	// Release drops a pending attempt so the key can be retried after a failure.
	Release(ctx context.Context, userID entity.UserID, idempotencyKey string) error
}
