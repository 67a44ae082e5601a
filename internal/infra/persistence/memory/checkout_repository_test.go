package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending(userID entity.UserID, key string) *entity.CheckoutRecord {
	return &entity.CheckoutRecord{IdempotencyKey: key, UserID: userID, Status: entity.CheckoutRecordPending}
}

func TestCheckoutRepository_ReserveCompleteFind(t *testing.T) {
	repo := NewCheckoutRepository()
	ctx := context.Background()

	record := pending(42, "key-1")
	require.NoError(t, repo.Reserve(ctx, record))
	assert.False(t, record.CreatedAt.IsZero())

	found, err := repo.FindByKey(ctx, 42, "key-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutRecordPending, found.Status)
	assert.Nil(t, found.Confirmation)

	require.NoError(t, repo.Complete(ctx, 42, "key-1", &entity.OrderConfirmation{OrderID: 991}))

	found, err = repo.FindByKey(ctx, 42, "key-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutRecordCompleted, found.Status)
	assert.Equal(t, int64(991), found.OrderID)
	require.NotNil(t, found.Confirmation)
	assert.Equal(t, int64(991), found.Confirmation.OrderID)
}

func TestCheckoutRepository_ReserveDuplicate(t *testing.T) {
	repo := NewCheckoutRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, pending(42, "key-1")))

	err := repo.Reserve(ctx, pending(42, "key-1"))
	assert.ErrorIs(t, err, repository.ErrDuplicateCheckoutKey)
}

func TestCheckoutRepository_KeysAreScopedToUser(t *testing.T) {
	repo := NewCheckoutRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, pending(42, "shared")))
	require.NoError(t, repo.Complete(ctx, 42, "shared", &entity.OrderConfirmation{OrderID: 901}))

	_, err := repo.FindByKey(ctx, 7, "shared")
	assert.ErrorIs(t, err, repository.ErrCheckoutRecordNotFound)

	require.NoError(t, repo.Reserve(ctx, pending(7, "shared")))
	assert.ErrorIs(t, repo.Complete(ctx, 8, "shared", &entity.OrderConfirmation{OrderID: 1}), repository.ErrCheckoutRecordNotFound)

	require.NoError(t, repo.Release(ctx, 7, "shared"))
	found, err := repo.FindByKey(ctx, 42, "shared")
	require.NoError(t, err)
	assert.Equal(t, int64(901), found.OrderID)
}

func TestCheckoutRepository_ReleaseOnlyPending(t *testing.T) {
	repo := NewCheckoutRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, pending(42, "pending")))
	require.NoError(t, repo.Reserve(ctx, pending(42, "done")))
	require.NoError(t, repo.Complete(ctx, 42, "done", &entity.OrderConfirmation{OrderID: 1}))

	require.NoError(t, repo.Release(ctx, 42, "pending"))
	require.NoError(t, repo.Release(ctx, 42, "done"))

	_, err := repo.FindByKey(ctx, 42, "pending")
	assert.ErrorIs(t, err, repository.ErrCheckoutRecordNotFound)

	found, err := repo.FindByKey(ctx, 42, "done")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutRecordCompleted, found.Status)
}

func TestCheckoutRepository_CompleteUnknownKey(t *testing.T) {
	repo := NewCheckoutRepository()

	err := repo.Complete(context.Background(), 42, "missing", &entity.OrderConfirmation{OrderID: 1})
	assert.ErrorIs(t, err, repository.ErrCheckoutRecordNotFound)
}

func TestCheckoutRepository_Sweep(t *testing.T) {
	repo := NewCheckoutRepository()
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	require.NoError(t, repo.Reserve(ctx, pending(42, "old")))
	require.NoError(t, repo.Complete(ctx, 42, "old", &entity.OrderConfirmation{OrderID: 1}))

	clock = clock.Add(time.Hour)
	require.NoError(t, repo.Reserve(ctx, pending(42, "recent")))
	require.Equal(t, 2, repo.len())

	assert.Zero(t, repo.Sweep(clock.Add(-2*time.Hour)))
	assert.Equal(t, 1, repo.Sweep(clock.Add(-30*time.Minute)))
	assert.Equal(t, 1, repo.len())

	_, err := repo.FindByKey(ctx, 42, "old")
	assert.ErrorIs(t, err, repository.ErrCheckoutRecordNotFound)
	_, err = repo.FindByKey(ctx, 42, "recent")
	assert.NoError(t, err)
}
