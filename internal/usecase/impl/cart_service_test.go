package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID entity.UserID = 42

var (
	productA = testProduct(1, "Gauze pads", "10.00")
	productB = testProduct(2, "Nitrile gloves", "4.50")
	productC = testProduct(3, "Saline", "2.25")
)

type cartServiceFixtures struct {
	service *cartService
	backend *fakeCartBackend
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	backend := newFakeCartBackend(productA, productB, productC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return cartServiceFixtures{
		service: newCartService(backend, logger),
		backend: backend,
	}
}

func quantities(lines []entity.CartLine) map[entity.ProductID]int {
	result := make(map[entity.ProductID]int, len(lines))
	for _, line := range lines {
		result[line.ProductID] = line.Quantity
	}

	return result
}

func waitEntered(t *testing.T, hold *callHold) {
	t.Helper()

	select {
	case <-hold.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("backend call was never made")
	}
}

func TestCartService_FetchCart_Success(t *testing.T) {
	fx := createTestCartService(t)
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2, productB.ID: 1})

	snap, err := fx.service.FetchCart(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, map[entity.ProductID]int{productA.ID: 2, productB.ID: 1}, quantities(snap.Items))
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, "24.5", snap.Total.String())
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	for _, line := range snap.Items {
		assert.Equal(t, entity.LineConfirmed, line.Status)
	}
}

func TestCartService_FetchCart_FailureEmptiesCache(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2})

	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	fx.backend.failNext("fetch", errors.New("connection refused"))
	snap, err := fx.service.FetchCart(ctx, testUserID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartLoadFailed))
	assert.Empty(t, snap.Items)
	assert.NotEmpty(t, snap.Error)
	assert.False(t, snap.Loading)
}

func TestCartService_GetCart_LoadsOnce(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 1})

	_, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	snap, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, 1, fx.backend.callCount("fetch"))
	assert.Len(t, snap.Items, 1)
}

func TestCartService_NoUserIsNoOp(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	snap, err := fx.service.AddToCart(ctx, 0, &productA)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)

	_, err = fx.service.DecreaseQuantity(ctx, 0, productA.ID)
	require.NoError(t, err)
	_, err = fx.service.RemoveItem(ctx, 0, productA.ID)
	require.NoError(t, err)

	assert.Zero(t, fx.backend.callCount("add"))
	assert.Zero(t, fx.backend.callCount("fetch"))
}

func TestCartService_AddToCart_SetsActiveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2})

	snap, err := fx.service.AddToCart(ctx, testUserID, &productA)

	require.NoError(t, err)
	assert.Equal(t, 3, quantities(snap.Items)[productA.ID])
	require.NotNil(t, snap.ActiveItem)
	assert.Equal(t, productA.ID, snap.ActiveItem.ProductID)
	assert.Equal(t, 3, snap.ActiveItem.Quantity)
	assert.True(t, snap.ActiveItem.ControlsVisible)
}

func TestCartService_AddToCart_FailureStillRefetchesAndPoints(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productB.ID: 1})
	fx.backend.failNext("add", errors.New("out of stock"))

	snap, err := fx.service.AddToCart(ctx, testUserID, &productA)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartUpdateFailed))
	assert.Equal(t, 1, fx.backend.callCount("fetch"))
	assert.Equal(t, map[entity.ProductID]int{productB.ID: 1}, quantities(snap.Items))
	require.NotNil(t, snap.ActiveItem)
	assert.Equal(t, productA.ID, snap.ActiveItem.ProductID)
	assert.Equal(t, 1, snap.ActiveItem.Quantity)
}

func TestCartService_IncreaseQuantity_FailureStillRefetches(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 1})
	fx.backend.failNext("add", errors.New("boom"))

	snap, err := fx.service.IncreaseQuantity(ctx, testUserID, productA.ID)

	require.Error(t, err)
	assert.Equal(t, 1, fx.backend.callCount("fetch"))
	assert.Equal(t, 1, quantities(snap.Items)[productA.ID])
}

func TestCartService_IncreaseQuantity_MissingProductIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.IncreaseQuantity(context.Background(), testUserID, 0)

	require.NoError(t, err)
	assert.Zero(t, fx.backend.callCount("add"))
}

// Decreasing the last unit removes the line instead of storing quantity zero.
func TestCartService_DecreaseQuantity_LastUnitRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 1, productB.ID: 2})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	snap, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)

	require.NoError(t, err)
	assert.Zero(t, fx.backend.callCount("set"))
	assert.Equal(t, 1, fx.backend.callCount("remove"))
	assert.NotContains(t, quantities(fx.backend.serverLines()), productA.ID)
	assert.Equal(t, map[entity.ProductID]int{productB.ID: 2}, quantities(snap.Items))
}

func TestCartService_DecreaseQuantity_UnknownProductIsNoOp(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	_, err = fx.service.DecreaseQuantity(ctx, testUserID, productC.ID)

	require.NoError(t, err)
	assert.Zero(t, fx.backend.callCount("set"))
	assert.Zero(t, fx.backend.callCount("remove"))
}

// The cart shows the decremented quantity while the write is in flight, and the
// server value once it resolves.
func TestCartService_DecreaseQuantity_OptimisticThenReconciled(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 3})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	hold := fx.backend.holdNext("set")
	done := make(chan error, 1)
	go func() {
		_, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)
		done <- err
	}()
	waitEntered(t, hold)

	inFlight, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	line, ok := inFlight.Line(productA.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, entity.LinePending, line.Status)
	assert.True(t, inFlight.PendingUpdate)

	close(hold.release)
	require.NoError(t, <-done)

	settled, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	line, ok = settled.Line(productA.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, entity.LineConfirmed, line.Status)
	assert.False(t, settled.PendingUpdate)
}

// A second decrease or remove while one is in flight sends nothing.
func TestCartService_DecreaseQuantity_SingleFlight(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 3, productB.ID: 1})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	hold := fx.backend.holdNext("set")
	done := make(chan error, 1)
	go func() {
		_, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)
		done <- err
	}()
	waitEntered(t, hold)

	_, err = fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)
	require.NoError(t, err)
	_, err = fx.service.RemoveItem(ctx, testUserID, productB.ID)
	require.NoError(t, err)

	close(hold.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, fx.backend.callCount("set"))
	assert.Zero(t, fx.backend.callCount("remove"))
	assert.Equal(t, map[entity.ProductID]int{productA.ID: 2, productB.ID: 1}, quantities(fx.backend.serverLines()))
}

// Increase is not guarded and may run while a decrease is in flight.
func TestCartService_IncreaseRunsDuringPendingDecrease(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 3, productB.ID: 1})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	hold := fx.backend.holdNext("set")
	done := make(chan error, 1)
	go func() {
		_, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)
		done <- err
	}()
	waitEntered(t, hold)

	_, err = fx.service.IncreaseQuantity(ctx, testUserID, productB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.backend.callCount("add"))

	close(hold.release)
	require.NoError(t, <-done)

	snap, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, quantities(fx.backend.serverLines()), quantities(snap.Items))
}

func TestCartService_DecreaseQuantity_FailureResyncs(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 3})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)
	fx.backend.failNext("set", errors.New("conflict"))

	snap, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartUpdateFailed))
	assert.Contains(t, domainerrors.AlertMessage(err), "conflict")
	line, ok := snap.Line(productA.ID)
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, entity.LineConfirmed, line.Status)
	assert.False(t, snap.PendingUpdate)
}

func TestCartService_RemoveItem_FailureResyncs(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)
	fx.backend.failNext("remove", errors.New("gone"))

	snap, err := fx.service.RemoveItem(ctx, testUserID, productA.ID)

	require.Error(t, err)
	assert.Equal(t, map[entity.ProductID]int{productA.ID: 2}, quantities(snap.Items))
}

func TestCartService_RemoveItem_ClearsActiveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	snap, err := fx.service.AddToCart(ctx, testUserID, &productA)
	require.NoError(t, err)
	require.NotNil(t, snap.ActiveItem)

	snap, err = fx.service.RemoveItem(ctx, testUserID, productA.ID)

	require.NoError(t, err)
	assert.Nil(t, snap.ActiveItem)
	assert.Empty(t, snap.Items)
}

func TestCartService_RemoveOtherItem_KeepsActiveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productB.ID: 1})

	_, err := fx.service.AddToCart(ctx, testUserID, &productA)
	require.NoError(t, err)

	snap, err := fx.service.RemoveItem(ctx, testUserID, productB.ID)

	require.NoError(t, err)
	require.NotNil(t, snap.ActiveItem)
	assert.Equal(t, productA.ID, snap.ActiveItem.ProductID)
}

func TestCartService_ViewAndCloseCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddToCart(ctx, testUserID, &productA)
	require.NoError(t, err)

	snap, err := fx.service.ViewCart(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, snap.Visible)
	assert.Nil(t, snap.ActiveItem)

	snap, err = fx.service.CloseCart(ctx, testUserID)
	require.NoError(t, err)
	assert.False(t, snap.Visible)
	assert.Len(t, snap.Items, 1)
}

// A fetch answered after a newer one was applied must not overwrite it.
func TestCartService_StaleFetchIsDiscarded(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 1})

	hold := fx.backend.holdNext("fetch")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = fx.service.FetchCart(ctx, testUserID)
	}()
	waitEntered(t, hold)

	fx.backend.seed(map[entity.ProductID]int{productA.ID: 5})
	snap, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 5, quantities(snap.Items)[productA.ID])

	close(hold.release)
	<-done

	snap, err = fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 5, quantities(snap.Items)[productA.ID])
	assert.False(t, snap.Loading)
}

func TestCartService_ResetAfterOrder(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 2})

	_, err := fx.service.AddToCart(ctx, testUserID, &productB)
	require.NoError(t, err)
	_, err = fx.service.ViewCart(ctx, testUserID)
	require.NoError(t, err)

	hold := fx.backend.holdNext("fetch")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = fx.service.FetchCart(ctx, testUserID)
	}()
	waitEntered(t, hold)

	snap, err := fx.service.ResetAfterOrder(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.False(t, snap.Visible)
	assert.Nil(t, snap.ActiveItem)

	close(hold.release)
	<-done

	snap, err = fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

// After any mix of concurrent mutations settles, the cache equals the server cart.
func TestCartService_ConvergesAfterConcurrentMutations(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 4, productB.ID: 2})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	operations := []func(){
		func() { _, _ = fx.service.AddToCart(ctx, testUserID, &productC) },
		func() { _, _ = fx.service.IncreaseQuantity(ctx, testUserID, productA.ID) },
		func() { _, _ = fx.service.DecreaseQuantity(ctx, testUserID, productA.ID) },
		func() { _, _ = fx.service.DecreaseQuantity(ctx, testUserID, productB.ID) },
		func() { _, _ = fx.service.RemoveItem(ctx, testUserID, productB.ID) },
		func() { _, _ = fx.service.AddToCart(ctx, testUserID, &productC) },
		func() { _, _ = fx.service.IncreaseQuantity(ctx, testUserID, productB.ID) },
	}

	var wg sync.WaitGroup
	for round := 0; round < 5; round++ {
		for _, op := range operations {
			wg.Add(1)
			go func(op func()) {
				defer wg.Done()
				op()
			}(op)
		}
	}
	wg.Wait()

	snap, err := fx.service.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, quantities(fx.backend.serverLines()), quantities(snap.Items))
	assert.False(t, snap.PendingUpdate)
	for _, line := range snap.Items {
		assert.Positive(t, line.Quantity)
		assert.Equal(t, entity.LineConfirmed, line.Status)
	}
}

func TestCartService_Sweep(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)
	require.Equal(t, 1, fx.service.carts.len())

	assert.Zero(t, fx.service.Sweep(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, fx.service.Sweep(time.Now().Add(time.Hour)))
	assert.Zero(t, fx.service.carts.len())
}

// The single-flight guard survives a sweep that runs while a decrease is pending.
func TestCartService_Sweep_KeepsEngineWithPendingMutation(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	fx.backend.seed(map[entity.ProductID]int{productA.ID: 3, productB.ID: 1})
	_, err := fx.service.FetchCart(ctx, testUserID)
	require.NoError(t, err)

	hold := fx.backend.holdNext("set")
	done := make(chan error, 1)
	go func() {
		_, err := fx.service.DecreaseQuantity(ctx, testUserID, productA.ID)
		done <- err
	}()
	waitEntered(t, hold)

	assert.Zero(t, fx.service.Sweep(time.Now().Add(time.Hour)))

	_, err = fx.service.RemoveItem(ctx, testUserID, productB.ID)
	require.NoError(t, err)
	assert.Zero(t, fx.backend.callCount("remove"))

	close(hold.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, fx.service.Sweep(time.Now().Add(time.Hour)))
}
