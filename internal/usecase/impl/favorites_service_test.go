package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoritesServiceFixtures struct {
	service   *favoritesService
	favorites *mockSvc.MockFavoritesGateway
	catalog   *mockSvc.MockCatalogGateway
}

func createTestFavoritesService(t *testing.T) favoritesServiceFixtures {
	favorites := mockSvc.NewMockFavoritesGateway(t)
	catalog := mockSvc.NewMockCatalogGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return favoritesServiceFixtures{
		service:   newFavoritesService(favorites, catalog, logger),
		favorites: favorites,
		catalog:   catalog,
	}
}

func TestFavoritesService_ListFavoriteIDs_LoadsOnce(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{3, 1, 3}, nil).Once()

	ids, err := fx.service.ListFavoriteIDs(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductID{3, 1}, ids)

	ids, err = fx.service.ListFavoriteIDs(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductID{3, 1}, ids)
}

func TestFavoritesService_ListFavoriteIDs_Fails(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return(nil, errors.New("down")).Once()
	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{}, nil).Once()

	_, err := fx.service.ListFavoriteIDs(ctx, testUserID)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogUnavailable))

	ids, err := fx.service.ListFavoriteIDs(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoritesService_ToggleFavorite_Add(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{1}, nil)
	fx.favorites.EXPECT().AddFavorite(ctx, testUserID, entity.ProductID(2)).Return(nil)

	out, err := fx.service.ToggleFavorite(ctx, testUserID, 2)

	require.NoError(t, err)
	assert.True(t, out.IsFavorite)
	assert.Equal(t, []entity.ProductID{1, 2}, out.FavoriteIDs)
}

func TestFavoritesService_ToggleFavorite_Remove(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{1, 2}, nil)
	fx.favorites.EXPECT().RemoveFavorite(ctx, testUserID, entity.ProductID(1)).Return(nil)

	out, err := fx.service.ToggleFavorite(ctx, testUserID, 1)

	require.NoError(t, err)
	assert.False(t, out.IsFavorite)
	assert.Equal(t, []entity.ProductID{2}, out.FavoriteIDs)
}

func TestFavoritesService_ToggleFavorite_RevertsOnFailure(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{1}, nil)
	fx.favorites.EXPECT().AddFavorite(ctx, testUserID, entity.ProductID(2)).Return(errors.New("limit reached"))

	_, err := fx.service.ToggleFavorite(ctx, testUserID, 2)

	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteToggleFailed))
	assert.Contains(t, domainerrors.AlertMessage(err), "limit reached")

	ids, err := fx.service.ListFavoriteIDs(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductID{1}, ids)
}

func TestFavoritesService_ToggleFavorite_BusyWhileToggling(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{}, nil)
	fx.favorites.EXPECT().AddFavorite(ctx, testUserID, entity.ProductID(2)).
		RunAndReturn(func(context.Context, entity.UserID, entity.ProductID) error {
			close(entered)
			<-release

			return nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.ToggleFavorite(ctx, testUserID, 2)
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("favorite was never added")
	}

	_, err := fx.service.ToggleFavorite(ctx, testUserID, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoritesBusy))

	close(release)
	require.NoError(t, <-done)
}

func TestFavoritesService_ListFavoriteProducts_EmptySkipsBatch(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return(nil, nil)

	products, err := fx.service.ListFavoriteProducts(ctx, testUserID)

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	fx.catalog.AssertNotCalled(t, "GetProductsBatch", mock.Anything, mock.Anything)
}

func TestFavoritesService_ListFavoriteProducts(t *testing.T) {
	fx := createTestFavoritesService(t)
	ctx := context.Background()

	fx.favorites.EXPECT().ListFavoriteIDs(ctx, testUserID).Return([]entity.ProductID{4, 5}, nil)
	fx.catalog.EXPECT().GetProductsBatch(ctx, []entity.ProductID{4, 5}).
		Return([]entity.Product{{ID: 4}, {ID: 5}}, nil)

	products, err := fx.service.ListFavoriteProducts(ctx, testUserID)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestFavoritesService_RequiresUser(t *testing.T) {
	fx := createTestFavoritesService(t)

	_, err := fx.service.ToggleFavorite(context.Background(), 0, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrUserRequired))
}
