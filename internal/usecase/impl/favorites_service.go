package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// favoriteSet is one user's favorite ids in the order they were added.
type favoriteSet struct {
	mu       sync.Mutex
	ids      []entity.ProductID
	loaded   bool
	loading  bool
	toggling map[entity.ProductID]bool
}

func newFavoriteSet(entity.UserID) *favoriteSet {
	return &favoriteSet{toggling: make(map[entity.ProductID]bool)}
}

func (s *favoriteSet) idsLocked() []entity.ProductID {
	return append([]entity.ProductID{}, s.ids...)
}

// flipLocked toggles membership and reports whether productID is now a favorite.
func (s *favoriteSet) flipLocked(productID entity.ProductID) bool {
	if idx := slices.Index(s.ids, productID); idx >= 0 {
		s.ids = slices.Delete(s.ids, idx, idx+1)

		return false
	}
	s.ids = append(s.ids, productID)

	return true
}

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	favorites service.FavoritesGateway
	catalog   service.CatalogGateway
	sets      *registry[*favoriteSet]
	logger    *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(
	favorites service.FavoritesGateway,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) usecase.FavoritesUsecase {
	return newFavoritesService(favorites, catalog, logger)
}

func newFavoritesService(
	favorites service.FavoritesGateway,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) *favoritesService {
	return &favoritesService{
		favorites: favorites,
		catalog:   catalog,
		sets:      newRegistry(newFavoriteSet),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFavoriteIDs returns the favorite ids, loading them on first use.
func (srv *favoritesService) ListFavoriteIDs(ctx context.Context, userID entity.UserID) ([]entity.ProductID, error) {
	if userID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	return srv.ensureLoaded(ctx, userID, srv.sets.get(userID))
}

// ToggleFavorite adds or removes productID. The set changes before the backend
// answers and is put back if the backend refuses.
func (srv *favoritesService) ToggleFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*usecase.FavoriteToggleOutput, error) {
	if userID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}
	if productID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productId must be positive")
	}

	set := srv.sets.get(userID)
	if _, err := srv.ensureLoaded(ctx, userID, set); err != nil {
		return nil, err
	}

	set.mu.Lock()
	if set.loading || set.toggling[productID] {
		set.mu.Unlock()

		return nil, domainerrors.ErrFavoritesBusy
	}
	set.toggling[productID] = true
	nowFavorite := set.flipLocked(productID)
	set.mu.Unlock()

	var err error
	if nowFavorite {
		err = srv.favorites.AddFavorite(ctx, userID, productID)
	} else {
		err = srv.favorites.RemoveFavorite(ctx, userID, productID)
	}

	set.mu.Lock()
	defer set.mu.Unlock()
	delete(set.toggling, productID)

	if err != nil {
		set.flipLocked(productID)
		srv.log(ctx).Error("Failed to toggle favorite",
			slog.Any("error", err),
			slog.String("user_id", userID.String()),
			slog.String("product_id", productID.String()),
		)

		return nil, errors.Wrap(domainerrors.ErrFavoriteToggleFailed.WithDetails(domainerrors.UpstreamDetails(err)), "failed to toggle favorite")
	}

	return &usecase.FavoriteToggleOutput{
		ProductID:   productID,
		IsFavorite:  nowFavorite,
		FavoriteIDs: set.idsLocked(),
	}, nil
}

// ListFavoriteProducts returns the products behind the favorite ids.
func (srv *favoritesService) ListFavoriteProducts(ctx context.Context, userID entity.UserID) ([]entity.Product, error) {
	ids, err := srv.ListFavoriteIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}

	products, err := srv.catalog.GetProductsBatch(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to load favorite products", slog.Any("error", err), slog.String("user_id", userID.String()))

		return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable.WithDetails(domainerrors.UpstreamDetails(err)), "failed to load favorite products")
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

// Sweep drops favorite sets idle since olderThan.
func (srv *favoritesService) Sweep(olderThan time.Time) int {
	return srv.sets.sweep(olderThan)
}

func (srv *favoritesService) ensureLoaded(ctx context.Context, userID entity.UserID, set *favoriteSet) ([]entity.ProductID, error) {
	set.mu.Lock()
	if set.loaded {
		ids := set.idsLocked()
		set.mu.Unlock()

		return ids, nil
	}
	if set.loading {
		set.mu.Unlock()

		return nil, domainerrors.ErrFavoritesBusy
	}
	set.loading = true
	set.mu.Unlock()

	ids, err := srv.favorites.ListFavoriteIDs(ctx, userID)

	set.mu.Lock()
	defer set.mu.Unlock()
	set.loading = false

	if err != nil {
		srv.log(ctx).Error("Failed to load favorites", slog.Any("error", err), slog.String("user_id", userID.String()))

		return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable.WithDetails(domainerrors.UpstreamDetails(err)), "failed to load favorites")
	}

	set.ids = set.ids[:0]
	for _, id := range ids {
		if !slices.Contains(set.ids, id) {
			set.ids = append(set.ids, id)
		}
	}
	set.loaded = true

	return set.idsLocked(), nil
}
