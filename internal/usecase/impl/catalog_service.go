package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog         service.CatalogGateway
	profiles        usecase.ProfileSource
	productsPerPage int
	searchLimit     int
	searchMinLength int
	logger          *slog.Logger

	// last page count seen per city, so paging stops at the end
	pagesMu    sync.RWMutex
	totalPages map[entity.CityID]int
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	cfg *config.Config,
	catalog service.CatalogGateway,
	profiles usecase.ProfileSource,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return newCatalogService(cfg, catalog, profiles, logger)
}

func newCatalogService(
	cfg *config.Config,
	catalog service.CatalogGateway,
	profiles usecase.ProfileSource,
	logger *slog.Logger,
) *catalogService {
	return &catalogService{
		catalog:         catalog,
		profiles:        profiles,
		productsPerPage: cfg.Catalog.ProductsPerPage,
		searchLimit:     cfg.Catalog.SearchLimit,
		searchMinLength: cfg.Catalog.SearchMinLength,
		logger:          logger,
		totalPages:      make(map[entity.CityID]int),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of the products sold in the user's city.
func (srv *catalogService) ListProducts(ctx context.Context, user *entity.User, page int) (*entity.ProductPage, error) {
	cityID, err := srv.selectedCity(ctx, user)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	srv.pagesMu.RLock()
	known, ok := srv.totalPages[cityID]
	srv.pagesMu.RUnlock()
	if ok && page > 1 && page > known {
		return &entity.ProductPage{Items: []entity.Product{}, CurrentPage: page, TotalPages: known}, nil
	}

	result, err := srv.catalog.ListProducts(ctx, cityID, page, srv.productsPerPage)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to list products")
	}
	if result.Items == nil {
		result.Items = []entity.Product{}
	}

	srv.pagesMu.Lock()
	srv.totalPages[cityID] = result.TotalPages
	srv.pagesMu.Unlock()

	return result, nil
}

// GetProductDetails returns a product wrapped with availability. The favorites
// context asks the backend for alternatives as well.
func (srv *catalogService) GetProductDetails(ctx context.Context, productID entity.ProductID, productContext string) (*entity.ProductDetails, error) {
	if productID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productId must be positive")
	}

	if productContext == constants.ProductContextFavorites {
		details, err := srv.catalog.GetFavoriteProductDetails(ctx, productID)
		if err != nil {
			return nil, srv.unavailable(ctx, err, "failed to get favorite product details")
		}
		if details.Alternatives == nil {
			details.Alternatives = []entity.Product{}
		}

		return details, nil
	}

	product, err := srv.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to get product")
	}

	return &entity.ProductDetails{
		OriginalProduct: product,
		IsAvailable:     product.InStock(),
		Alternatives:    []entity.Product{},
	}, nil
}

// ListDeals returns the deals running in the user's city.
func (srv *catalogService) ListDeals(ctx context.Context, user *entity.User) ([]entity.Deal, error) {
	cityID, err := srv.selectedCity(ctx, user)
	if err != nil {
		return nil, err
	}

	deals, err := srv.catalog.ListDeals(ctx, cityID)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to list deals")
	}
	if deals == nil {
		deals = []entity.Deal{}
	}

	return deals, nil
}

func (srv *catalogService) GetDeal(ctx context.Context, dealID int64) (*entity.Deal, error) {
	deal, err := srv.catalog.GetDeal(ctx, dealID)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to get deal")
	}

	return deal, nil
}

// ListSuppliers returns the suppliers selling in the user's city.
func (srv *catalogService) ListSuppliers(ctx context.Context, user *entity.User) ([]entity.Supplier, error) {
	cityID, err := srv.selectedCity(ctx, user)
	if err != nil {
		return nil, err
	}

	suppliers, err := srv.catalog.ListSuppliers(ctx, cityID)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to list suppliers")
	}
	if suppliers == nil {
		suppliers = []entity.Supplier{}
	}

	return suppliers, nil
}

func (srv *catalogService) GetSupplier(ctx context.Context, supplierID int64) (*entity.Supplier, error) {
	supplier, err := srv.catalog.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to get supplier")
	}

	return supplier, nil
}

func (srv *catalogService) ListFeaturedItems(ctx context.Context) ([]entity.FeaturedItem, error) {
	items, err := srv.catalog.ListFeaturedItems(ctx)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to list featured items")
	}
	if items == nil {
		items = []entity.FeaturedItem{}
	}

	return items, nil
}

// Search looks up products, deals and suppliers in the user's city. Terms
// shorter than the configured minimum return an empty result without a call.
func (srv *catalogService) Search(ctx context.Context, user *entity.User, term string) (*entity.SearchResults, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < srv.searchMinLength {
		return entity.EmptySearchResults(), nil
	}

	cityID, err := srv.selectedCity(ctx, user)
	if err != nil {
		return nil, err
	}

	results, err := srv.catalog.Search(ctx, term, cityID, srv.searchLimit)
	if err != nil {
		return nil, srv.unavailable(ctx, err, "failed to search")
	}
	if results.Products.Items == nil {
		results.Products.Items = []entity.Product{}
	}
	if results.Deals == nil {
		results.Deals = []entity.Deal{}
	}
	if results.Suppliers == nil {
		results.Suppliers = []entity.Supplier{}
	}

	return results, nil
}

func (srv *catalogService) selectedCity(ctx context.Context, user *entity.User) (entity.CityID, error) {
	profile, err := srv.profiles.CurrentProfile(ctx, user)
	if err != nil {
		return 0, err
	}
	if !profile.HasCity() {
		return 0, domainerrors.ErrCityRequired
	}

	return *profile.SelectedCityID, nil
}

func (srv *catalogService) unavailable(ctx context.Context, err error, message string) error {
	srv.log(ctx).Error("Catalog request failed", slog.Any("error", err), slog.String("operation", message))

	return errors.Wrap(domainerrors.ErrCatalogUnavailable.WithDetails(domainerrors.UpstreamDetails(err)), message)
}
