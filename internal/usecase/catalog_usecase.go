// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase serves the city-scoped catalog tabs.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, user *entity.User, page int) (*entity.ProductPage, error)
	// GetProductDetails returns a product. productContext selects the favorites
	// detail endpoint, which also returns alternatives.
	GetProductDetails(ctx context.Context, productID entity.ProductID, productContext string) (*entity.ProductDetails, error)
	ListDeals(ctx context.Context, user *entity.User) ([]entity.Deal, error)
	GetDeal(ctx context.Context, dealID int64) (*entity.Deal, error)
	ListSuppliers(ctx context.Context, user *entity.User) ([]entity.Supplier, error)
	GetSupplier(ctx context.Context, supplierID int64) (*entity.Supplier, error)
	ListFeaturedItems(ctx context.Context) ([]entity.FeaturedItem, error)
	Search(ctx context.Context, user *entity.User, term string) (*entity.SearchResults, error)
}
