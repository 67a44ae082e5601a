package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartGateway is the server-side cart. Every call is keyed by user id.
type CartGateway interface {
	// FetchCart returns the authoritative cart lines.
	FetchCart(ctx context.Context, userID entity.UserID) ([]entity.CartLine, error)

	// AddToCart adds the product or increments its quantity by quantity.
	AddToCart(ctx context.Context, userID entity.UserID, productID entity.ProductID, quantity int) error

	// SetQuantity sets the absolute quantity of a line already in the cart.
	SetQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID, newQuantity int) error

	// RemoveItem deletes the line for productID.
	RemoveItem(ctx context.Context, userID entity.UserID, productID entity.ProductID) error
}

// ProfileUpdate carries the profile fields a write touches. Nil fields are left alone.
type ProfileUpdate struct {
	SelectedCityID *entity.CityID `json:"selected_city_id,omitempty"`
	FullName       *string        `json:"fullName,omitempty"`
	PhoneNumber    *string        `json:"phoneNumber,omitempty"`
	AddressLine1   *string        `json:"addressLine1,omitempty"`
	AddressLine2   *string        `json:"addressLine2,omitempty"`
	City           *string        `json:"city,omitempty"`
}

// ProfileUpdateFromDraft converts a submitted address form into a profile write.
func ProfileUpdateFromDraft(draft *entity.AddressDraft) *ProfileUpdate {
	return &ProfileUpdate{
		FullName:     &draft.FullName,
		PhoneNumber:  &draft.PhoneNumber,
		AddressLine1: &draft.AddressLine1,
		AddressLine2: &draft.AddressLine2,
		City:         &draft.City,
	}
}

// ProfileGateway reads and upserts the user profile.
type ProfileGateway interface {
	// GetProfile returns the stored profile, or a default one if none exists yet.
	GetProfile(ctx context.Context, userID entity.UserID) (*entity.Profile, error)

	// UpsertProfile creates or updates the profile and returns the stored result.
	UpsertProfile(ctx context.Context, userID entity.UserID, update *ProfileUpdate) (*entity.Profile, error)
}

// OrderGateway creates and lists orders. The backend builds an order from the
// server-side cart and profile.
type OrderGateway interface {
	CreateOrder(ctx context.Context, userID entity.UserID, idempotencyKey string) (*entity.OrderConfirmation, error)
	ListOrders(ctx context.Context, userID entity.UserID) ([]entity.Order, error)
}

// CatalogGateway serves the read-only catalog.
type CatalogGateway interface {
	ListCities(ctx context.Context) ([]entity.City, error)
	ListProducts(ctx context.Context, cityID entity.CityID, page, limit int) (*entity.ProductPage, error)
	GetProduct(ctx context.Context, productID entity.ProductID) (*entity.Product, error)
	GetFavoriteProductDetails(ctx context.Context, productID entity.ProductID) (*entity.ProductDetails, error)
	GetProductsBatch(ctx context.Context, productIDs []entity.ProductID) ([]entity.Product, error)
	ListDeals(ctx context.Context, cityID entity.CityID) ([]entity.Deal, error)
	GetDeal(ctx context.Context, dealID int64) (*entity.Deal, error)
	ListSuppliers(ctx context.Context, cityID entity.CityID) ([]entity.Supplier, error)
	GetSupplier(ctx context.Context, supplierID int64) (*entity.Supplier, error)
	ListFeaturedItems(ctx context.Context) ([]entity.FeaturedItem, error)
	Search(ctx context.Context, term string, cityID entity.CityID, limit int) (*entity.SearchResults, error)
}

// FavoritesGateway stores the user's favorite product ids.
type FavoritesGateway interface {
	ListFavoriteIDs(ctx context.Context, userID entity.UserID) ([]entity.ProductID, error)
	AddFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) error
	RemoveFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) error
}
