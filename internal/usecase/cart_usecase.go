// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase is the per-user cart engine. Mutations always end with a refetch
// so the returned snapshot mirrors the server once the call returns.
type CartUsecase interface {
	// GetCart returns the cached cart, fetching it first if it was never loaded.
	GetCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
	// FetchCart replaces the cache with the server cart.
	FetchCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
	AddToCart(ctx context.Context, userID entity.UserID, product *entity.Product) (*entity.CartSnapshot, error)
	IncreaseQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error)
	DecreaseQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error)
	RemoveItem(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error)
	// ViewCart opens the cart view and clears the active item.
	ViewCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
	CloseCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
	// ResetAfterOrder empties the cache and closes the cart view.
	ResetAfterOrder(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
}

// CheckoutCart is the part of the cart engine checkout depends on.
type CheckoutCart interface {
	GetCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
	ResetAfterOrder(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error)
}
