// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// FavoritesUsecase keeps the user's favorite set.
type FavoritesUsecase interface {
	ListFavoriteIDs(ctx context.Context, userID entity.UserID) ([]entity.ProductID, error)
	// ToggleFavorite flips membership optimistically and reverts when the backend refuses.
	ToggleFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*FavoriteToggleOutput, error)
	ListFavoriteProducts(ctx context.Context, userID entity.UserID) ([]entity.Product, error)
}

// FavoriteToggleOutput is the favorite set after a toggle.
type FavoriteToggleOutput struct {
	ProductID   entity.ProductID   `json:"productId"`
	IsFavorite  bool               `json:"isFavorite"`
	FavoriteIDs []entity.ProductID `json:"favoriteIds"`
}
