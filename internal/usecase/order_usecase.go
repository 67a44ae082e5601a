// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase serves the orders tab.
type OrderUsecase interface {
	ListOrders(ctx context.Context, userID entity.UserID) ([]entity.Order, error)
	// OrderQRCode renders a PNG QR code for one of the user's orders.
	OrderQRCode(ctx context.Context, userID entity.UserID, orderID int64) ([]byte, error)
}
