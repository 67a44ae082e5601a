package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders service.OrderGateway
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orders service.OrderGateway, qrcode service.QRCodeService, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orders: orders,
		qrcode: qrcode,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the user's past orders.
func (srv *orderService) ListOrders(ctx context.Context, userID entity.UserID) ([]entity.Order, error) {
	if userID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	orders, err := srv.orders.ListOrders(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err), slog.String("user_id", userID.String()))

		return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable.WithDetails(domainerrors.UpstreamDetails(err)), "failed to list orders")
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	return orders, nil
}

// OrderQRCode renders the QR code of an order the user owns.
func (srv *orderService) OrderQRCode(ctx context.Context, userID entity.UserID, orderID int64) ([]byte, error) {
	orders, err := srv.ListOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned := false
	for _, order := range orders {
		if order.ID == orderID {
			owned = true

			break
		}
	}
	if !owned {
		return nil, domainerrors.ErrOrderNotFound
	}

	png, err := srv.qrcode.GenerateOrderQR(userID, orderID)
	if err != nil {
		srv.log(ctx).Error("Failed to render order QR code", slog.Any("error", err), slog.Int64("order_id", orderID))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render order QR code")
	}

	return png, nil
}
