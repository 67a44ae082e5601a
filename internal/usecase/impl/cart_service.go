package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface on top of one cartEngine per user.
type cartService struct {
	gateway service.CartGateway
	carts   *registry[*cartEngine]
	logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(gateway service.CartGateway, logger *slog.Logger) usecase.CartUsecase {
	return newCartService(gateway, logger)
}

func newCartService(gateway service.CartGateway, logger *slog.Logger) *cartService {
	return &cartService{
		gateway: gateway,
		carts: newRegistry(func(userID entity.UserID) *cartEngine {
			return newCartEngine(userID, gateway)
		}),
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the cached cart, loading it on first access.
func (srv *cartService) GetCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	if !engine.isLoaded() {
		return srv.FetchCart(ctx, userID)
	}

	return engine.snapshot(), nil
}

// FetchCart replaces the cached cart with the server cart.
func (srv *cartService) FetchCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	if err := engine.fetch(ctx); err != nil {
		srv.log(ctx).Error("Failed to fetch cart", slog.Any("error", err), slog.String("user_id", userID.String()))

		return engine.snapshot(), errors.Wrap(
			domainerrors.ErrCartLoadFailed.WithDetails(domainerrors.UpstreamDetails(err)),
			"failed to fetch cart",
		)
	}

	return engine.snapshot(), nil
}

// AddToCart adds one unit of product and points the mini-cart at it.
func (srv *cartService) AddToCart(ctx context.Context, userID entity.UserID, product *entity.Product) (*entity.CartSnapshot, error) {
	if userID.IsZero() || product == nil || product.ID == 0 {
		return srv.current(userID), nil
	}

	srv.log(ctx).Debug("Adding to cart", slog.String("user_id", userID.String()), slog.String("product_id", product.ID.String()))

	engine := srv.carts.get(userID)
	if err := engine.add(ctx, product); err != nil {
		return srv.mutationFailed(ctx, engine, err, "failed to add to cart")
	}

	return engine.snapshot(), nil
}

// IncreaseQuantity adds one unit of a product already in the cart.
func (srv *cartService) IncreaseQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error) {
	if userID.IsZero() || productID == 0 {
		return srv.current(userID), nil
	}

	engine := srv.carts.get(userID)
	if err := engine.increase(ctx, productID); err != nil {
		return srv.mutationFailed(ctx, engine, err, "failed to increase quantity")
	}

	return engine.snapshot(), nil
}

// DecreaseQuantity removes one unit; the last unit removes the line.
func (srv *cartService) DecreaseQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	if err := engine.decrease(ctx, productID); err != nil {
		return srv.mutationFailed(ctx, engine, err, "failed to decrease quantity")
	}

	return engine.snapshot(), nil
}

// RemoveItem deletes the line for productID.
func (srv *cartService) RemoveItem(ctx context.Context, userID entity.UserID, productID entity.ProductID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	if err := engine.remove(ctx, productID); err != nil {
		return srv.mutationFailed(ctx, engine, err, "failed to remove item")
	}

	return engine.snapshot(), nil
}

// ViewCart opens the cart view.
func (srv *cartService) ViewCart(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	engine.setVisible(true)

	return srv.GetCart(ctx, userID)
}

// CloseCart closes the cart view.
func (srv *cartService) CloseCart(_ context.Context, userID entity.UserID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	engine.setVisible(false)

	return engine.snapshot(), nil
}

// ResetAfterOrder clears the cart once an order was placed.
func (srv *cartService) ResetAfterOrder(ctx context.Context, userID entity.UserID) (*entity.CartSnapshot, error) {
	if userID.IsZero() {
		return emptyCart(), nil
	}

	engine := srv.carts.get(userID)
	engine.reset()
	srv.log(ctx).Debug("Cart reset after order", slog.String("user_id", userID.String()))

	return engine.snapshot(), nil
}

// Sweep drops carts idle since olderThan. They are refetched on next use.
func (srv *cartService) Sweep(olderThan time.Time) int {
	return srv.carts.sweep(olderThan)
}

func (srv *cartService) current(userID entity.UserID) *entity.CartSnapshot {
	if userID.IsZero() {
		return emptyCart()
	}

	return srv.carts.get(userID).snapshot()
}

// mutationFailed returns the refetched cart together with the alert for the failed write.
func (srv *cartService) mutationFailed(ctx context.Context, engine *cartEngine, err error, message string) (*entity.CartSnapshot, error) {
	srv.log(ctx).Error("Cart update failed",
		slog.Any("error", err),
		slog.String("user_id", engine.userID.String()),
		slog.String("operation", message),
	)

	return engine.snapshot(), errors.Wrap(
		domainerrors.ErrCartUpdateFailed.WithDetails(domainerrors.UpstreamDetails(err)),
		message,
	)
}

func emptyCart() *entity.CartSnapshot {
	return &entity.CartSnapshot{Items: []entity.CartLine{}}
}
