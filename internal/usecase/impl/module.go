package impl

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CartResult exposes the cart service under each port it serves.
type CartResult struct {
	fx.Out

	Cart     usecase.CartUsecase
	Checkout usecase.CheckoutCart
	Sweeper  usecase.Sweeper `group:"sweepers"`
}

// SessionResult exposes the session service under each port it serves.
type SessionResult struct {
	fx.Out

	Session  usecase.SessionUsecase
	Profiles usecase.ProfileSource
	Notifier usecase.ProfileNotifier
	Sweeper  usecase.Sweeper `group:"sweepers"`
}

// CheckoutResult exposes the checkout orchestrator.
type CheckoutResult struct {
	fx.Out

	Checkout usecase.CheckoutUsecase
	Sweeper  usecase.Sweeper `group:"sweepers"`
}

// FavoritesResult exposes the favorites service.
type FavoritesResult struct {
	fx.Out

	Favorites usecase.FavoritesUsecase
	Sweeper   usecase.Sweeper `group:"sweepers"`
}

// CheckoutParams holds dependencies for the checkout orchestrator.
type CheckoutParams struct {
	fx.In

	Cart      usecase.CheckoutCart
	Profiles  usecase.ProfileSource
	Notifier  usecase.ProfileNotifier
	Gateway   service.ProfileGateway
	Orders    service.OrderGateway
	Ledger    repository.CheckoutRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

func provideCartService(gateway service.CartGateway, logger *slog.Logger) CartResult {
	srv := newCartService(gateway, logger)

	return CartResult{Cart: srv, Checkout: srv, Sweeper: srv}
}

func provideSessionService(
	cfg *config.Config,
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	profiles service.ProfileGateway,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) SessionResult {
	srv := newSessionService(cfg, verifier, tokens, profiles, catalog, logger)

	return SessionResult{Session: srv, Profiles: srv, Notifier: srv, Sweeper: srv}
}

func provideCheckoutService(params CheckoutParams) CheckoutResult {
	srv := newCheckoutService(
		params.Cart,
		params.Profiles,
		params.Notifier,
		params.Gateway,
		params.Orders,
		params.Ledger,
		params.Publisher,
		params.Logger,
	)

	return CheckoutResult{Checkout: srv, Sweeper: srv}
}

func provideFavoritesService(favorites service.FavoritesGateway, catalog service.CatalogGateway, logger *slog.Logger) FavoritesResult {
	srv := newFavoritesService(favorites, catalog, logger)

	return FavoritesResult{Favorites: srv, Sweeper: srv}
}

// Module provides every usecase and starts the janitor that drops idle
// per-user state.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		provideCartService,
		provideSessionService,
		provideCheckoutService,
		provideFavoritesService,
		NewCatalogService,
		NewOrderService,
		NewSessionJanitor,
	),
	fx.Invoke(func(*SessionJanitor) {}),
)
