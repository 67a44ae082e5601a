package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/backend"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
)

const defaultBackendTimeout = 15 * time.Second

// cliEnv is the usecase graph the server builds with fx, built by hand for
// a single user.
type cliEnv struct {
	user     *entity.User
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	checkout usecase.CheckoutUsecase
}

func newEnv(flags *commonFlags) (*cliEnv, error) {
	if *flags.userID <= 0 {
		return nil, errors.New("--user is required")
	}

	cfg, logger, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	client := backend.NewClient(cfg.Backend, logger)
	profiles := backend.NewProfileGateway(client)
	cart := impl.NewCartService(backend.NewCartGateway(client), logger)
	session := impl.NewSessionService(cfg, nil, nil, profiles, backend.NewCatalogGateway(client), logger)
	checkout := impl.NewCheckoutService(
		cart,
		session,
		session,
		profiles,
		backend.NewOrderGateway(client),
		memory.NewCheckoutRepository(),
		pubsub.NewNoopPublisher(logger),
		logger,
	)

	return &cliEnv{
		user:     &entity.User{ID: entity.UserID(*flags.userID)},
		cart:     cart,
		session:  session,
		checkout: checkout,
	}, nil
}

// loadConfig reads the service config, or builds a minimal one when
// --backend is given.
func loadConfig(flags *commonFlags) (*config.Config, *slog.Logger, error) {
	level := slog.LevelWarn
	if *flags.verbose {
		level = slog.LevelDebug
	}

	if *flags.backend != "" {
		cfg := &config.Config{}
		cfg.Backend = config.BackendConfig{BaseURL: *flags.backend, Timeout: defaultBackendTimeout}

		return cfg, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
	}

	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config, pass --backend to skip it")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, err
	}
	if !*flags.verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg, logger, nil
}
