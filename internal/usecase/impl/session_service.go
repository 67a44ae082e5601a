// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// profileEntry is the profile cached for one user.
type profileEntry struct {
	mu      sync.Mutex
	profile *entity.Profile
}

func (e *profileEntry) get() *entity.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.profile.Clone()
}

func (e *profileEntry) set(profile *entity.Profile) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile = profile.Clone()
}

// sessionService implements the SessionUsecase interface. It is the single
// owner of profile state; other services read it through ProfileSource.
type sessionService struct {
	allowDevUser bool
	verifier     service.IdentityVerifier
	tokens       service.TokenService
	profiles     service.ProfileGateway
	catalog      service.CatalogGateway
	entries      *registry[*profileEntry]
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	profiles service.ProfileGateway,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return newSessionService(cfg, verifier, tokens, profiles, catalog, logger)
}

func newSessionService(
	cfg *config.Config,
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	profiles service.ProfileGateway,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) *sessionService {
	return &sessionService{
		allowDevUser: cfg.Auth.AllowDevUser,
		verifier:     verifier,
		tokens:       tokens,
		profiles:     profiles,
		catalog:      catalog,
		entries: newRegistry(func(entity.UserID) *profileEntry {
			return &profileEntry{}
		}),
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession resolves the user, loads their profile and issues a token.
func (srv *sessionService) StartSession(ctx context.Context, initData string) (*usecase.SessionOutput, error) {
	user, err := srv.resolveUser(initData)
	if err != nil {
		srv.log(ctx).Warn("Rejected session start", slog.Any("error", err))

		return nil, err
	}

	profile, err := srv.loadProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokens.GenerateToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err), slog.String("user_id", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue session token")
	}

	srv.log(ctx).Info("Session started",
		slog.String("user_id", user.ID.String()),
		slog.Bool("needs_city", !profile.HasCity()),
	)

	return &usecase.SessionOutput{
		Token:       token,
		SessionView: sessionView(user, profile),
	}, nil
}

// Me returns the user with their current profile.
func (srv *sessionService) Me(ctx context.Context, user *entity.User) (*usecase.SessionView, error) {
	profile, err := srv.CurrentProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	view := sessionView(user, profile)

	return &view, nil
}

// CurrentProfile returns the cached profile, loading it if this instance has none.
func (srv *sessionService) CurrentProfile(ctx context.Context, user *entity.User) (*entity.Profile, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	if entry, ok := srv.entries.lookup(user.ID); ok {
		if profile := entry.get(); profile != nil {
			return profile, nil
		}
	}

	return srv.loadProfile(ctx, user)
}

// ProfileChanged refetches the profile after another component wrote it.
func (srv *sessionService) ProfileChanged(ctx context.Context, user *entity.User) error {
	if user == nil || user.ID.IsZero() {
		return domainerrors.ErrUserRequired
	}

	srv.log(ctx).Debug("Profile changed, refetching", slog.String("user_id", user.ID.String()))
	_, err := srv.loadProfile(ctx, user)

	return err
}

// ListCities returns the cities the marketplace serves.
func (srv *sessionService) ListCities(ctx context.Context) ([]entity.City, error) {
	cities, err := srv.catalog.ListCities(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list cities", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable.WithDetails(domainerrors.UpstreamDetails(err)), "failed to list cities")
	}

	return cities, nil
}

// SelectCity writes the selected city to the profile.
func (srv *sessionService) SelectCity(ctx context.Context, user *entity.User, cityID entity.CityID) (*usecase.SessionView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}
	if cityID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cityId must be positive")
	}

	previous, err := srv.CurrentProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	updated, err := srv.profiles.UpsertProfile(ctx, user.ID, &service.ProfileUpdate{SelectedCityID: &cityID})
	if err != nil {
		srv.log(ctx).Error("Failed to save city selection", slog.Any("error", err), slog.String("user_id", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrCitySelectionFailed.WithDetails(domainerrors.UpstreamDetails(err)), "failed to select city")
	}
	srv.entries.get(user.ID).set(updated)

	changed := previous.HasCity() && *previous.SelectedCityID != cityID
	if changed || updated.SelectedCityName == "" {
		// The upsert answer may lack joined fields such as the city name.
		if refreshed, err := srv.loadProfile(ctx, user); err == nil {
			updated = refreshed
		}
	}

	srv.log(ctx).Info("City selected",
		slog.String("user_id", user.ID.String()),
		slog.String("city_id", cityID.String()),
		slog.Bool("changed", changed),
	)

	view := sessionView(user, updated)

	return &view, nil
}

// Sweep drops cached profiles idle since olderThan.
func (srv *sessionService) Sweep(olderThan time.Time) int {
	return srv.entries.sweep(olderThan)
}

func (srv *sessionService) resolveUser(initData string) (*entity.User, error) {
	if initData == "" {
		if !srv.allowDevUser {
			return nil, domainerrors.ErrInitDataInvalid.WithDetails("init data is required")
		}

		return &entity.User{
			ID:        entity.UserID(constants.DevUserID),
			FirstName: constants.DevUserFirstName,
			LastName:  constants.DevUserLastName,
		}, nil
	}

	user, err := srv.verifier.Verify(initData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInitDataInvalid.WithDetails(err.Error()), "failed to verify init data")
	}

	return user, nil
}

func (srv *sessionService) loadProfile(ctx context.Context, user *entity.User) (*entity.Profile, error) {
	profile, err := srv.profiles.GetProfile(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load profile", slog.Any("error", err), slog.String("user_id", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrProfileLoadFailed, "failed to load profile")
	}
	if profile.UserID.IsZero() {
		profile.UserID = user.ID
	}
	srv.entries.get(user.ID).set(profile)

	return profile.Clone(), nil
}

func sessionView(user *entity.User, profile *entity.Profile) usecase.SessionView {
	return usecase.SessionView{
		User:      user,
		Profile:   profile,
		NeedsCity: !profile.HasCity(),
	}
}
