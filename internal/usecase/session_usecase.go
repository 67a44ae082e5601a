// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase resolves the Mini App user and owns their profile.
type SessionUsecase interface {
	ProfileSource
	ProfileNotifier

	// StartSession verifies init data, loads the profile and issues a session token.
	StartSession(ctx context.Context, initData string) (*SessionOutput, error)
	Me(ctx context.Context, user *entity.User) (*SessionView, error)
	ListCities(ctx context.Context) ([]entity.City, error)
	// SelectCity stores the city on the profile. Changing an existing city
	// re-scopes all city-dependent data.
	SelectCity(ctx context.Context, user *entity.User, cityID entity.CityID) (*SessionView, error)
}

// --- Output DTOs ---

// SessionView is the user and profile the front end renders from.
type SessionView struct {
	User      *entity.User    `json:"user"`
	Profile   *entity.Profile `json:"profile"`
	NeedsCity bool            `json:"needsCity"`
}

// SessionOutput is returned when a session starts.
type SessionOutput struct {
	Token string `json:"token"`
	SessionView
}
