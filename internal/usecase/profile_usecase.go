// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileSource hands out the profile currently held for a user.
type ProfileSource interface {
	CurrentProfile(ctx context.Context, user *entity.User) (*entity.Profile, error)
}

// ProfileNotifier is told when a profile was written elsewhere so it can refetch.
type ProfileNotifier interface {
	ProfileChanged(ctx context.Context, user *entity.User) error
}
