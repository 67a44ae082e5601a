package service

import (
	"storefront/internal/domain/entity"
)

// IdentityVerifier resolves the Mini App user from the launch payload the
// Telegram client hands to the web app.
type IdentityVerifier interface {
	// Verify checks the payload signature and returns the user it describes.
	Verify(initData string) (*entity.User, error)
}
