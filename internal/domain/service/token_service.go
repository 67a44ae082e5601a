package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	User entity.User
	Type string
	jwt.RegisteredClaims
}

// TokenService issues and validates the session tokens the Mini App sends back
// on every storefront call.
type TokenService interface {
	// GenerateToken creates a session token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured session token lifetime.
	TokenDuration() time.Duration
}
