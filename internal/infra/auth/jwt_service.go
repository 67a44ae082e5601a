// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const (
	tokenTypeSession = "session"
	defaultTokenTTL  = 12 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed session token carrying the user's identity.
func (s *jwtService) GenerateToken(user *entity.User) (string, error) {
	if user == nil || user.ID.IsZero() {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	// fn/ln/un let a restarted server rebuild the user without a new session.
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"type": tokenTypeSession,
		"fn":   user.FirstName,
		"ln":   user.LastName,
		"un":   user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry and returns the decoded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != tokenTypeSession {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "user id missing from token")
	}
	userID, err := entity.ParseUserID(sub)
	if err != nil || userID.IsZero() {
		return nil, errors.New("invalid user id format in token")
	}

	claims := &service.Claims{
		User: entity.User{ID: userID},
		Type: tokenType,
	}
	claims.User.FirstName, _ = mapClaims["fn"].(string)
	claims.User.LastName, _ = mapClaims["ln"].(string)
	claims.User.Username, _ = mapClaims["un"].(string)
	claims.Subject = sub
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// TokenDuration returns the configured session token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
