package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the session token issued by POST /api/v1/session.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid Bearer token and stores the
// token's user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		user := claims.User
		deliverycontext.SetUser(c, &user)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLoggerOrDefault(ctx, nil); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// CurrentUser returns the user the auth middleware stored, or ErrUnauthorized.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}
