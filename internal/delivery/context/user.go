package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetUser is called by the auth middleware once the token checks out.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(userKey), user)
}

// GetUser reports false for requests that skipped the auth middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(userKey)).(*entity.User)
	if !ok || user == nil || user.ID.IsZero() {
		return nil, false
	}

	return user, true
}
