package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves session bootstrap, the current user and city selection.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSessionRequest carries the raw Telegram init data. Empty is allowed
// when the server runs with a dev user.
type StartSessionRequest struct {
	InitData string `json:"initData"`
}

// SelectCityRequest represents the request body for choosing a city
type SelectCityRequest struct {
	CityID int64 `json:"cityId" validate:"required,gt=0"`
}

// StartSession verifies the init data and returns a session token.
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.StartSession(c.Request().Context(), req.InitData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Me returns the user and profile behind the token.
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := h.sessionUC.Me(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ListCities returns the selectable cities.
func (h *SessionHandler) ListCities(c echo.Context) error {
	cities, err := h.sessionUC.ListCities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}

// SelectCity stores the user's city.
func (h *SessionHandler) SelectCity(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req SelectCityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.sessionUC.SelectCity(c.Request().Context(), user, entity.CityID(req.CityID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
