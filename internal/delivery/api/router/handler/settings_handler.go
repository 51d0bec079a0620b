package handler

import (
	"log/slog"
	"net/http"

	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Sessions   *middleware.SessionMiddleware
	Logger     *slog.Logger
}

// SettingsHandler serves the settings page.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	sessions   *middleware.SessionMiddleware
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		sessions:   params.Sessions,
		logger:     params.Logger,
	}
}

// ChangePassword sets a new password and keeps the page signed in with the renewed session.
func (h *SettingsHandler) ChangePassword(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	output, err := h.settingsUC.ChangePassword(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if output.Session != nil {
		if err := h.sessions.Store(c, output.Session); err != nil {
			return err
		}
	}

	return response.Success(c, http.StatusOK, output)
}

// DeleteAccount deletes the account. Both a completed deletion and a stale-session soft
// failure end the session, so the cookie is cleared either way.
func (h *SettingsHandler) DeleteAccount(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var input usecase.SettingsDeleteAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	output, err := h.settingsUC.DeleteAccount(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.sessions.Clear(c)

	return response.Success(c, http.StatusOK, output)
}
