package handler

import (
	"log/slog"
	"net/http"

	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	Sessions *middleware.SessionMiddleware
	Logger   *slog.Logger
}

// AuthHandler serves the landing page forms: signup, login and logout.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	sessions *middleware.SessionMiddleware
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// Signup registers an account. The client switches to the login tab after the returned delay.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.authUC.Signup(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login signs in and stores the session marker cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessions.Store(c, output.Session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout always succeeds: the cookie is cleared even when there was no live session.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, _ := deliverycontext.GetSession(c)
	output := h.authUC.Logout(c.Request().Context(), session)
	h.sessions.Clear(c)

	return response.Success(c, http.StatusOK, output)
}
