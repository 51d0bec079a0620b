// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipebox/config"
	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ProfilePath is the route that accepts avatar uploads and has its own body limit.
const ProfilePath = "/api/v1/profile"

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionHandler    *handler.SessionHandler
	ProfileHandler    *handler.ProfileHandler
	SettingsHandler   *handler.SettingsHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	sessionHandler    *handler.SessionHandler
	profileHandler    *handler.ProfileHandler
	settingsHandler   *handler.SettingsHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		sessionHandler:    params.SessionHandler,
		profileHandler:    params.ProfileHandler,
		settingsHandler:   params.SettingsHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Landing page forms
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.sessionMiddleware.Optional)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate)

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.GET("/events", r.sessionHandler.Events)
	}

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile,
			echomiddleware.BodyLimit(r.config.HTTP.MaxUploadRequestBodySize))
		profileGroup.DELETE("/photo", r.profileHandler.RemovePhoto)
		profileGroup.DELETE("", r.profileHandler.DeleteAccount)
	}

	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.POST("/password", r.settingsHandler.ChangePassword)
		settingsGroup.DELETE("/account", r.settingsHandler.DeleteAccount)
	}
}
