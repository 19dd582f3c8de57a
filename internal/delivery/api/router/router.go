// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"unifeast/internal/delivery/api/middleware"
	"unifeast/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	MenuHandler    *handler.MenuHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	menuHandler    *handler.MenuHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		menuHandler:    params.MenuHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/vocabulary", handler.GetVocabulary)

	// The menu is public; a valid token personalizes it
	apiV1.GET("/menu", r.menuHandler.GetMenu, r.authMiddleware.Optional)

	profileGroup := apiV1.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/ensure", r.profileHandler.EnsureProfile)
	}
}
