// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ideadrop/internal/delivery/http/middleware"
	"ideadrop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	IdeaHandler    *handler.IdeaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	ideaHandler    *handler.IdeaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		ideaHandler:    params.IdeaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Idea routes. Reads are public; mutations require a valid access
	// token, applied per route rather than on the group.
	ideaGroup := e.Group("/api/ideas")
	{
		ideaGroup.GET("", r.ideaHandler.List)
		ideaGroup.GET("/:id", r.ideaHandler.Get)
		ideaGroup.POST("", r.ideaHandler.Create, r.authMiddleware.Authenticate)
		ideaGroup.PUT("/:id", r.ideaHandler.Update, r.authMiddleware.Authenticate)
		ideaGroup.DELETE("/:id", r.ideaHandler.Delete, r.authMiddleware.Authenticate)
	}
}
