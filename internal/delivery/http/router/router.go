// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guidematch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler  *handler.AuthHandler
	GuideHandler *handler.GuideHandler
	MetaHandler  *handler.MetaHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler  *handler.AuthHandler
	guideHandler *handler.GuideHandler
	metaHandler  *handler.MetaHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:  params.AuthHandler,
		guideHandler: params.GuideHandler,
		metaHandler:  params.MetaHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	{
		api.GET("/", r.metaHandler.Root)
		api.GET("/health", r.metaHandler.Health)
		api.GET("/status", r.metaHandler.Status)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	guideGroup := api.Group("/guides")
	{
		guideGroup.GET("", r.guideHandler.List)
		guideGroup.GET("/:id", r.guideHandler.Get)
	}
}
