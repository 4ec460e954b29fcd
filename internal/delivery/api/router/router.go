// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dreamtree/config"
	"dreamtree/internal/delivery/api/middleware"
	"dreamtree/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AtprotoHandler *handler.AtprotoHandler
	SyncHandler    *handler.SyncHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	atprotoHandler *handler.AtprotoHandler
	syncHandler    *handler.SyncHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		atprotoHandler: params.AtprotoHandler,
		syncHandler:    params.SyncHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public network-facing routes. Authorization servers fetch the metadata
	// document and browsers land on the callback, so neither can sit behind
	// the application's own authentication.
	atprotoPublic := e.Group("/atproto")
	{
		atprotoPublic.GET("/client-metadata.json", r.atprotoHandler.ClientMetadata)
		atprotoPublic.GET("/callback", r.atprotoHandler.Callback)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Account connection routes
	atprotoGroup := apiV1.Group("/atproto")
	{
		atprotoGroup.POST("/connect", r.atprotoHandler.Connect)
		atprotoGroup.GET("/connect/qr", r.atprotoHandler.ConnectQR)
		atprotoGroup.GET("/status", r.atprotoHandler.Status)
		atprotoGroup.POST("/disconnect", r.atprotoHandler.Disconnect)
	}

	// Skill sync routes
	syncGroup := apiV1.Group("/sync")
	{
		syncGroup.POST("/skills", r.syncHandler.SyncSkills)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueDevToken)

		// Test routes that require authentication
		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
