// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/config"
	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/router/handler"
	"addressbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
	Collector      *metrics.Collector
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
	collector      *metrics.Collector
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
		collector:      params.Collector,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsEnabled() {
		e.GET("/metrics", echo.WrapHandler(r.collector.Handler()))
	}

	// Every API request is resolved; handlers decide whether identity is required.
	api := e.Group("/api", r.authMiddleware.Resolve)

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.GET("/current", r.userHandler.Current)
		users.PATCH("/current", r.userHandler.Update)
		users.DELETE("/current", r.userHandler.Logout)
	}

	contacts := api.Group("/contacts")
	{
		contacts.POST("", r.contactHandler.Create)
		contacts.GET("", r.contactHandler.Search)
		contacts.GET("/:contactId", r.contactHandler.Get)
		contacts.PATCH("/:contactId", r.contactHandler.Update)
		contacts.DELETE("/:contactId", r.contactHandler.Delete)

		contacts.POST("/:contactId/addresses", r.addressHandler.Create)
		contacts.GET("/:contactId/addresses", r.addressHandler.List)
		contacts.GET("/:contactId/addresses/:addressId", r.addressHandler.Get)
		contacts.PATCH("/:contactId/addresses/:addressId", r.addressHandler.Update)
		contacts.DELETE("/:contactId/addresses/:addressId", r.addressHandler.Remove)
	}
}

func (r *router) metricsEnabled() bool {
	return r.collector != nil && r.config != nil && r.config.Metrics != nil && r.config.Metrics.Enabled
}
