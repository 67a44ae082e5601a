// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	CatalogHandler   *handler.CatalogHandler
	FavoritesHandler *handler.FavoritesHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler   *handler.SessionHandler
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	catalogHandler   *handler.CatalogHandler
	favoritesHandler *handler.FavoritesHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:   params.SessionHandler,
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		catalogHandler:   params.CatalogHandler,
		favoritesHandler: params.FavoritesHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	public := e.Group("/api/v1")
	public.POST("/session", r.sessionHandler.StartSession)

	// Everything else requires the session token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.sessionHandler.Me)
	apiV1.PUT("/me/city", r.sessionHandler.SelectCity)
	apiV1.GET("/cities", r.sessionHandler.ListCities)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.POST("/items/:productId/increase", r.cartHandler.IncreaseItem)
		cartGroup.POST("/items/:productId/decrease", r.cartHandler.DecreaseItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.POST("/view", r.cartHandler.ViewCart)
		cartGroup.POST("/close", r.cartHandler.CloseCart)
	}

	checkoutGroup := apiV1.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Begin)
		checkoutGroup.GET("", r.checkoutHandler.Status)
		checkoutGroup.PATCH("/draft", r.checkoutHandler.UpdateDraft)
		checkoutGroup.POST("/address", r.checkoutHandler.SubmitAddress)
		checkoutGroup.DELETE("", r.checkoutHandler.Cancel)
		checkoutGroup.POST("/confirmation/dismiss", r.checkoutHandler.DismissConfirmation)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id/qr", r.orderHandler.OrderQRCode)
	}

	// Catalog
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/deals", r.catalogHandler.ListDeals)
	apiV1.GET("/deals/:id", r.catalogHandler.GetDeal)
	apiV1.GET("/suppliers", r.catalogHandler.ListSuppliers)
	apiV1.GET("/suppliers/:id", r.catalogHandler.GetSupplier)
	apiV1.GET("/featured", r.catalogHandler.ListFeatured)
	apiV1.GET("/search", r.catalogHandler.Search)

	favoritesGroup := apiV1.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoritesHandler.ListIDs)
		favoritesGroup.POST("/:productId/toggle", r.favoritesHandler.Toggle)
		favoritesGroup.GET("/products", r.favoritesHandler.ListProducts)
	}
}
