// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ClientHandler  *handler.ClientHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler    *handler.AuthHandler
	clientHandler  *handler.ClientHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		clientHandler:  params.ClientHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/health", handler.HealthCheck)
	e.GET("/user/first", r.authHandler.GetFirstUser)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
	}

	// Everything below requires a bearer token backed by a session.
	auth := r.authMiddleware.Authenticate

	clientsGroup := e.Group("/clients", auth)
	{
		clientsGroup.POST("", r.clientHandler.CreateClient)
		clientsGroup.GET("", r.clientHandler.ListClients)
	}

	addressGroup := e.Group("/address", auth)
	{
		addressGroup.POST("", r.clientHandler.CreateAddress)
		addressGroup.GET("/all/:clientId", r.clientHandler.ListAddresses)
	}

	productsGroup := e.Group("/products", auth)
	{
		productsGroup.POST("/new", r.catalogHandler.CreateProduct)
		productsGroup.GET("", r.catalogHandler.ListProducts)
	}

	paymentTypeGroup := e.Group("/payment-type", auth)
	{
		paymentTypeGroup.POST("", r.catalogHandler.CreatePaymentType)
		paymentTypeGroup.GET("", r.catalogHandler.ListPaymentTypes)
	}

	// The misspelled path is part of the published API.
	orderGroup := e.Group("/ordder", auth)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
	}
}
