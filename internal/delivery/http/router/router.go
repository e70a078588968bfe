// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Identity routes. The verify endpoints carry the token in the query
	// string because the frontend calls them from plain links.
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.GET("/verify-session", r.authHandler.VerifySession)
	e.POST("/forgot-password", r.authHandler.ForgotPassword)
	e.GET("/verify-link", r.authHandler.VerifyLink)

	// Catalog reads stay open; writes require a session token.
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/products", r.productHandler.List)

	guarded := e.Group("")
	guarded.Use(r.authMiddleware.RequireToken)
	{
		guarded.POST("/update-profile", r.authHandler.UpdateProfile)
		guarded.POST("/create-category", r.categoryHandler.Create)
		guarded.POST("/update-category", r.categoryHandler.Update)
		guarded.POST("/delete-category", r.categoryHandler.Delete)
		guarded.POST("/create-product", r.productHandler.Create)
		guarded.POST("/update-product", r.productHandler.Update)
		guarded.POST("/delete-product", r.productHandler.Delete)
	}
}
