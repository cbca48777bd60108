// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/router/handler"
	"gsale/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	ProductHandler *handler.ProductHandler
	SaleHandler    *handler.SaleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	productHandler *handler.ProductHandler
	saleHandler    *handler.SaleHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		productHandler: params.ProductHandler,
		saleHandler:    params.SaleHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public catalog routes. Anyone can browse, look up a listing and
	// resolve a scanned QR code without a token.
	publicProducts := e.Group("/products")
	{
		publicProducts.GET("", r.productHandler.Search)
		publicProducts.GET("/:id", r.productHandler.Get)
		publicProducts.POST("/scan", r.productHandler.ScanQR)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Session management for the logged-in user
	authSessions := apiV1.Group("/auth")
	{
		authSessions.POST("/logout-all", r.userHandler.LogoutAll)
	}

	// Profile routes
	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/password", r.profileHandler.ChangePassword)
		profileGroup.POST("/become-seller", r.profileHandler.BecomeSeller)
	}

	// Product trading routes available to any authenticated user
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("/:id/reserve", r.productHandler.Reserve)
		productsGroup.POST("/:id/release", r.productHandler.Release)
		productsGroup.POST("/:id/purchase", r.productHandler.Purchase)

		// Listing management (requires seller role)
		sellerGroup := productsGroup.Group("")
		sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller))
		{
			sellerGroup.POST("", r.productHandler.Create)
			sellerGroup.GET("/mine", r.productHandler.ListMine)
			sellerGroup.PUT("/:id", r.productHandler.Update)
			sellerGroup.DELETE("/:id", r.productHandler.Delete)
			sellerGroup.POST("/:id/deactivate", r.productHandler.Deactivate)
			sellerGroup.POST("/:id/activate", r.productHandler.Activate)
			sellerGroup.POST("/:id/discount", r.productHandler.ApplyDiscount)
			sellerGroup.POST("/:id/qr", r.productHandler.GenerateQR)
		}
	}

	// Sale history routes
	salesGroup := apiV1.Group("/sales")
	{
		salesGroup.GET("/purchases", r.saleHandler.ListPurchases)

		sellerSales := salesGroup.Group("")
		sellerSales.Use(r.authMiddleware.RequireRole(entity.RoleSeller))
		{
			sellerSales.GET("", r.saleHandler.ListSales)
			sellerSales.POST("/:id/refund", r.saleHandler.Refund)
		}
	}
}
