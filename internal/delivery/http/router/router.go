// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	VerificationHandler *handler.VerificationHandler
	AssistantHandler    *handler.AssistantHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog: verified products and artisan storefronts only.
	e.GET("/products", r.params.CatalogHandler.ListPublic)
	e.GET("/products/:id", r.params.CatalogHandler.GetPublic)
	e.GET("/artisans/:id", r.params.CatalogHandler.GetArtisanPage)

	// Account routes: everything past the token check.
	accountGroup := e.Group("/account", auth.Authenticate)
	{
		accountGroup.POST("/register", r.params.AccountHandler.Register)
		accountGroup.POST("/ensure", r.params.AccountHandler.Ensure)
		accountGroup.GET("/me", r.params.AccountHandler.Me)
		accountGroup.GET("/me/stream", r.params.AccountHandler.Stream)
		accountGroup.PUT("/me/shipping-address", r.params.AccountHandler.UpdateShippingAddress)
		accountGroup.PUT("/me/story", r.params.AccountHandler.UpdateStory)
	}

	// Cart routes, buyer-facing.
	cartGroup := e.Group("/cart", auth.Authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.Get)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.params.CartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
	}

	// Buyer order routes.
	orderGroup := e.Group("/orders", auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Checkout)
		orderGroup.GET("", r.params.OrderHandler.ListForBuyer)
		orderGroup.GET("/:id", r.params.OrderHandler.GetForBuyer)
	}

	// Verification routes. Submission is open to unverified artisans; the
	// handler enforces the role.
	verificationGroup := e.Group("/verification", auth.Authenticate)
	{
		verificationGroup.POST("", r.params.VerificationHandler.Submit)
		verificationGroup.GET("", r.params.VerificationHandler.GetOwn)
	}

	// Media signing for direct uploads.
	e.POST("/media/sign-upload", r.params.MediaHandler.SignUpload, auth.Authenticate)

	// AI advisory routes.
	aiGroup := e.Group("/ai", auth.Authenticate)
	{
		aiGroup.POST("/enhance-description", r.params.AssistantHandler.EnhanceDescription)
		aiGroup.POST("/enhance-story", r.params.AssistantHandler.EnhanceStory)
		aiGroup.POST("/analyze-product", r.params.AssistantHandler.AnalyzeProduct)
		aiGroup.POST("/brand-kit", r.params.AssistantHandler.GenerateBrandKit)
		aiGroup.POST("/generate-image", r.params.AssistantHandler.GenerateImage)
		aiGroup.POST("/chat", r.params.AssistantHandler.Chat)
	}

	// Artisan hub: verified artisans only.
	artisanGroup := e.Group("/artisan", auth.Authenticate, auth.RequireVerifiedArtisan)
	{
		artisanGroup.GET("/products", r.params.CatalogHandler.ListOwn)
		artisanGroup.POST("/products", r.params.CatalogHandler.Create)
		artisanGroup.PUT("/products/:id", r.params.CatalogHandler.Update)
		artisanGroup.DELETE("/products/:id", r.params.CatalogHandler.Delete)
		artisanGroup.GET("/orders", r.params.OrderHandler.ListForArtisan)
		artisanGroup.POST("/orders/:id/ready", r.params.OrderHandler.MarkReadyForPickup)
	}

	// Admin console.
	adminGroup := e.Group("/admin", auth.Authenticate, auth.RequireAdmin)
	{
		adminGroup.GET("/products/pending", r.params.CatalogHandler.ListPending)
		adminGroup.POST("/products/:id/approve", r.params.CatalogHandler.Approve)
		adminGroup.GET("/verifications/pending", r.params.VerificationHandler.ListPending)
		adminGroup.POST("/verifications/:uid/approve", r.params.VerificationHandler.Approve)
		adminGroup.POST("/verifications/:uid/reject", r.params.VerificationHandler.Reject)
		adminGroup.GET("/orders/active", r.params.OrderHandler.ListActiveForAdmin)
		adminGroup.POST("/orders/:id/status", r.params.OrderHandler.AdvanceStatus)
	}
}
