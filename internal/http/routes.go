package http

import (
	"time"

	"briks_webapp/internal/config"
	"briks_webapp/internal/http/handlers"
	"briks_webapp/internal/http/middleware"
	"briks_webapp/internal/service"
	"briks_webapp/internal/storage"
	"briks_webapp/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface onto the router.
func RegisterRoutes(r *gin.Engine, store storage.Store, cfg *config.Config, version string) {
	hub := ws.NewHub()
	trading := service.NewTradingService(store, hub)
	h := handlers.NewHandler(store, trading)
	healthHandler := handlers.NewHealthHandler(store, version)

	r.Use(middleware.Metrics())

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second))

	// Onboarding
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.AuthRateLimit, time.Duration(cfg.AuthRateWindow)*time.Second))
	auth.POST("/connect-wallet", h.ConnectWallet)
	auth.POST("/complete-tutorial", h.CompleteTutorial)

	// Session-scoped profile
	api.GET("/me", middleware.Session(), h.Me)

	// Users
	api.GET("/users/:id", h.GetUser)
	api.GET("/users/:id/properties", h.GetUserProperties)
	api.GET("/users/:id/transactions", h.GetUserTransactions)

	// Marketplace
	api.GET("/properties", h.ListProperties)
	api.POST("/properties", h.CreateProperty)
	api.GET("/properties/:id", h.GetProperty)
	api.POST("/properties/:id/purchase", h.Purchase)
	api.POST("/properties/:id/sell", h.Sell)

	// Leaderboard (net worth ranking)
	api.GET("/leaderboard", h.GetLeaderboard)

	// Live market feed
	r.GET("/ws", h.WS(hub))
}
