package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"briks_webapp/internal/config"
	httpServer "briks_webapp/internal/http"
	"briks_webapp/internal/http/middleware"
	"briks_webapp/internal/logger"
	"briks_webapp/internal/service"
	"briks_webapp/internal/storage"
	"briks_webapp/internal/storage/memory"
	"briks_webapp/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitSessions(cfg.JWTSecret)

	store := openStore(cfg)
	defer store.Close()

	r := gin.Default()

	// CORS for the game frontend on a different origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, store, cfg, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// openStore selects the backend: postgres when DATABASE_URL is set, the
// in-memory store (with the demo catalogue) otherwise.
func openStore(cfg *config.Config) storage.Store {
	if cfg.DatabaseURL != "" {
		store, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connect failed", "error", err)
		}
		logger.Info("storage backend: postgres")
		return store
	}

	store := memory.NewStore()
	if cfg.SeedDemo {
		if err := storage.SeedDemoCatalogue(context.Background(), store); err != nil {
			logger.Fatal("seed demo catalogue failed", "error", err)
		}
	}
	logger.Info("storage backend: memory", "seeded", cfg.SeedDemo)
	return store
}
