package main

import (
	"catalog-service/internal/handler"
	mid "catalog-service/internal/middleware"
	"catalog-service/pkg/config"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/store"
	"catalog-service/pkg/upload"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// Initialize the catalog store; this seeds the document on first run
	if err := store.Init(cfg); err != nil {
		log.Fatal("Failed to initialize catalog store", zap.Error(err))
	}
	log.Info("Catalog store ready", zap.String("path", cfg.Store.Path))

	// Initialize the upload service
	if err := upload.Init(cfg); err != nil {
		log.Fatal("Failed to initialize upload service", zap.Error(err))
	}
	log.Info("Upload service ready", zap.String("dir", cfg.Upload.Dir))

	// Hash the admin credentials for server-side verification
	if err := handler.InitAuth(cfg); err != nil {
		log.Fatal("Failed to initialize admin auth", zap.Error(err))
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.HealthCheck)

	// Public routes: storefront reads and admin login
	e.POST("/api/auth/login", handler.Login)
	e.GET("/api/products", handler.ListProducts)
	e.GET("/api/settings", handler.GetSettings)

	// Admin routes - require a valid session token
	admin := e.Group("/api", mid.AuthMiddleware)
	admin.POST("/products", handler.CreateProduct)
	admin.PUT("/products/reorder", handler.ReorderProducts)
	admin.PUT("/products/:id", handler.UpdateProduct)
	admin.DELETE("/products/:id", handler.DeleteProduct)
	admin.PATCH("/products/:id/toggle", handler.ToggleProduct)
	admin.PUT("/settings", handler.UpdateSettings)
	admin.POST("/upload", handler.UploadImage)

	// Uploaded images are served as-is
	e.Static("/uploads", cfg.Upload.Dir)

	// Start server
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
