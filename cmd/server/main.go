package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/application/dashboard"
	"github.com/villa-upsell/backend/internal/application/orders"
	"github.com/villa-upsell/backend/internal/application/reporting"
	"github.com/villa-upsell/backend/internal/application/uploads"
	"github.com/villa-upsell/backend/internal/infrastructure/config"
	"github.com/villa-upsell/backend/internal/infrastructure/imaging"
	"github.com/villa-upsell/backend/internal/infrastructure/logger"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence"
	"github.com/villa-upsell/backend/internal/interfaces/http/handler"
	"github.com/villa-upsell/backend/internal/interfaces/http/middleware"
	"github.com/villa-upsell/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting villa upsell backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	upsellRepo := persistence.NewGormUpsellRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)

	// Application services
	statsService := reporting.NewStatsService(reportRepo)
	dashboardService := dashboard.NewService(
		propertyRepo,
		upsellRepo,
		vendorRepo,
		orderRepo,
		reportRepo,
		statsService,
		dashboard.Config{
			MonthlyVisitors: cfg.Analytics.MonthlyVisitors,
			CommissionRate:  decimal.NewFromFloat(cfg.Commission.Rate),
		},
	)
	orderService := orders.NewService(orderRepo, statsService, log)

	// Image store is optional; without credentials upload endpoints
	// report a configuration error instead of falling back to disk.
	var imageStore uploads.ImageStore
	if cfg.Cloudinary.Configured() {
		store, err := imaging.NewCloudinaryStore(&cfg.Cloudinary, cfg.App.IsLocal())
		if err != nil {
			log.Fatal("Failed to initialize image store", zap.Error(err))
		}
		imageStore = store
		log.Info("Image store configured", zap.String("folder", cfg.Cloudinary.Folder))
	} else {
		log.Warn("Image store not configured; uploads are disabled")
	}
	uploadService := uploads.NewService(imageStore, log)

	// HTTP handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	uploadHandler := handler.NewUploadHandler(uploadService, log)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Upload bodies carry multipart framing on top of the image itself.
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxUploadBytes + 1<<20))

	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.Auth(middleware.AuthConfig{
		JWTSecret:      cfg.Auth.JWTSecret,
		HeaderFallback: cfg.Auth.HeaderFallback,
		Logger:         log,
	}))
	r.Register(dashboardHandler).
		Register(orderHandler).
		Register(uploadHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
