package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"palmtec-registry/internal/adapters/http/middleware"
	"palmtec-registry/internal/adapters/http/routes"
	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/core/services"
	"palmtec-registry/internal/pkg/logger"

	_ "palmtec-registry/docs" // Swagger docs
)

// @title Palmtec Registry API
// @version 1.0
// @description Serial number lifecycle and customer mapping API for Palmtec UPI devices.

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token

func main() {
	// .env may carry APP_MODE, so it is read before the logger is built.
	// The logger comes before config.Load so loading can report problems.
	config.LoadEnvFile()
	if err := logger.Init(os.Getenv("APP_MODE")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer config.CloseDatabase()

	// Auto migrate (creates the users table if not exist)
	// serialdata and palmtec_upi_details belong to the stored procedures
	if err := models.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}
	logger.Info("Database migration completed")

	if err := config.NewSeeder(db, cfg.Seed).Run(); err != nil {
		logger.Warn("Seeding skipped", zap.Error(err))
	}

	// Stock watch for approved, unallocated serial numbers
	stockWatch := services.NewStockWatchService(repositories.NewSerialRepository(db), cfg.StockWatch)
	if err := stockWatch.Start(); err != nil {
		logger.Fatal("Failed to start stock watch", zap.Error(err))
	}
	defer stockWatch.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Palmtec Registry API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}
