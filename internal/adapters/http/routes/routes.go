package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/http/handlers"
	"palmtec-registry/internal/adapters/http/middleware"
	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/core/services"
)

// Handlers groups everything Register mounts
type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Serial  *handlers.SerialHandler
	Mapping *handlers.MappingHandler

	// Authenticator backs the auth guard on device and mapping routes
	Authenticator middleware.Authenticator
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	serialRepo := repositories.NewSerialRepository(db)
	procRepo := repositories.NewProcedureRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	serialService := services.NewSerialService(serialRepo, procRepo)
	mappingService := services.NewMappingService(procRepo)

	Register(app, &Handlers{
		Health:        handlers.NewHealthHandler(cfg, config.HealthCheck),
		Auth:          handlers.NewAuthHandler(authService, cfg),
		Serial:        handlers.NewSerialHandler(serialService),
		Mapping:       handlers.NewMappingHandler(mappingService),
		Authenticator: authService,
	})
}

// Register mounts the handlers. Paths keep their trailing slash.
func Register(app *fiber.App, h *Handlers) {
	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupAuthRoutes(app, h.Auth)

	// Device and mapping routes require a valid session
	guard := middleware.AuthMiddleware(h.Authenticator)
	setupSerialRoutes(app, guard, h.Serial)
	setupMappingRoutes(app, guard, h.Mapping)
}

// setupAuthRoutes configures the session endpoints. They check the
// cookies themselves and are not behind the auth guard.
func setupAuthRoutes(router fiber.Router, authHandler *handlers.AuthHandler) {
	router.Post("/signup/", middleware.AuthRateLimiter(), authHandler.Signup)
	router.Post("/login/", middleware.AuthRateLimiter(), authHandler.Login)
	router.Post("/logout/", authHandler.Logout)
	router.Post("/token/refresh/", authHandler.RefreshToken)
	router.Get("/protected/", authHandler.Protected)
	router.Get("/verify-auth/", authHandler.VerifyAuth)
}

// setupSerialRoutes configures serial number lifecycle routes
func setupSerialRoutes(router fiber.Router, guard fiber.Handler, serialHandler *handlers.SerialHandler) {
	router.Get("/get_serial_numbers/", guard, serialHandler.List)
	router.Get("/getSerialNumber/", guard, serialHandler.FetchAndReserve)
	router.Get("/get_device_details/", guard, serialHandler.DeviceDetails)
	router.Post("/add_serial_number/", guard, serialHandler.Create)
	router.Post("/add_upi_pro_serial/", guard, serialHandler.CreateUPIPro)
	router.Patch("/approve_serial_number/", guard, serialHandler.Approve)
	router.Patch("/allocate_serial_number/", guard, serialHandler.Allocate)
	router.Post("/allocate_serial_number/", guard, serialHandler.Allocate)
	router.Post("/deactivate_serial_number/", guard, serialHandler.Deactivate)
}

// setupMappingRoutes configures customer mapping routes
func setupMappingRoutes(router fiber.Router, guard fiber.Handler, mappingHandler *handlers.MappingHandler) {
	router.Get("/get_customer_mappings/", guard, mappingHandler.Search)
	router.Post("/create_customer_mapping/", guard, mappingHandler.Create)
	router.Post("/update_customer_mapping/", guard, mappingHandler.Update)
}
