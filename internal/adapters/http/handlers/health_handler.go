package handlers

import (
	"github.com/gofiber/fiber/v2"

	"palmtec-registry/internal/config"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg  *config.Config
	ping func() error
}

// NewHealthHandler creates a new health handler. ping reports database reachability.
func NewHealthHandler(cfg *config.Config, ping func() error) *HealthHandler {
	return &HealthHandler{cfg: cfg, ping: ping}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "Palmtec registry API is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "healthy"
	code := fiber.StatusOK
	if err := h.ping(); err != nil {
		dbStatus = "unhealthy"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}
