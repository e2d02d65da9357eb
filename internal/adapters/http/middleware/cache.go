package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// NoStore marks responses as uncacheable. Session-bound data and serial
// number state must always be read fresh.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-store")
		return err
	}
}
