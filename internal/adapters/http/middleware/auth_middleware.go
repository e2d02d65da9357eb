package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/pkg/response"
)

// Cookie names carrying the session tokens
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

const userLocalKey = "user"

// Authenticator resolves an access token to the account it was issued for
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// AuthMiddleware rejects requests without a valid access token cookie
// belonging to an existing account, and stores that account in locals
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Cookie only
		accessToken := c.Cookies(AccessTokenCookie)
		if accessToken == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		// 2. Validate token and load the account
		user, err := auth.Authenticate(c.UserContext(), accessToken)
		if err != nil {
			return response.Unauthorized(c, "Authentication required")
		}

		// 3. Set user in context
		c.Locals(userLocalKey, user)

		return c.Next()
	}
}

// CurrentUser returns the account stored by AuthMiddleware
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
