package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"palmtec-registry/internal/adapters/http/middleware"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/core/services"
	"palmtec-registry/internal/pkg/logger"
	"palmtec-registry/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Username  string `json:"username"`
	MailID    string `json:"mailid"`
	Password  string `json:"password"`
	CPassword string `json:"cpassword"`
	Role      string `json:"role"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles account creation
// @Summary Create account
// @Description Create a verified account. Role defaults to employee.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Account data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /signup/ [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return response.BadRequest(c, "Invalid Input")
	}

	username, _ := stringField(body, "username")
	email, _ := stringField(body, "mailid")
	plain, _ := stringField(body, "password")
	confirm, _ := stringField(body, "cpassword")
	role, _ := stringField(body, "role")

	user, err := h.authService.Signup(c.UserContext(), &services.SignupInput{
		Username:        username,
		Email:           email,
		Password:        plain,
		ConfirmPassword: confirm,
		Role:            role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return response.BadRequest(c, "Fill out all the fields")
		case errors.Is(err, services.ErrPasswordMismatch):
			return response.BadRequest(c, "Passwords do not match")
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already exists")
		default:
			logger.Error("Signup failed", zap.String("username", username), zap.Error(err))
			return response.Error(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	}

	return response.JSON(c, fiber.StatusCreated, fiber.Map{
		"message": "Account created successfully.",
		"user":    user.ToSignupResponse(),
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate and set the access_token and refresh_token cookies
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /login/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request")
	}

	username, okUser := stringField(body, "username")
	plain, okPass := stringField(body, "password")
	if !okUser || !okPass {
		return response.BadRequest(c, "Please provide username and password")
	}

	result, err := h.authService.Login(c.UserContext(), username, plain)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, services.ErrUserNotVerified):
			return response.Unauthorized(c, "User is not verified")
		case errors.Is(err, services.ErrUserInactive):
			return response.Forbidden(c, "Account is inactive")
		default:
			logger.Error("Login failed", zap.String("username", username), zap.Error(err))
			return response.Message(c, fiber.StatusInternalServerError, "Login Failed. Try again later")
		}
	}

	h.setCookie(c, middleware.AccessTokenCookie, result.AccessToken, h.accessMaxAge())
	h.setCookie(c, middleware.RefreshTokenCookie, result.RefreshToken, h.refreshMaxAge())

	return c.JSON(fiber.Map{
		"message": "Login Successful",
		"user":    result.User.ToLoginResponse(),
	})
}

// Logout handles user logout
// @Summary Logout user
// @Description Clear both session cookies
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout/ [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearCookie(c, middleware.AccessTokenCookie)
	h.clearCookie(c, middleware.RefreshTokenCookie)

	return response.Message(c, fiber.StatusOK, "Logged out successfully")
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Mint a new access token from the refresh_token cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /token/refresh/ [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies(middleware.RefreshTokenCookie)
	if refreshToken == "" {
		return response.Unauthorized(c, "No refresh token found")
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired refresh token")
	}

	h.setCookie(c, middleware.AccessTokenCookie, accessToken, h.accessMaxAge())

	return response.Message(c, fiber.StatusOK, "Token refreshed successfully")
}

// Protected greets the account behind the access token
// @Summary Protected greeting
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.Response
// @Router /protected/ [get]
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	accessToken := c.Cookies(middleware.AccessTokenCookie)
	if accessToken == "" {
		return response.Unauthorized(c, "No access token provided")
	}

	user, err := h.authService.Authenticate(c.UserContext(), accessToken)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.Unauthorized(c, "User not found")
		}
		return response.Unauthorized(c, "Invalid or expired token")
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Hello %s!", user.Username),
		"user":    user.ToResponse(),
	})
}

// VerifyAuth reports whether the request carries a valid session
// @Summary Verify session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.Response
// @Router /verify-auth/ [get]
func (h *AuthHandler) VerifyAuth(c *fiber.Ctx) error {
	accessToken := c.Cookies(middleware.AccessTokenCookie)
	if accessToken == "" {
		return response.Unauthorized(c, "Not authenticated")
	}

	user, err := h.authService.Authenticate(c.UserContext(), accessToken)
	if err != nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          user.ToResponse(),
	})
}

// accessMaxAge is the access cookie lifetime in seconds, 3600 by default
func (h *AuthHandler) accessMaxAge() int {
	return int(h.cfg.JWT.AccessTTL().Seconds())
}

// refreshMaxAge is the refresh cookie lifetime in seconds, 604800 by default
func (h *AuthHandler) refreshMaxAge() int {
	return int(h.cfg.JWT.RefreshTTL().Seconds())
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
