package response

import (
	"github.com/gofiber/fiber/v2"
)

// ServerErrorMessage is the message sent with every 500 response
const ServerErrorMessage = "Server error occurred"

// Response represents the JSON envelope returned by the API.
// Handlers fill only the keys their endpoint exposes.
type Response struct {
	Status     string      `json:"status,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// Success sends a 200 response with a message and optional data
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Message: message,
		Data:    data,
	})
}

// JSON sends an arbitrary body with the given status code
func JSON(c *fiber.Ctx, statusCode int, body interface{}) error {
	return c.Status(statusCode).JSON(body)
}

// Status sends a {message, status} body, the shape used for stored
// procedure outcomes
func Status(c *fiber.Ctx, statusCode int, status, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  status,
		Message: message,
	})
}

// Message sends a {message} body
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Message: message,
	})
}

// Error sends an {error} body
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Error: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 response carrying the raw error text
func InternalServerError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Status:  "error",
		Message: ServerErrorMessage,
		Error:   err.Error(),
	})
}
