package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/core/services"
	"palmtec-registry/internal/pkg/response"
	"palmtec-registry/internal/pkg/validator"
)

var (
	createCodes = outcomeCodes{
		domain.StatusSuccess:   fiber.StatusCreated,
		domain.StatusDuplicate: fiber.StatusConflict,
	}
	updateCodes = outcomeCodes{
		domain.StatusSuccess:  fiber.StatusOK,
		domain.StatusNotFound: fiber.StatusNotFound,
	}
	deactivateCodes = outcomeCodes{
		domain.StatusSuccess:  fiber.StatusOK,
		domain.StatusDenied:   fiber.StatusForbidden,
		domain.StatusNotFound: fiber.StatusNotFound,
	}
)

// SerialHandler handles serial number lifecycle endpoints
type SerialHandler struct {
	serialService *services.SerialService
}

// NewSerialHandler creates a new serial number handler
func NewSerialHandler(serialService *services.SerialService) *SerialHandler {
	return &SerialHandler{serialService: serialService}
}

// SerialNumberRequest is the body shared by the serial number write endpoints
type SerialNumberRequest struct {
	SerialNumber string `json:"serialnumber" validate:"required,serialnumber"`
}

// List handles GET /get_serial_numbers/
// @Summary List serial numbers
// @Description All serial numbers, oldest first
// @Tags Serial Numbers
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.Response
// @Router /get_serial_numbers/ [get]
func (h *SerialHandler) List(c *fiber.Ctx) error {
	serials, err := h.serialService.List(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Serial numbers retrived successfully",
		"data":    serials,
	})
}

// Create handles POST /add_serial_number/
// @Summary Add a UPI-Plus serial number
// @Tags Serial Numbers
// @Accept json
// @Produce json
// @Param body body SerialNumberRequest true "Serial number"
// @Success 201 {object} response.Response
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} response.Response
// @Router /add_serial_number/ [post]
func (h *SerialHandler) Create(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return response.Message(c, fiber.StatusBadRequest, "Missing input data")
	}

	serial, _ := stringField(body, "serialnumber")
	req := SerialNumberRequest{SerialNumber: serial}
	if err := validator.ValidateStruct(&req); err != nil {
		msg := domain.ErrInvalidSerialNumber.Error()
		if validator.FailedTag(err) == "required" {
			msg = "This field is required."
		}
		return response.JSON(c, fiber.StatusBadRequest, fiber.Map{
			"message": "Validation error",
			"errors":  fiber.Map{"serialnumber": []string{msg}},
		})
	}

	out, err := h.serialService.Create(c.UserContext(), req.SerialNumber)
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return respondOutcome(c, out, createCodes)
}

// CreateUPIPro handles POST /add_upi_pro_serial/
// @Summary Add a UPI-Pro serial number
// @Description Stored approved and distributed. Only presence is checked.
// @Tags Serial Numbers
// @Accept json
// @Produce json
// @Param body body SerialNumberRequest true "Serial number"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /add_upi_pro_serial/ [post]
func (h *SerialHandler) CreateUPIPro(c *fiber.Ctx) error {
	return h.withSerial(c, func(serial string) error {
		out, err := h.serialService.CreateUPIPro(c.UserContext(), serial)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return respondOutcome(c, out, createCodes)
	})
}

// Approve handles PATCH /approve_serial_number/
// @Summary Approve a serial number
// @Tags Serial Numbers
// @Accept json
// @Produce json
// @Param body body SerialNumberRequest true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /approve_serial_number/ [patch]
func (h *SerialHandler) Approve(c *fiber.Ctx) error {
	return h.withSerial(c, func(serial string) error {
		out, err := h.serialService.Approve(c.UserContext(), serial)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return respondOutcome(c, out, updateCodes)
	})
}

// Allocate handles PATCH|POST /allocate_serial_number/
// @Summary Allocate a serial number
// @Tags Serial Numbers
// @Accept json
// @Produce json
// @Param body body SerialNumberRequest true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /allocate_serial_number/ [patch]
// @Router /allocate_serial_number/ [post]
func (h *SerialHandler) Allocate(c *fiber.Ctx) error {
	return h.withSerial(c, func(serial string) error {
		out, err := h.serialService.Allocate(c.UserContext(), serial)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return respondOutcome(c, out, updateCodes)
	})
}

// Deactivate handles POST /deactivate_serial_number/
// @Summary Deactivate a serial number
// @Tags Serial Numbers
// @Accept json
// @Produce json
// @Param body body SerialNumberRequest true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /deactivate_serial_number/ [post]
func (h *SerialHandler) Deactivate(c *fiber.Ctx) error {
	return h.withSerial(c, func(serial string) error {
		out, err := h.serialService.Deactivate(c.UserContext(), serial)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return respondOutcome(c, out, deactivateCodes)
	})
}

// FetchAndReserve handles GET /getSerialNumber/
// @Summary Reserve the next available serial number
// @Tags Serial Numbers
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /getSerialNumber/ [get]
func (h *SerialHandler) FetchAndReserve(c *fiber.Ctx) error {
	res, err := h.serialService.FetchAndReserve(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, err)
	}

	if res.Serial == "" {
		return response.Status(c, fiber.StatusNotFound, string(res.Outcome.Status), res.Outcome.Message)
	}
	if !res.Outcome.OK() {
		return respondOutcome(c, res.Outcome, updateCodes)
	}

	return c.JSON(fiber.Map{
		"serialnumber": res.Serial,
		"message":      res.Outcome.Message,
		"status":       res.Outcome.Status,
	})
}

// DeviceDetails handles GET /get_device_details/
// @Summary Device details by serial number
// @Description An unknown serial answers 200 with statusCode 404 in the body
// @Tags Serial Numbers
// @Produce json
// @Param serialnumber query string true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /get_device_details/ [get]
func (h *SerialHandler) DeviceDetails(c *fiber.Ctx) error {
	serial := c.Query("serialnumber")
	if serial == "" {
		return response.Message(c, fiber.StatusBadRequest, "Serial number is required")
	}

	details, err := h.serialService.DeviceDetails(c.UserContext(), serial)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(fiber.Map{
				"status":     "error",
				"statusCode": fiber.StatusNotFound,
				"message":    "Device Details Fetch Unsuccessful!",
				"data":       fiber.Map{},
			})
		case errors.Is(err, domain.ErrSerialNumberRequired):
			return response.Message(c, fiber.StatusBadRequest, "Serial number is required")
		default:
			return response.InternalServerError(c, err)
		}
	}

	return c.JSON(response.Response{
		Status:     "success",
		StatusCode: fiber.StatusOK,
		Message:    "Device Details Fetch Succesfully!",
		Data:       details,
	})
}

// withSerial decodes the body, requires a serialnumber and hands it to fn
func (h *SerialHandler) withSerial(c *fiber.Ctx, fn func(serial string) error) error {
	body, err := decodeBody(c)
	if err != nil {
		return response.Message(c, fiber.StatusBadRequest, "Missing input data")
	}

	serial, ok := stringField(body, "serialnumber")
	if !ok {
		return response.Message(c, fiber.StatusBadRequest, "Serial number is required")
	}
	return fn(serial)
}
