package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/core/services"
	"palmtec-registry/internal/pkg/pagination"
	"palmtec-registry/internal/pkg/response"
)

// Body keys in the order the procedures take them. Create and update
// deliberately differ in order and in the license URL key.
var (
	createMappingFields = []string{
		"serialnumber", "uniqueIdentifier", "customerCode", "customerName",
		"company", "devicetype", "licenseUrl", "versionDetails",
	}
	updateMappingFields = []string{
		"serialnumber", "customerCode", "uniqueIdentifier", "customerName",
		"company", "devicetype", "cLicenseURL", "versionDetails",
	}
)

// MappingHandler handles serial-to-customer mapping endpoints
type MappingHandler struct {
	mappingService *services.MappingService
}

// NewMappingHandler creates a new mapping handler
func NewMappingHandler(mappingService *services.MappingService) *MappingHandler {
	return &MappingHandler{mappingService: mappingService}
}

// Search handles GET /get_customer_mappings/
// @Summary Search customer mappings
// @Tags Customer Mappings
// @Produce json
// @Param serialNumber query string false "Serial number"
// @Param customerCode query int false "Customer code" default(0)
// @Param customerName query string false "Customer name"
// @Param company query string false "Company"
// @Param deviceType query string false "Device type"
// @Param fromDate query string false "From date" default(2020-01-01)
// @Param toDate query string false "To date" default(2099-12-31)
// @Param approvedStatus query int false "Approval filter, -1 for any" default(-1)
// @Param searchText query string false "Free text search"
// @Param pageNumber query int false "Page number" default(0)
// @Param pageSize query int false "Page size" default(10)
// @Param sortingOrderIndex query int false "Sort column" default(1)
// @Param sortingOrderDirection query int false "Sort direction" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /get_customer_mappings/ [get]
func (h *MappingHandler) Search(c *fiber.Ctx) error {
	query, err := parseMappingQuery(c)
	if err != nil {
		return response.Status(c, fiber.StatusBadRequest, "error", err.Error())
	}

	page, err := h.mappingService.Search(c.UserContext(), query)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       page.Rows,
		"totalCount": page.TotalCount,
	})
}

// Create handles POST /create_customer_mapping/
// @Summary Create a customer mapping
// @Tags Customer Mappings
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /create_customer_mapping/ [post]
func (h *MappingHandler) Create(c *fiber.Ctx) error {
	values, ok, err := h.readFields(c, createMappingFields)
	if !ok {
		return err
	}

	out, err := h.mappingService.Create(c.UserContext(), domain.MappingFields{
		SerialNumber:     values["serialnumber"],
		UniqueIdentifier: values["uniqueIdentifier"],
		CustomerCode:     values["customerCode"],
		CustomerName:     values["customerName"],
		Company:          values["company"],
		DeviceType:       values["devicetype"],
		LicenseURL:       values["licenseUrl"],
		VersionDetails:   values["versionDetails"],
	})
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return respondOutcome(c, out, createCodes)
}

// Update handles POST /update_customer_mapping/
// @Summary Update a customer mapping
// @Tags Customer Mappings
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /update_customer_mapping/ [post]
func (h *MappingHandler) Update(c *fiber.Ctx) error {
	values, ok, err := h.readFields(c, updateMappingFields)
	if !ok {
		return err
	}

	out, err := h.mappingService.Update(c.UserContext(), domain.MappingFields{
		SerialNumber:     values["serialnumber"],
		UniqueIdentifier: values["uniqueIdentifier"],
		CustomerCode:     values["customerCode"],
		CustomerName:     values["customerName"],
		Company:          values["company"],
		DeviceType:       values["devicetype"],
		LicenseURL:       values["cLicenseURL"],
		VersionDetails:   values["versionDetails"],
	})
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return respondOutcome(c, out, updateCodes)
}

// readFields collects the named body fields. When ok is false the 400
// response has already been written and err is its send result.
func (h *MappingHandler) readFields(c *fiber.Ctx, names []string) (map[string]string, bool, error) {
	body, err := decodeBody(c)
	if err != nil {
		return nil, false, response.Message(c, fiber.StatusBadRequest, "Missing input data")
	}

	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		v, ok := stringField(body, name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}

	if len(missing) > 0 {
		msg := fmt.Sprintf("Missing values in input,['%s']", strings.Join(missing, "', '"))
		return nil, false, response.Status(c, fiber.StatusBadRequest, "error", msg)
	}
	return values, true, nil
}

// parseMappingQuery applies defaults for absent parameters and rejects
// numeric parameters that are present but not integers
func parseMappingQuery(c *fiber.Ctx) (domain.MappingQuery, error) {
	q := domain.NewMappingQuery()
	args := c.Context().QueryArgs()

	if args.Has("serialNumber") {
		serial := c.Query("serialNumber")
		q.SerialNumber = &serial
	}
	q.CustomerName = c.Query("customerName")
	q.Company = c.Query("company")
	q.DeviceType = c.Query("deviceType")
	// A present but empty date is passed through as ""
	if args.Has("fromDate") {
		q.FromDate = c.Query("fromDate")
	}
	if args.Has("toDate") {
		q.ToDate = c.Query("toDate")
	}
	q.SearchText = c.Query("searchText")

	if raw := c.Query("customerCode"); raw != "" {
		code, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid value for customerCode: %q", raw)
		}
		q.CustomerCode = code
	}

	page, err := pagination.GetParams(c)
	if err != nil {
		return q, err
	}
	q.PageNumber = page.PageNumber
	q.PageSize = page.PageSize

	ints := []struct {
		name string
		dst  *int
	}{
		{"approvedStatus", &q.ApprovedStatus},
		{"sortingOrderIndex", &q.SortIndex},
		{"sortingOrderDirection", &q.SortDirection},
	}
	for _, p := range ints {
		if *p.dst, err = pagination.QueryInt(c, p.name, *p.dst); err != nil {
			return q, err
		}
	}

	return q, nil
}
