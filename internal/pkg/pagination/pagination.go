package pagination

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Query keys carrying the paging parameters
const (
	PageNumberKey = "pageNumber"
	PageSizeKey   = "pageSize"
)

// Defaults for absent parameters. Pages are zero based.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
)

// Params represents pagination parameters
type Params struct {
	PageNumber int
	PageSize   int
}

// GetParams extracts pagination parameters from the request. Absent
// parameters take their defaults; present ones must be integers.
func GetParams(c *fiber.Ctx) (Params, error) {
	p := Params{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}

	var err error
	if p.PageNumber, err = QueryInt(c, PageNumberKey, DefaultPageNumber); err != nil {
		return p, err
	}
	if p.PageSize, err = QueryInt(c, PageSizeKey, DefaultPageSize); err != nil {
		return p, err
	}
	return p, nil
}

// QueryInt reads an integer query parameter, returning def when it is absent
// or empty
func QueryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %q", key, raw)
	}
	return v, nil
}
