package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/pkg/response"
)

var errEmptyBody = errors.New("empty request body")

// decodeBody reads a JSON object body. Numbers are kept as json.Number so
// they can be passed on as their literal text. An absent body or an empty
// object yields errEmptyBody.
func decodeBody(c *fiber.Ctx) (map[string]interface{}, error) {
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 {
		return nil, errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

// stringField returns the field as text. ok is false when the field is
// absent, null or blank.
func stringField(body map[string]interface{}, key string) (string, bool) {
	v, present := body[key]
	if !present || v == nil {
		return "", false
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}

	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// outcomeCodes maps procedure status tokens to HTTP status codes. Tokens
// not listed answer 400.
type outcomeCodes map[domain.Status]int

// respondOutcome sends the {message, status} body of a procedure outcome
func respondOutcome(c *fiber.Ctx, out domain.Outcome, codes outcomeCodes) error {
	code, ok := codes[out.Status]
	if !ok {
		code = fiber.StatusBadRequest
	}
	return response.Status(c, code, string(out.Status), out.Message)
}
