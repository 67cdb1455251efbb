package controllers

import (
	"strconv"
	"strings"

	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// queryInt parses an optional integer query parameter. Out-of-range values are
// left for the caller to clamp; only non-numbers are rejected.
func queryInt(c *fiber.Ctx, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.ValidationErr("query parameter %s must be an integer", key)
	}
	return v, nil
}
