package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultPageSize = 50

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// uuidParam reads a UUID path parameter; ok is false for malformed ids.
func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// dateQuery parses an optional YYYY-MM-DD query value.
func dateQuery(c *fiber.Ctx, name string) (time.Time, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}
