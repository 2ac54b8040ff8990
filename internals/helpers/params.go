package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// ParseUUIDQuery: query kosong → nil tanpa error.
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, BadRequest(name + " tidak valid")
	}
	return &id, nil
}

// ParseUUIDPtr: "" → nil; selain itu harus UUID valid (sudah dicek validator).
func ParseUUIDPtr(s string) *uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// FormBool membaca field form "true"/"false"/"1"/"0"; selain itu def.
func FormBool(c *fiber.Ctx, name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(c.FormValue(name))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return def
	}
}
