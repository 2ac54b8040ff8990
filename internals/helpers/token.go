package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken mengembalikan token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie bernama cookieName
func GetRawAccessToken(c *fiber.Ctx, cookieName string) string {
	const p = "bearer "
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > len(p) && strings.EqualFold(auth[:len(p)], p) {
		if tok := strings.Trim(strings.TrimSpace(auth[len(p):]), `"'`); tok != "" {
			return tok
		}
	}
	if cookieName != "" {
		if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
			return v
		}
	}
	return ""
}
