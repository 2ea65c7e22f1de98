// Package auth implements request authentication for the REST API.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireToken guards write endpoints with a static bearer token. When no
// token is configured the check is skipped, which keeps local development
// and test deployments open.
func RequireToken(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return c.Next()
		}

		header := c.Get("Authorization")
		supplied := strings.TrimPrefix(header, "Bearer ")
		if supplied == header || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid or missing API token",
			})
		}
		return c.Next()
	}
}
