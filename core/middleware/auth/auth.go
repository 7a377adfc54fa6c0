package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
	// Skip lists path prefixes that are served without a key.
	Skip []string
}

// New creates an API key middleware.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		path := c.Path()
		for _, prefix := range cfg.Skip {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		key := c.Get(HeaderName)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
