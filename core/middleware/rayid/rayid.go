package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key holding the ray id.
	LocalsKey = "ray_id"
)

// New creates a middleware that tags each request with a ray id. An incoming
// X-Ray-ID header is reused so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
