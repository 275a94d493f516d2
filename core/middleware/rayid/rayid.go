package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the header carrying the request's ray id.
const Header = "X-Ray-Id"

// New creates a middleware that tags every request with a unique ray id.
// An id supplied by the caller is kept; otherwise a fresh UUID is issued.
// The id is stored in c.Locals("ray_id") and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("ray_id", id)
		c.Set(Header, id)
		return c.Next()
	}
}
