package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds the settings for API key authentication.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication.
	ApiKey string
}

// HeaderName is the request header carrying the API key.
const HeaderName = "X-Api-Key"

// New returns middleware that validates the API key header. The merger
// identity forwarded to the services is taken from X-Editor-Id once the
// key check passes.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if editor := c.Get("X-Editor-Id"); editor != "" {
			c.Locals("editor_id", editor)
		}

		if cfg.ApiKey == "" {
			return c.Next()
		}

		provided := c.Get(HeaderName)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
