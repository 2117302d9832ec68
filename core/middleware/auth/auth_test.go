package auth_test

import (
	"net/http/httptest"
	"testing"

	"lexicon-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		editor, _ := c.Locals("editor_id").(string)
		return c.JSON(fiber.Map{"editor": editor})
	})
	return app
}

func TestRejectsMissingKey(t *testing.T) {
	app := setupApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRejectsWrongKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.HeaderName, "wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAcceptsCorrectKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestEmptyKeyDisablesAuth(t *testing.T) {
	app := setupApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
