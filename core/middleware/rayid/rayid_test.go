package rayid_test

import (
	"net/http/httptest"
	"testing"

	"article-stream/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID_GeneratesAndExposes(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/ping", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	header := resp.Header.Get(rayid.Header)
	assert.NotEmpty(t, header)
	assert.Equal(t, header, seen)
}

func TestRayID_KeepsCallerSuppliedID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(rayid.Header, "ray-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "ray-123", resp.Header.Get(rayid.Header))
}
