package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"testing"

	"prephub/backend/config"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggingMiddleware(log.New(&buf, "", 0)))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Contains(t, buf.String(), generated)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))
}

func TestLoggingMiddlewareSettlesErrors(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggingMiddleware(log.New(&buf, "", 0)))
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Contains(t, buf.String(), "418")
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.Default()
	app := fiber.New()
	app.Get("/me", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		userID, _ := utils.CurrentUserID(c)
		return c.JSON(fiber.Map{"id": userID})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := utils.GenerateJWTToken(9, cfg)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	other := config.Default()
	other.JWTSecret = "different"
	forged, err := utils.GenerateJWTToken(9, other)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
