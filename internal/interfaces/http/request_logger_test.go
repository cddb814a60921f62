package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func TestRequestLogger_RegistraPeticionSinEmail(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Post("/products", apphttp.AuthMiddleware(jwtTokens{secret: testJWTSecret}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	tok, err := pkgjwt.Generate(testJWTSecret, "ana@example.com", "", 0)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, `"request_id":"req-42"`)
	assert.Contains(t, line, `"authenticated":true`)
	assert.Contains(t, line, `"status":201`)
	assert.NotContains(t, line, "ana@example.com")
}

func TestRequestLogger_SinTokenNoAutenticado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, buf.String(), `"authenticated":false`)
}
