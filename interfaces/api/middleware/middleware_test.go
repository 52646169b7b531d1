package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

const testSecret = "middleware-secret"

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMethodOverride(t *testing.T) {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Put("/tasks/:id", func(c *fiber.Ctx) error { return c.SendString("put") })
	app.Delete("/tasks/:id", func(c *fiber.Ctx) error { return c.SendString("delete") })
	app.Post("/tasks/:id", func(c *fiber.Ctx) error { return c.SendString("post") })

	tests := []struct {
		name   string
		target string
		form   string
		want   string
	}{
		{"query delete", "/tasks/1?_method=DELETE", "", "delete"},
		{"form put", "/tasks/1", "_method=put", "put"},
		{"unknown method stays post", "/tasks/1?_method=TRACE", "", "post"},
		{"no override", "/tasks/1", "", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, readBody(t, resp))
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(logger.GetRequestID(c.UserContext()) + "|" + GetRequestIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "client-id", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "client-id|client-id", readBody(t, resp))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDHeader)
	assert.Len(t, generated, 36)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/page", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/api/v1/thing", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "no thing") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/page", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/thing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `"code":"NOT_FOUND"`)
	assert.Contains(t, body, `"message":"no thing"`)
}

func TestProtected(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/me", Protected(testSecret), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Email)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	expired, err := utils.GenerateToken(utils.UserContext{ID: 1}, testSecret, -time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Token has expired")

	token, err := utils.GenerateToken(utils.UserContext{ID: 3, Email: "ann@example.com"}, testSecret, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ann@example.com", readBody(t, resp))
}

func TestLoggerMiddlewarePassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(LoggerMiddleware("/health"))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "ok", readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
