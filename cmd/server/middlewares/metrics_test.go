package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoutePath(t *testing.T) {
	t.Run("matched route returns template", func(t *testing.T) {
		app := fiber.New()
		app.Post("/habits/:id/toggle", func(c *fiber.Ctx) error {
			path := normalizeRoutePath(c)
			assert.Equal(t, "/habits/:id/toggle", path, "should return route template")
			return c.SendString("ok")
		})

		req := httptest.NewRequest("POST", "/habits/abc123/toggle", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err, "request should succeed")
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("unmatched route returns actual path without panic", func(t *testing.T) {
		app := fiber.New()

		// Set up a catch-all middleware to test unmatched routes
		app.Use(func(c *fiber.Ctx) error {
			path := normalizeRoutePath(c)
			// For unmatched routes, c.Route() is nil, so we should get c.Path()
			// The exact path may vary based on Fiber's internal routing behavior
			assert.NotEmpty(t, path, "should return some path value")
			return c.SendStatus(404)
		})

		req := httptest.NewRequest("GET", "/nonexistent", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err, "request should not panic")
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{400, "4xx"},
		{404, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{302, "302"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeStatus(tt.status))
	}
}

type stubStats struct{}

func (stubStats) Stats() (int, uint64) { return 0, 0 }

func TestAttachMetricsServesMetricsEndpoint(t *testing.T) {
	app := fiber.New()
	AttachMetrics(app, stubStats{})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
