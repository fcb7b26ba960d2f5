// cmd/server/middlewares/metrics.go
package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WSStatsSource reports live event-stream counters for the gauge collectors.
type WSStatsSource interface {
	Stats() (subscribers int, dropped uint64)
}

// normalizeRoutePath returns the route template to prevent high cardinality
// in metrics labels. Returns the actual path for unmatched routes (404s).
func normalizeRoutePath(c *fiber.Ctx) string {
	if route := c.Route(); route != nil {
		return route.Path // already the template (e.g., "/habits/:id/toggle")
	}
	return c.Path() // fallback for 404 etc.
}

// normalizeStatus returns the status code as a string for Prometheus metrics
// 2xx -> "2xx", 4xx -> "4xx", 5xx -> "5xx"
func normalizeStatus(status int) string {
	if status >= 200 && status < 300 {
		return "2xx"
	} else if status >= 400 && status < 500 {
		return "4xx"
	} else if status >= 500 && status < 600 {
		return "5xx"
	}
	return strconv.Itoa(status)
}

// AttachMetrics gives the supplied Fiber app its **own** Prometheus registry
// and wires a /metrics endpoint, request-timing middleware and the live
// event-stream counters.
func AttachMetrics(app *fiber.App, ws WSStatsSource) {
	reg := prometheus.NewRegistry()

	// collectors
	reqDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	wsSubscribers := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "planboard_ws_subscribers",
			Help: "Current number of event-stream subscribers",
		},
		func() float64 {
			n, _ := ws.Stats()
			return float64(n)
		},
	)
	wsDropped := prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "planboard_ws_dropped_events_total",
			Help: "Events dropped because a subscriber outbox was full",
		},
		func() float64 {
			_, dropped := ws.Stats()
			return float64(dropped)
		},
	)

	reg.MustRegister(reqDuration, reqTotal, wsSubscribers, wsDropped)

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start).Seconds()

		method := c.Method()
		path := normalizeRoutePath(c)
		status := normalizeStatus(c.Response().StatusCode())

		reqDuration.WithLabelValues(method, path, status).Observe(dur)
		reqTotal.WithLabelValues(method, path, status).Inc()
		return err
	})

	// /metrics handler (uses *this* registry)
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
}
