package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_http_requests_total",
		Help: "Number of HTTP requests handled, by method, path and status.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stockroom_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	ItemsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stockroom_items_total",
		Help: "Number of items tracked across all users.",
	})

	OutOfStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stockroom_items_out_of_stock",
		Help: "Number of items with zero quantity.",
	})

	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stockroom_items_low_stock",
		Help: "Number of items below the low stock threshold.",
	})
)

// PrometheusMiddleware records a counter and latency histogram per request.
// The route path is used instead of the raw URL so ids do not explode the
// label cardinality.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unknown"
			}

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			requestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
