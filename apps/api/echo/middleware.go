package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_http_requests_total",
		Help: "Number of HTTP requests by method, path and status code.",
	}, []string{"method", "path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "attendance_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			path := ctx.Path()
			if path == "" {
				path = req.URL.Path
			}
			code := strconv.Itoa(ctx.Response().Status)

			requestCount.WithLabelValues(req.Method, path, code).Inc()
			requestDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
