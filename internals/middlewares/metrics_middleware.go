package middlewares

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Current number of HTTP requests being processed",
		},
	)

	domainTotals = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "manrel_entities_total",
			Help: "Jumlah baris per entitas pada snapshot terakhir",
		},
		[]string{"entity"},
	)

	registerOnce sync.Once
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpRequestsInProgress, domainTotals)
	})
}

// MetricsMiddleware memakai pola route (mis. /api/relawan/:id) sebagai label path.
func MetricsMiddleware() fiber.Handler {
	RegisterMetrics()
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		httpRequestsInProgress.Inc()
		defer httpRequestsInProgress.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		path := normalizePath(c.Route().Path)
		code := strconv.Itoa(status)
		httpRequestsTotal.WithLabelValues(c.Method(), path, code).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path, code).Observe(time.Since(start).Seconds())
		return err
	}
}

// SetDomainTotals diperbarui oleh scheduler snapshot dashboard.
func SetDomainTotals(relawan, koordinator, dapil int64) {
	RegisterMetrics()
	domainTotals.WithLabelValues("relawan").Set(float64(relawan))
	domainTotals.WithLabelValues("koordinator").Set(float64(koordinator))
	domainTotals.WithLabelValues("dapil").Set(float64(dapil))
}

func normalizePath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	if len(path) > 100 {
		path = path[:100]
	}
	return strings.TrimRight(path, "/")
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
