// Package middleware provides Echo middleware for card-tracker.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/filamvp/card-tracker/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and status.
// The scrape endpoint and health probes are excluded from the histogram and
// counter series; probes update simple up/down gauges instead, so their
// high request rate never inflates the HTTP metrics.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if gauge := probeGauge(path); gauge != nil {
				err := next(c)
				setProbeGauge(gauge, c.Response().Status)
				return err
			}
			if path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// routePath prefers the registered route template over the raw URL so
// parameterized routes share one label value.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func probeGauge(path string) prometheus.Gauge {
	switch path {
	case "/healthz":
		return metrics.HealthzUp
	case "/readyz":
		return metrics.ReadyzUp
	}
	return nil
}

func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
