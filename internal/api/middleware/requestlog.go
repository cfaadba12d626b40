package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are probe endpoints whose repeated successes are suppressed
// from the request log to keep it readable.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Successful probe requests are logged
// once; further successes are suppressed until the probe fails.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	loggedOK := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			success := status >= 200 && status < 300

			if _, probe := healthPaths[path]; probe {
				mu.Lock()
				suppress := success && loggedOK[path]
				loggedOK[path] = success
				mu.Unlock()
				if suppress {
					return err
				}
			}

			logFn := log.Info
			if status >= 500 {
				logFn = log.Warn
			}

			logFn("request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}
