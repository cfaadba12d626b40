package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, and returns a 500 Internal Server Error to the client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				attrs := []any{
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				}
				if id, ok := c.Get("request_id").(string); ok {
					attrs = append(attrs, "request_id", id)
				}
				log.Error("panic recovered", attrs...)

				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
