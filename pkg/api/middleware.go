package api

import (
	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets baseline response headers for
// the JSON surface. Cache-Control keeps intermediaries from replaying stale
// status polls.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("Cache-Control", "no-store")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")
			return next(c)
		}
	}
}
