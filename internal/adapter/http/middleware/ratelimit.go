package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/infrastructure/ratelimit"
)

// RateLimit returns middleware that throttles requests per client IP using
// the given limiter. Rejected requests get a 429.
func RateLimit(limiter *ratelimit.ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"code":    "rate_limited",
					"message": "Too many requests, please slow down",
				})
			}
			return next(c)
		}
	}
}
