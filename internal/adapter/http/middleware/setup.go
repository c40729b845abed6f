package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyway/travel-booking-system/internal/infrastructure/ratelimit"
)

// Setup registers all global middleware on the Echo instance in the correct
// order. The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. RateLimit - Last, throttled requests are still logged
//
// A nil limiter skips rate limiting. This function should be called before
// registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, limiter *ratelimit.ClientLimiter) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	if limiter != nil {
		e.Use(RateLimit(limiter))
	}
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, limiter *ratelimit.ClientLimiter, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
	if limiter != nil {
		e.Use(RateLimit(limiter))
	}
}
