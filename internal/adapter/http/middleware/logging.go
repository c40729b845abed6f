package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs every HTTP request on completion.
// Booking wizard requests additionally carry the session ID from the path so
// a whole wizard flow can be correlated in the logs.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			// 5xx responses log at error, client errors at warn
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event = event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP())

			if sessionID := bookingSessionID(c); sessionID != "" {
				event = event.Str("session_id", sessionID)
			}

			event.Msg("HTTP request")

			// The error was already handled via c.Error above
			return nil
		}
	}
}

// bookingSessionID extracts the wizard session ID from /bookings/:id routes.
func bookingSessionID(c echo.Context) string {
	if !strings.Contains(c.Path(), "/bookings/") {
		return ""
	}
	for i, name := range c.ParamNames() {
		if name == "id" && len(c.ParamValues()) > i {
			return c.ParamValues()[i]
		}
	}
	return ""
}
