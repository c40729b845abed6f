package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/domain"
)

const (
	// UserEmailHeader carries the authenticated user's email, set by the
	// external auth layer in front of this service.
	UserEmailHeader = "X-User-Email"

	// identityKey is the context key for storing the resolved identity.
	identityKey = "identity"
)

// authErrorDetail mirrors response.ErrorDetail without importing the response
// package, which would create an import cycle through the handler package.
type authErrorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	LoginURL string `json:"login_url,omitempty"`
}

// RequireUser returns middleware that resolves the authenticated user from
// the request headers. Requests without a user get a 401 carrying the sign-in
// URL; identity verification itself belongs to the auth layer upstream.
func RequireUser(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := strings.TrimSpace(c.Request().Header.Get(UserEmailHeader))
			if email == "" {
				return c.JSON(http.StatusUnauthorized, &authErrorDetail{
					Code:     "authentication_required",
					Message:  "Please sign in to continue booking",
					LoginURL: loginURL,
				})
			}

			c.Set(identityKey, domain.Identity{Email: email})
			return next(c)
		}
	}
}

// GetIdentity retrieves the authenticated identity from the echo context.
// Returns the zero Identity if RequireUser did not run.
func GetIdentity(c echo.Context) domain.Identity {
	if id, ok := c.Get(identityKey).(domain.Identity); ok {
		return id
	}
	return domain.Identity{}
}
