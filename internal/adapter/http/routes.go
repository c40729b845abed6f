// Package http provides the HTTP handler layer for the travel booking API.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/adapter/http/middleware"
)

// Handlers bundles the API handlers for route registration.
type Handlers struct {
	Flights  *FlightHandler
	Packages *PackageHandler
	Bookings *BookingHandler
}

// RegisterRoutes registers all travel booking API routes. Catalog browsing is
// open; the booking wizard and package confirmation require a signed-in user.
func RegisterRoutes(e *echo.Echo, h Handlers, loginURL string) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Flights.Health)

	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.Flights.SearchFlights)
	flights.GET("/:id", h.Flights.GetFlight)

	packages := api.Group("/packages")
	packages.GET("", h.Packages.ListPackages)
	packages.GET("/:id", h.Packages.GetPackage)
	packages.POST("/:id/book", h.Packages.BookPackage, middleware.RequireUser(loginURL))

	bookings := api.Group("/bookings", middleware.RequireUser(loginURL))
	bookings.POST("", h.Bookings.CreateBooking)
	bookings.GET("/:id", h.Bookings.GetBooking)
	bookings.PATCH("/:id/passengers/:index", h.Bookings.UpdatePassenger)
	bookings.POST("/:id/advance", h.Bookings.AdvanceBooking)
	bookings.POST("/:id/back", h.Bookings.BackBooking)
	bookings.PUT("/:id/terms", h.Bookings.SetTerms)
	bookings.POST("/:id/submit", h.Bookings.SubmitBooking)
}
