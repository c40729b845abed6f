// Package http provides the HTTP handler layer for the travel booking API.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/adapter/http/response"
	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/usecase"
)

// FlightHandler handles HTTP requests for flight search endpoints.
type FlightHandler struct {
	useCase  usecase.FlightSearchUseCase
	loginURL string
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase, loginURL string) *FlightHandler {
	return &FlightHandler{
		useCase:  uc,
		loginURL: loginURL,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Filter and sort the flight inventory
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToSearchResponseDTO(result))
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Get one flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} FlightDTO
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	flight, err := h.useCase.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToFlightDTO(flight))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles request validation errors with a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.BadRequest(c, err.Error())
}

// handleError maps domain errors to HTTP responses. The mapping is shared by
// every handler in the package.
func handleError(c echo.Context, loginURL string, err error) error {
	var violation *domain.RosterViolation
	if errors.As(err, &violation) {
		return response.RosterIncomplete(c, violation.Message())
	}

	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		return response.NotFound(c, "Flight not found")
	case errors.Is(err, domain.ErrPackageNotFound):
		return response.NotFound(c, "Package not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return response.NotFound(c, "Booking session not found or expired")
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthenticated(c, loginURL)
	case errors.Is(err, domain.ErrTermsNotAccepted):
		return response.TermsNotAccepted(c)
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return response.SubmissionInProgress(c)
	case errors.Is(err, domain.ErrSubmissionFailed):
		return response.SubmissionFailed(c)
	case errors.Is(err, domain.ErrRosterLocked):
		return response.Conflict(c, "Passenger details are locked at the payment step")
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, "The booking cannot move that way from its current step")
	case errors.Is(err, domain.ErrPassengerIndex),
		errors.Is(err, domain.ErrUnknownPassengerField),
		errors.Is(err, domain.ErrInvalidRequest):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}
