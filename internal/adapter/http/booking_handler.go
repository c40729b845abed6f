package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/adapter/http/middleware"
	"github.com/skyway/travel-booking-system/internal/adapter/http/response"
	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/usecase"
)

// BookingHandler handles HTTP requests for the booking wizard endpoints.
// Every endpoint except Create resolves the session from the path; the
// wizard state itself lives server-side.
type BookingHandler struct {
	useCase  usecase.BookingUseCase
	loginURL string
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase, loginURL string) *BookingHandler {
	return &BookingHandler{
		useCase:  uc,
		loginURL: loginURL,
	}
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Open a booking wizard session
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Flight and party"
// @Success 201 {object} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	user := middleware.GetIdentity(c)

	snap, err := h.useCase.Create(c.Request().Context(), req.FlightID, req.Party(), user)
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.Created(c, ToBookingDTO(snap))
}

// GetBooking handles GET /api/v1/bookings/:id
//
// @Summary Get the current wizard state
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} BookingDTO
// @Failure 404 {object} response.ErrorDetail "Session not found or expired"
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c echo.Context) error {
	snap, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToBookingDTO(snap))
}

// UpdatePassenger handles PATCH /api/v1/bookings/:id/passengers/:index
//
// @Summary Edit one field of one passenger record
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Passenger index"
// @Param request body UpdatePassengerRequest true "Field and value"
// @Success 200 {object} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Unknown field or index"
// @Failure 409 {object} response.ErrorDetail "Roster locked"
// @Router /api/v1/bookings/{id}/passengers/{index} [patch]
func (h *BookingHandler) UpdatePassenger(c echo.Context) error {
	var req UpdatePassengerRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "passenger index must be a number")
	}

	snap, err := h.useCase.UpdatePassenger(
		c.Request().Context(),
		c.Param("id"),
		index,
		domain.PassengerField(req.Field),
		req.Value,
	)
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToBookingDTO(snap))
}

// AdvanceBooking handles POST /api/v1/bookings/:id/advance
//
// @Summary Move the wizard one step forward
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} BookingDTO
// @Failure 409 {object} response.ErrorDetail "Invalid transition"
// @Failure 422 {object} response.ErrorDetail "Roster incomplete"
// @Router /api/v1/bookings/{id}/advance [post]
func (h *BookingHandler) AdvanceBooking(c echo.Context) error {
	snap, err := h.useCase.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToBookingDTO(snap))
}

// BackBooking handles POST /api/v1/bookings/:id/back
//
// @Summary Move the wizard one step backwards
// @Description Going back from the first step abandons the session
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} BookingDTO
// @Success 204 "Session abandoned"
// @Router /api/v1/bookings/{id}/back [post]
func (h *BookingHandler) BackBooking(c echo.Context) error {
	snap, exited, err := h.useCase.Back(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	if exited {
		return c.NoContent(http.StatusNoContent)
	}

	return response.OK(c, ToBookingDTO(snap))
}

// SetTerms handles PUT /api/v1/bookings/:id/terms
//
// @Summary Record the terms checkbox
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetTermsRequest true "Checkbox state"
// @Success 200 {object} BookingDTO
// @Router /api/v1/bookings/{id}/terms [put]
func (h *BookingHandler) SetTerms(c echo.Context) error {
	var req SetTermsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	snap, err := h.useCase.SetTerms(c.Request().Context(), c.Param("id"), req.Accepted)
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToBookingDTO(snap))
}

// SubmitBooking handles POST /api/v1/bookings/:id/submit
//
// @Summary Finalize the booking
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} BookingDTO
// @Failure 409 {object} response.ErrorDetail "Submission already in progress"
// @Failure 422 {object} response.ErrorDetail "Terms not accepted"
// @Failure 502 {object} response.ErrorDetail "Submission failed"
// @Router /api/v1/bookings/{id}/submit [post]
func (h *BookingHandler) SubmitBooking(c echo.Context) error {
	snap, err := h.useCase.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToBookingDTO(snap))
}
