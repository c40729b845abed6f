// Package response provides standardized HTTP response builders for the
// travel booking API. It centralizes response formatting so every endpoint
// reports errors the same way.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`

	// LoginURL points unauthenticated clients at the sign-in flow
	LoginURL string `json:"login_url,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest       = "invalid_request"
	CodeValidationError      = "validation_error"
	CodeNotFound             = "not_found"
	CodeAuthRequired         = "authentication_required"
	CodeTermsNotAccepted     = "terms_not_accepted"
	CodeSubmissionInProgress = "submission_in_progress"
	CodeSubmissionFailed     = "submission_failed"
	CodeConflict             = "conflict"
	CodeRateLimited          = "rate_limited"
	CodeInternalError        = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody   = "Failed to parse request body"
	MsgValidationFailed     = "Request validation failed"
	MsgAuthRequired         = "Please sign in to continue booking"
	MsgTermsNotAccepted     = "Please accept the terms and conditions to continue"
	MsgSubmissionInProgress = "Your booking is already being processed"
	MsgSubmissionFailed     = "Booking could not be completed, please try again"
	MsgRateLimited          = "Too many requests, please slow down"
	MsgInternalError        = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}
