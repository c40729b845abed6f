// Package response provides standardized HTTP response builders for the
// travel booking API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// NotFound writes a 404 Not Found response with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// Unauthenticated writes a 401 Unauthorized response with a login hint.
func Unauthenticated(c echo.Context, loginURL string) error {
	return c.JSON(http.StatusUnauthorized, &ErrorDetail{
		Code:     CodeAuthRequired,
		Message:  MsgAuthRequired,
		LoginURL: loginURL,
	})
}

// RosterIncomplete writes a 422 Unprocessable Entity response for roster
// validation failures. One violation is surfaced per attempt.
func RosterIncomplete(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// TermsNotAccepted writes a 422 Unprocessable Entity response for submissions
// without the terms checkbox.
func TermsNotAccepted(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, &ErrorDetail{
		Code:    CodeTermsNotAccepted,
		Message: MsgTermsNotAccepted,
	})
}

// SubmissionInProgress writes a 409 Conflict response for duplicate submits.
func SubmissionInProgress(c echo.Context) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:    CodeSubmissionInProgress,
		Message: MsgSubmissionInProgress,
	})
}

// Conflict writes a 409 Conflict response for wizard state violations.
func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:    CodeConflict,
		Message: message,
	})
}

// SubmissionFailed writes a 502 Bad Gateway response when the submission
// gateway rejects or fails the booking.
func SubmissionFailed(c echo.Context) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:    CodeSubmissionFailed,
		Message: MsgSubmissionFailed,
	})
}

// RateLimited writes a 429 Too Many Requests response.
func RateLimited(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, &ErrorDetail{
		Code:    CodeRateLimited,
		Message: MsgRateLimited,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
