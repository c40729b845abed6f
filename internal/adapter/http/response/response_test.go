package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()

	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestHealth(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid request body",
			write:      InvalidRequestBody,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
		},
		{
			name:       "not found",
			write:      func(c echo.Context) error { return NotFound(c, "flight not found") },
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "roster incomplete",
			write:      func(c echo.Context) error { return RosterIncomplete(c, "Please fill all required fields for passenger 1") },
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeValidationError,
		},
		{
			name:       "terms not accepted",
			write:      TermsNotAccepted,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeTermsNotAccepted,
		},
		{
			name:       "submission in progress",
			write:      SubmissionInProgress,
			wantStatus: http.StatusConflict,
			wantCode:   CodeSubmissionInProgress,
		},
		{
			name:       "submission failed",
			write:      SubmissionFailed,
			wantStatus: http.StatusBadGateway,
			wantCode:   CodeSubmissionFailed,
		},
		{
			name:       "rate limited",
			write:      RateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   CodeRateLimited,
		},
		{
			name:       "internal error",
			write:      InternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(t)

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestUnauthenticated_CarriesLoginHint(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Unauthenticated(c, "https://auth.example.com/login"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeAuthRequired, detail.Code)
	assert.Equal(t, "https://auth.example.com/login", detail.LoginURL)
}

func TestValidationError_CarriesDetails(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, ValidationError(c, map[string]string{"adults": "adults must be at least 1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "adults must be at least 1", detail.Details["adults"])
}
