// Package integration provides helpers and integration tests for the travel
// booking system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and the seed catalogs.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyway/travel-booking-system/internal/adapter/catalog"
	bookinghttp "github.com/skyway/travel-booking-system/internal/adapter/http"
	"github.com/skyway/travel-booking-system/internal/adapter/http/middleware"
	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
	"github.com/skyway/travel-booking-system/internal/session"
	"github.com/skyway/travel-booking-system/internal/usecase"
	"github.com/skyway/travel-booking-system/test/mock"
)

const (
	// LoginURL is the sign-in hint returned on authentication failures.
	LoginURL = "https://auth.example.com/login"

	// TestUserEmail identifies the signed-in traveller in integration tests.
	TestUserEmail = "amina@example.com"

	// SessionTTL matches the production default for booking sessions.
	SessionTTL = 30 * time.Minute
)

// TestServer wraps a fully wired Echo instance over the seed catalogs and a
// mock submission gateway, and provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Gateway  *mock.Gateway
	Clock    *timeutil.MockClock
	Sessions *session.Store[*usecase.Wizard]
}

// NewTestServer creates a test server with a default mock gateway.
func NewTestServer() *TestServer {
	return NewTestServerWithGateway(mock.NewGateway())
}

// NewTestServerWithGateway creates a test server using the given gateway,
// allowing tests to inject delays and failures.
func NewTestServerWithGateway(gateway *mock.Gateway) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewMockClockFromString("2026-08-30T10:00:00Z")
	sessions := session.New[*usecase.Wizard](SessionTTL, clock)

	flights := catalog.NewFlightCatalog(seedPath("flights.json"))
	packages := catalog.NewPackageCatalog(seedPath("packages.json"))

	log := zerolog.Nop()
	searchUC := usecase.NewFlightSearchUseCase(flights)
	packageUC := usecase.NewPackageUseCase(packages, gateway, log)
	bookingUC := usecase.NewBookingUseCase(flights, gateway, sessions, usecase.BookingConfig{
		TaxRate: usecase.DefaultTaxRate,
		Clock:   clock,
	}, log)

	bookinghttp.RegisterRoutes(e, bookinghttp.Handlers{
		Flights:  bookinghttp.NewFlightHandler(searchUC, LoginURL),
		Packages: bookinghttp.NewPackageHandler(packageUC, LoginURL),
		Bookings: bookinghttp.NewBookingHandler(bookingUC, LoginURL),
	}, LoginURL)

	return &TestServer{
		Echo:     e,
		Gateway:  gateway,
		Clock:    clock,
		Sessions: sessions,
	}
}

// seedPath resolves a file under the data directory relative to this file.
func seedPath(filename string) string {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "data", filename)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method    string
	Path      string
	Body      interface{}
	UserEmail string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.UserEmail != "" {
		httpReq.Header.Set(middleware.UserEmailHeader, req.UserEmail)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a flight search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// CreateBooking opens a booking wizard session as the test user.
func (ts *TestServer) CreateBooking(flightID string, adults, children int) Response {
	return ts.Do(Request{
		Method:    http.MethodPost,
		Path:      "/api/v1/bookings",
		Body:      map[string]interface{}{"flight_id": flightID, "adults": adults, "children": children},
		UserEmail: TestUserEmail,
	})
}

// UpdatePassenger patches one roster field on a session.
func (ts *TestServer) UpdatePassenger(sessionID string, index int, field, value string) Response {
	return ts.Do(Request{
		Method:    http.MethodPatch,
		Path:      fmt.Sprintf("/api/v1/bookings/%s/passengers/%d", sessionID, index),
		Body:      map[string]string{"field": field, "value": value},
		UserEmail: TestUserEmail,
	})
}

// Advance moves a session one wizard step forward.
func (ts *TestServer) Advance(sessionID string) Response {
	return ts.Do(Request{
		Method:    http.MethodPost,
		Path:      "/api/v1/bookings/" + sessionID + "/advance",
		UserEmail: TestUserEmail,
	})
}

// Back moves a session one wizard step backwards.
func (ts *TestServer) Back(sessionID string) Response {
	return ts.Do(Request{
		Method:    http.MethodPost,
		Path:      "/api/v1/bookings/" + sessionID + "/back",
		UserEmail: TestUserEmail,
	})
}

// SetTerms records terms acceptance on a session.
func (ts *TestServer) SetTerms(sessionID string, accepted bool) Response {
	return ts.Do(Request{
		Method:    http.MethodPut,
		Path:      "/api/v1/bookings/" + sessionID + "/terms",
		Body:      map[string]bool{"accepted": accepted},
		UserEmail: TestUserEmail,
	})
}

// Submit finalizes a session.
func (ts *TestServer) Submit(sessionID string) Response {
	return ts.Do(Request{
		Method:    http.MethodPost,
		Path:      "/api/v1/bookings/" + sessionID + "/submit",
		UserEmail: TestUserEmail,
	})
}

// ParseSearchResponse parses the response body as a search result.
func (r *Response) ParseSearchResponse() (*bookinghttp.SearchResponseDTO, error) {
	var resp bookinghttp.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseBooking parses the response body as a booking snapshot.
func (r *Response) ParseBooking() (*bookinghttp.BookingDTO, error) {
	var resp bookinghttp.BookingDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CompletePassenger fills every field of one roster record over HTTP.
// Child records get no passport or email.
func (ts *TestServer) CompletePassenger(sessionID string, index int, isChild bool) {
	fields := map[string]string{
		"title":       "Ms",
		"firstName":   "Amina",
		"lastName":    "Odhiambo",
		"gender":      "female",
		"dateOfBirth": "1990-04-12",
		"country":     "Kenya",
	}
	for field, value := range fields {
		ts.UpdatePassenger(sessionID, index, field, value)
	}
	if !isChild {
		ts.UpdatePassenger(sessionID, index, "passportNumber", fmt.Sprintf("A1234%03d", index))
	}
	if index == 0 {
		ts.UpdatePassenger(sessionID, index, "email", TestUserEmail)
	}
}

// DefaultSearchRequest returns a valid search request body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"sort_by": "price",
	}
}

// SeedParty returns the party composition used by most wizard tests.
func SeedParty() domain.PartyComposition {
	return domain.PartyComposition{Adults: 1, Children: 0}
}
