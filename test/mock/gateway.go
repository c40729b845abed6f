// Package mock provides test doubles for the travel booking system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific confirmations).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// Gateway is a configurable mock implementation of domain.SubmissionGateway.
// It supports configurable delays, errors, and confirmation references for
// testing various scenarios including slow processors and declined payments.
type Gateway struct {
	reference string
	err       error
	delay     time.Duration
	callCount int
	lastRef   int
	mu        sync.Mutex
}

// NewGateway creates a new mock gateway.
// The gateway is configured using the builder pattern methods.
func NewGateway() *Gateway {
	return &Gateway{
		reference: "",
		err:       nil,
		delay:     0,
	}
}

// WithReference configures the gateway to return the given confirmation
// reference for every submission. When unset, references are generated
// sequentially (MOCK-0001, MOCK-0002, ...).
func (g *Gateway) WithReference(ref string) *Gateway {
	g.reference = ref
	return g
}

// WithError configures the gateway to fail every submission with the given error.
func (g *Gateway) WithError(err error) *Gateway {
	g.err = err
	return g
}

// WithDelay configures the gateway to wait the given duration before responding.
// This is useful for testing in-flight submission rejection.
func (g *Gateway) WithDelay(d time.Duration) *Gateway {
	g.delay = d
	return g
}

// SubmitBooking implements domain.SubmissionGateway.SubmitBooking.
func (g *Gateway) SubmitBooking(ctx context.Context, booking *domain.Booking) (domain.Confirmation, error) {
	return g.process(ctx)
}

// SubmitPackageOrder implements domain.SubmissionGateway.SubmitPackageOrder.
func (g *Gateway) SubmitPackageOrder(ctx context.Context, order domain.PackageOrder) (domain.Confirmation, error) {
	return g.process(ctx)
}

// process applies delay, honors context cancellation, and returns the
// configured error or a confirmation.
func (g *Gateway) process(ctx context.Context) (domain.Confirmation, error) {
	g.mu.Lock()
	g.callCount++
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Confirmation{}, ctx.Err()
		case <-time.After(g.delay):
		}
	}

	if ctx.Err() != nil {
		return domain.Confirmation{}, ctx.Err()
	}

	if g.err != nil {
		return domain.Confirmation{}, g.err
	}

	return domain.Confirmation{
		Reference:   g.nextReference(),
		ProcessedAt: time.Now().UTC(),
	}, nil
}

// nextReference returns the fixed reference or a sequential one.
func (g *Gateway) nextReference() string {
	if g.reference != "" {
		return g.reference
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastRef++
	return fmt.Sprintf("MOCK-%04d", g.lastRef)
}

// CallCount returns the number of submissions received.
// This is useful for verifying submit-once behavior.
func (g *Gateway) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

// Reset resets the call count to zero.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callCount = 0
}

// Ensure Gateway implements domain.SubmissionGateway at compile time.
var _ domain.SubmissionGateway = (*Gateway)(nil)

// SampleFlights returns a slice of sample flights for testing.
// The flights have all required fields populated with realistic values.
func SampleFlights(count int) []domain.Flight {
	flights := make([]domain.Flight, count)

	for i := 0; i < count; i++ {
		minutes := 180 + i*45
		flights[i] = domain.Flight{
			ID:               fmt.Sprintf("%d", i+1),
			Airline:          sampleAirlineName(i),
			AirlineCode:      sampleAirlineCode(i),
			DepartureTime:    fmt.Sprintf("%02d:10", 8+i*2),
			ArrivalTime:      fmt.Sprintf("%02d:30", 11+i*2),
			DepartureAirport: "Moi Intl, Mombasa Kenya",
			ArrivalAirport:   "JFK Terminal, Nairobi, Kenya",
			Duration:         domain.NewDurationInfo(minutes),
			Stops:            i % 3,
			Price:            110 + float64(i*80),
			Class:            domain.ClassBusiness,
			Refundable:       i%2 == 0,
		}
	}

	return flights
}

// SamplePackage returns a vacation package with realistic values.
func SamplePackage() domain.Package {
	return domain.Package{
		ID:          "bali-adventure",
		Title:       "Bali Adventure",
		Location:    "Bali, Indonesia",
		Description: "Seven days of temples, rice terraces, and surf breaks.",
		Highlights:  []string{"Ubud rice terraces", "Uluwatu sunset", "Surf lessons"},
		Price:       899,
		Rating:      4.8,
		Duration:    "7 Days / 6 Nights",
	}
}

func sampleAirlineName(i int) string {
	names := []string{"Singapore Airlines", "Qatar Airways", "Emirates", "Saudi Arabian Airlines"}
	return names[i%len(names)]
}

func sampleAirlineCode(i int) string {
	codes := []string{"SQ", "QR", "EK", "SV"}
	return codes[i%len(codes)]
}
