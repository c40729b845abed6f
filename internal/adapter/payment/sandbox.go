// Package payment provides the submission gateway adapter. The sandbox
// implementation simulates an external payment processor: it adds latency,
// can be forced to fail, and issues confirmation references, all without
// leaving the process.
package payment

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/infrastructure/retry"
	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
)

// referencePrefix starts every confirmation reference issued by the sandbox.
const referencePrefix = "SKW"

// Config holds the sandbox gateway tunables.
type Config struct {
	// Latency is the simulated processing delay per attempt.
	Latency time.Duration

	// FailSubmissions makes every submission fail with a retryable error.
	// Used to exercise the failure path in demos and tests.
	FailSubmissions bool

	// Retry controls retry behavior on transient failures. Zero value
	// disables retries.
	Retry retry.Config
}

// SandboxGateway is an in-process stand-in for the payment processor.
type SandboxGateway struct {
	cfg   Config
	clock timeutil.Clock
	log   zerolog.Logger
	seq   atomic.Uint64
}

// NewSandboxGateway creates a SandboxGateway with the given configuration.
// A nil clock falls back to the real clock.
func NewSandboxGateway(cfg Config, clock timeutil.Clock, log zerolog.Logger) *SandboxGateway {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &SandboxGateway{
		cfg:   cfg,
		clock: clock,
		log:   log,
	}
}

// SubmitBooking implements domain.SubmissionGateway.
func (g *SandboxGateway) SubmitBooking(ctx context.Context, booking *domain.Booking) (domain.Confirmation, error) {
	if booking == nil || booking.Roster.Size() == 0 {
		return domain.Confirmation{}, retry.NewPermanent(fmt.Errorf("booking has no passengers"))
	}

	confirmation, err := g.process(ctx, "booking")
	if err != nil {
		return domain.Confirmation{}, err
	}

	g.log.Info().
		Str("confirmation", confirmation.Reference).
		Str("flight_id", booking.Flight.ID).
		Int("passengers", booking.Roster.Size()).
		Msg("Booking submission processed")

	return confirmation, nil
}

// SubmitPackageOrder implements domain.SubmissionGateway.
func (g *SandboxGateway) SubmitPackageOrder(ctx context.Context, order domain.PackageOrder) (domain.Confirmation, error) {
	if order.Package.ID == "" {
		return domain.Confirmation{}, retry.NewPermanent(fmt.Errorf("order has no package"))
	}
	if order.Customer.Email == "" {
		return domain.Confirmation{}, retry.NewPermanent(fmt.Errorf("order has no customer"))
	}

	confirmation, err := g.process(ctx, "package order")
	if err != nil {
		return domain.Confirmation{}, err
	}

	g.log.Info().
		Str("confirmation", confirmation.Reference).
		Str("package_id", order.Package.ID).
		Msg("Package order processed")

	return confirmation, nil
}

// process runs one simulated processor round trip, with retries when
// configured.
func (g *SandboxGateway) process(ctx context.Context, kind string) (domain.Confirmation, error) {
	cfg := g.cfg.Retry.WithRetryIf(retry.SkipPermanent)

	return retry.DoWithResult(ctx, func() (domain.Confirmation, error) {
		if err := g.simulateLatency(ctx); err != nil {
			return domain.Confirmation{}, err
		}

		if g.cfg.FailSubmissions {
			return domain.Confirmation{}, fmt.Errorf("processor declined the %s", kind)
		}

		now := g.clock.Now()
		return domain.Confirmation{
			Reference:   g.nextReference(now),
			ProcessedAt: now,
		}, nil
	}, cfg)
}

func (g *SandboxGateway) simulateLatency(ctx context.Context) error {
	if g.cfg.Latency <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.cfg.Latency):
		return nil
	}
}

// nextReference issues a reference like "SKW-20260830-0007". The sequence is
// process-local; uniqueness across restarts comes from the date plus the
// monotonically increasing suffix within a run.
func (g *SandboxGateway) nextReference(now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", referencePrefix, now.Format("20060102"), g.seq.Add(1))
}

// Ensure SandboxGateway implements SubmissionGateway at compile time.
var _ domain.SubmissionGateway = (*SandboxGateway)(nil)
