package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
	"github.com/skyway/travel-booking-system/internal/session"
)

// BookingSnapshot is the presentation-ready view of a session: the wizard
// state plus the fare breakdown for the Payment step, as plain data.
type BookingSnapshot struct {
	SessionID string
	Booking   domain.Booking
	Fare      domain.FareBreakdown
}

// BookingUseCase drives booking wizard sessions.
type BookingUseCase interface {
	// Create resolves the flight, opens a wizard session for the
	// authenticated user, and returns its initial snapshot.
	Create(ctx context.Context, flightID string, party domain.PartyComposition, user domain.Identity) (*BookingSnapshot, error)

	// Get returns the current snapshot of a session.
	Get(ctx context.Context, sessionID string) (*BookingSnapshot, error)

	// UpdatePassenger replaces one field of one roster record.
	UpdatePassenger(ctx context.Context, sessionID string, index int, field domain.PassengerField, value string) (*BookingSnapshot, error)

	// Advance moves the session one step forward, gated by validation.
	Advance(ctx context.Context, sessionID string) (*BookingSnapshot, error)

	// Back moves the session one step backwards. exited reports that the
	// user left the wizard from the Details step; the session is discarded.
	Back(ctx context.Context, sessionID string) (snapshot *BookingSnapshot, exited bool, err error)

	// SetTerms records the terms checkbox.
	SetTerms(ctx context.Context, sessionID string, accepted bool) (*BookingSnapshot, error)

	// Submit finalizes the booking. On success the session is discarded and
	// the terminal snapshot returned.
	Submit(ctx context.Context, sessionID string) (*BookingSnapshot, error)
}

type bookingUseCase struct {
	inventory domain.FlightInventory
	gateway   domain.SubmissionGateway
	sessions  *session.Store[*Wizard]
	taxRate   float64
	clock     timeutil.Clock
	log       zerolog.Logger
}

// BookingConfig carries the tunables for the booking use case.
type BookingConfig struct {
	// TaxRate overrides the pipeline-wide default. Zero is honored as
	// tax-free; a negative value means unset and selects DefaultTaxRate.
	TaxRate float64

	// Clock supplies session timestamps. Defaults to the real clock.
	Clock timeutil.Clock
}

// NewBookingUseCase creates a BookingUseCase over the given collaborators.
func NewBookingUseCase(inventory domain.FlightInventory, gateway domain.SubmissionGateway, sessions *session.Store[*Wizard], cfg BookingConfig, log zerolog.Logger) BookingUseCase {
	taxRate := cfg.TaxRate
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &bookingUseCase{
		inventory: inventory,
		gateway:   gateway,
		sessions:  sessions,
		taxRate:   taxRate,
		clock:     clock,
		log:       log,
	}
}

func (uc *bookingUseCase) Create(ctx context.Context, flightID string, party domain.PartyComposition, user domain.Identity) (*BookingSnapshot, error) {
	flight, err := uc.inventory.FlightByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	wizard, err := NewWizard(flight, party, user, uc.gateway, uc.taxRate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	id := uc.sessions.Put(wizard)

	uc.log.Info().
		Str("session_id", id).
		Str("flight_id", flightID).
		Int("adults", party.Adults).
		Int("children", party.Children).
		Msg("Booking session opened")

	return uc.snapshot(id, wizard), nil
}

func (uc *bookingUseCase) Get(_ context.Context, sessionID string) (*BookingSnapshot, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return uc.snapshot(sessionID, wizard), nil
}

func (uc *bookingUseCase) UpdatePassenger(_ context.Context, sessionID string, index int, field domain.PassengerField, value string) (*BookingSnapshot, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if err := wizard.UpdatePassenger(index, field, value); err != nil {
		return nil, err
	}
	return uc.snapshot(sessionID, wizard), nil
}

func (uc *bookingUseCase) Advance(_ context.Context, sessionID string) (*BookingSnapshot, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if err := wizard.Advance(); err != nil {
		return nil, err
	}
	return uc.snapshot(sessionID, wizard), nil
}

func (uc *bookingUseCase) Back(_ context.Context, sessionID string) (*BookingSnapshot, bool, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, false, err
	}

	exited, err := wizard.Back()
	if err != nil {
		return nil, false, err
	}

	if exited {
		// Leaving from Details abandons the booking; the session state is
		// discarded rather than parked.
		uc.sessions.Delete(sessionID)
		uc.log.Info().Str("session_id", sessionID).Msg("Booking session abandoned")
		return nil, true, nil
	}

	return uc.snapshot(sessionID, wizard), false, nil
}

func (uc *bookingUseCase) SetTerms(_ context.Context, sessionID string, accepted bool) (*BookingSnapshot, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if err := wizard.SetTermsAccepted(accepted); err != nil {
		return nil, err
	}
	return uc.snapshot(sessionID, wizard), nil
}

func (uc *bookingUseCase) Submit(ctx context.Context, sessionID string) (*BookingSnapshot, error) {
	wizard, err := uc.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	confirmation, err := wizard.Submit(ctx)
	if err != nil {
		uc.log.Warn().Str("session_id", sessionID).Err(err).Msg("Booking submission rejected")
		return nil, err
	}

	// Capture the terminal snapshot before the session is discarded.
	snapshot := uc.snapshot(sessionID, wizard)
	uc.sessions.Delete(sessionID)

	uc.log.Info().
		Str("session_id", sessionID).
		Str("confirmation", confirmation.Reference).
		Msg("Booking confirmed")

	return snapshot, nil
}

func (uc *bookingUseCase) lookup(sessionID string) (*Wizard, error) {
	wizard, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return wizard, nil
}

func (uc *bookingUseCase) snapshot(sessionID string, wizard *Wizard) *BookingSnapshot {
	return &BookingSnapshot{
		SessionID: sessionID,
		Booking:   wizard.Booking(),
		Fare:      wizard.Fare(),
	}
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
