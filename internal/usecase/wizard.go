package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// Wizard is the booking state machine sequencing Details → Review → Payment,
// gated by roster validation and agreement state. A wizard owns its booking
// session exclusively; accessors return copies so no caller ever holds a
// mutable alias into the session state.
//
// The only asynchronous boundary is the submission gateway: while it runs the
// wizard is suspended with the in-progress flag set and rejects all input.
// There is no cancellation primitive for an in-flight submission; the
// gateway owns any timeout policy.
type Wizard struct {
	mu      sync.Mutex
	booking domain.Booking
	gateway domain.SubmissionGateway
	taxRate float64
}

// NewWizard opens a session at the Details step for an authenticated user.
// The roster is sized by the party composition with the primary adult's email
// pre-filled from the identity. Entering the machine unauthenticated is a
// precondition violation: the caller must have redirected to login first.
func NewWizard(flight domain.Flight, party domain.PartyComposition, user domain.Identity, gateway domain.SubmissionGateway, taxRate float64, createdAt time.Time) (*Wizard, error) {
	if user.Email == "" {
		return nil, domain.ErrUnauthenticated
	}

	roster, err := domain.NewRoster(party, user.Email)
	if err != nil {
		return nil, err
	}

	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}

	return &Wizard{
		booking: domain.Booking{
			Flight:    flight,
			Roster:    roster,
			Step:      domain.StepDetails,
			CreatedAt: createdAt,
		},
		gateway: gateway,
		taxRate: taxRate,
	}, nil
}

// Booking returns a copy of the current session state.
func (w *Wizard) Booking() domain.Booking {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking
}

// Step returns the current wizard step.
func (w *Wizard) Step() domain.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking.Step
}

// Fare computes the amount due for the session's flight and party.
func (w *Wizard) Fare() domain.FareBreakdown {
	w.mu.Lock()
	defer w.mu.Unlock()

	fare, err := ComputeFare(w.booking.Flight.Price, w.booking.Roster.Party, w.taxRate)
	if err != nil {
		// The party was validated at roster initialization.
		return domain.FareBreakdown{}
	}
	return fare
}

// UpdatePassenger replaces one field of one roster record. The roster is
// immutable once the wizard has reached Payment.
func (w *Wizard) UpdatePassenger(index int, field domain.PassengerField, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.acceptsInput(); err != nil {
		return err
	}
	if w.booking.Step == domain.StepPayment {
		return domain.ErrRosterLocked
	}

	roster, err := w.booking.Roster.Update(index, field, value)
	if err != nil {
		return err
	}

	w.booking.Roster = roster
	return nil
}

// Advance moves the wizard one step forward.
//
//   - Details → Review is guarded by roster validation; on failure the step
//     does not change and the first violation is returned.
//   - Review → Payment is unconditional (Review is read-only confirmation).
//   - Advancing from Payment or Submitted is a precondition violation;
//     leaving Payment goes through Submit.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.acceptsInput(); err != nil {
		return err
	}

	switch w.booking.Step {
	case domain.StepDetails:
		if violation := ValidateRoster(w.booking.Roster); violation != nil {
			return violation
		}
		w.booking.Step = domain.StepReview
		return nil
	case domain.StepReview:
		w.booking.Step = domain.StepPayment
		return nil
	default:
		return fmt.Errorf("%w: cannot advance from %s", domain.ErrInvalidTransition, w.booking.Step)
	}
}

// Back moves the wizard exactly one step backwards. From Details it reports
// exited=true: leaving the wizard entirely is the navigation collaborator's
// concern, not a wizard state.
func (w *Wizard) Back() (exited bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.acceptsInput(); err != nil {
		return false, err
	}

	switch w.booking.Step {
	case domain.StepDetails:
		return true, nil
	case domain.StepReview:
		w.booking.Step = domain.StepDetails
		return false, nil
	case domain.StepPayment:
		w.booking.Step = domain.StepReview
		return false, nil
	default:
		return false, fmt.Errorf("%w: cannot go back from %s", domain.ErrInvalidTransition, w.booking.Step)
	}
}

// SetTermsAccepted records the terms checkbox. The flag is re-checked at
// submission regardless of when it was set.
func (w *Wizard) SetTermsAccepted(accepted bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.acceptsInput(); err != nil {
		return err
	}

	w.booking.TermsAccepted = accepted
	return nil
}

// Submit finalizes the booking through the submission gateway.
//
// Guards, checked in order: the wizard must be at Payment, no submission may
// already be in flight, and the terms must be accepted. On guard success the
// in-progress flag is set and the gateway invoked exactly once; gateway
// failure returns the wizard to Payment with the flag cleared and every
// entered field preserved, so the user may retry without re-entering data.
// On gateway success the wizard reaches the terminal Submitted state.
func (w *Wizard) Submit(ctx context.Context) (domain.Confirmation, error) {
	w.mu.Lock()

	if w.booking.SubmissionInProgress {
		w.mu.Unlock()
		return domain.Confirmation{}, domain.ErrSubmissionInProgress
	}
	if w.booking.Step != domain.StepPayment {
		step := w.booking.Step
		w.mu.Unlock()
		return domain.Confirmation{}, fmt.Errorf("%w: cannot submit from %s", domain.ErrInvalidTransition, step)
	}
	if !w.booking.TermsAccepted {
		w.mu.Unlock()
		return domain.Confirmation{}, domain.ErrTermsNotAccepted
	}

	w.booking.SubmissionInProgress = true
	snapshot := w.booking
	w.mu.Unlock()

	confirmation, err := w.gateway.SubmitBooking(ctx, &snapshot)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.booking.SubmissionInProgress = false
		return domain.Confirmation{}, fmt.Errorf("%w: %s", domain.ErrSubmissionFailed, err)
	}

	w.booking.SubmissionInProgress = false
	w.booking.Step = domain.StepSubmitted
	w.booking.Confirmation = &confirmation
	return confirmation, nil
}

// acceptsInput rejects input while a submission is in flight or after the
// terminal state is reached.
func (w *Wizard) acceptsInput() error {
	if w.booking.SubmissionInProgress {
		return domain.ErrSubmissionInProgress
	}
	if w.booking.Step.Terminal() {
		return fmt.Errorf("%w: booking already submitted", domain.ErrInvalidTransition)
	}
	return nil
}
