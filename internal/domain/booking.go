package domain

import "time"

// Step is one state of the booking wizard. Modeling the step as a tagged
// value rather than a counter makes invalid steps unrepresentable.
type Step string

// Wizard steps in order. Submitted is terminal.
const (
	StepDetails   Step = "details"
	StepReview    Step = "review"
	StepPayment   Step = "payment"
	StepSubmitted Step = "submitted"
)

// IsValid checks if the step is a known wizard state.
func (s Step) IsValid() bool {
	switch s {
	case StepDetails, StepReview, StepPayment, StepSubmitted:
		return true
	default:
		return false
	}
}

// Terminal reports whether the wizard accepts further input at this step.
func (s Step) Terminal() bool {
	return s == StepSubmitted
}

// Identity is what the core reads from the external identity collaborator:
// an email address and, by its presence, an authentication signal.
type Identity struct {
	Email string `json:"email"`
}

// Booking is the wizard's session state. It is owned by a single wizard and
// never shared between sessions.
type Booking struct {
	// Flight is the selected inventory offering
	Flight Flight `json:"flight"`

	// Roster holds the passenger records, sized by the party composition
	Roster Roster `json:"roster"`

	// Step is the current wizard state
	Step Step `json:"step"`

	// TermsAccepted records the terms checkbox; it is re-checked immediately
	// before submission even if set earlier
	TermsAccepted bool `json:"termsAccepted"`

	// SubmissionInProgress blocks duplicate submission while the external
	// collaborator runs
	SubmissionInProgress bool `json:"submissionInProgress"`

	// CreatedAt is when the session was opened
	CreatedAt time.Time `json:"createdAt"`

	// Confirmation is set once the wizard reaches Submitted
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

// Party returns the composition the roster was initialized with.
func (b *Booking) Party() PartyComposition {
	return b.Roster.Party
}

// Confirmation is the submission collaborator's receipt for a completed
// booking.
type Confirmation struct {
	// Reference is the confirmation reference shown to the user
	Reference string `json:"reference"`

	// ProcessedAt is when the collaborator finalized the transaction
	ProcessedAt time.Time `json:"processedAt"`
}

// FareBreakdown is the subtotal/taxes/total triple for a priced itinerary.
// Amounts are unrounded; the presentation boundary formats them to two
// fraction digits so rounding error never compounds across steps.
type FareBreakdown struct {
	// AdultsSubtotal is baseFare × adults
	AdultsSubtotal float64 `json:"adultsSubtotal"`

	// ChildrenSubtotal is baseFare × children × the child fare ratio
	ChildrenSubtotal float64 `json:"childrenSubtotal"`

	// Subtotal is the sum of the adult and child subtotals
	Subtotal float64 `json:"subtotal"`

	// Taxes is subtotal × tax rate
	Taxes float64 `json:"taxes"`

	// Total is the amount due
	Total float64 `json:"total"`

	// TaxRate is the rate the taxes were computed with
	TaxRate float64 `json:"taxRate"`
}
