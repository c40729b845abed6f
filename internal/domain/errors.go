package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking pipeline. All of these are recoverable by
// user correction; none are fatal to the process.
var (
	// ErrInvalidRequest indicates malformed or out-of-bounds input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrFlightNotFound indicates the requested flight identifier has no
	// match in inventory.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrPackageNotFound indicates the requested package identifier has no
	// match in the catalogue.
	ErrPackageNotFound = errors.New("package not found")

	// ErrSessionNotFound indicates an unknown or expired booking session.
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrUnauthenticated indicates the caller carries no identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrTermsNotAccepted blocks final submission until the terms checkbox is
	// set. It never regresses the wizard step.
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")

	// ErrSubmissionInProgress rejects a duplicate submit while the external
	// collaborator is still running.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrSubmissionFailed wraps any failure from the submission collaborator.
	// The wizard returns to Payment with all entered data preserved.
	ErrSubmissionFailed = errors.New("booking submission failed")

	// ErrInvalidTransition indicates an attempted transition between
	// non-adjacent wizard states.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrRosterLocked rejects passenger edits once the wizard has reached
	// the Payment step.
	ErrRosterLocked = errors.New("passenger details are locked at the payment step")

	// ErrPassengerIndex indicates a roster index outside [0, size).
	ErrPassengerIndex = errors.New("passenger index out of range")

	// ErrUnknownPassengerField indicates an update targeting a field no
	// passenger record has.
	ErrUnknownPassengerField = errors.New("unknown passenger field")
)

// ViolationKind classifies a roster validation failure. Each kind maps to a
// single user-facing message at the presentation boundary.
type ViolationKind string

// Roster violation kinds.
const (
	ViolationMissingRequiredField  ViolationKind = "missing_required_field"
	ViolationMissingPrimaryContact ViolationKind = "missing_primary_contact"
	ViolationMissingPassport       ViolationKind = "missing_passport"
)

// RosterViolation is the first rule violation found in a roster, in ascending
// index order. Validation surfaces one violation per attempt to match the
// one-error-at-a-time correction flow.
type RosterViolation struct {
	// Kind classifies the violation
	Kind ViolationKind

	// PassengerIndex is the zero-based roster index of the offending record
	PassengerIndex int

	// Field is set for MissingRequiredField violations
	Field PassengerField
}

// Error implements the error interface with a log-oriented message.
func (v *RosterViolation) Error() string {
	switch v.Kind {
	case ViolationMissingPrimaryContact:
		return "passenger 0: primary contact email is missing"
	case ViolationMissingPassport:
		return fmt.Sprintf("passenger %d: passport number is missing", v.PassengerIndex)
	default:
		return fmt.Sprintf("passenger %d: required field %s is missing", v.PassengerIndex, v.Field)
	}
}

// Message returns the single user-facing prompt for this violation, naming
// the passenger ordinal.
func (v *RosterViolation) Message() string {
	switch v.Kind {
	case ViolationMissingPrimaryContact:
		return "Primary passenger email is required"
	case ViolationMissingPassport:
		return fmt.Sprintf("Passport number is required for adult passenger %d", v.PassengerIndex+1)
	default:
		return fmt.Sprintf("Please fill all required fields for passenger %d", v.PassengerIndex+1)
	}
}
