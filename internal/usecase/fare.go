package usecase

import (
	"fmt"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// Fare policy constants.
const (
	// ChildFareRatio prices children at 75% of the adult fare. This is a
	// fixed discount policy, not configurable per flight.
	ChildFareRatio = 0.75

	// DefaultTaxRate is the pipeline-wide tax rate applied when the caller
	// leaves the rate unset (negative). An explicit zero means tax-free.
	DefaultTaxRate = 0.15
)

// ComputeFare derives the amount due from the per-adult base fare and the
// party composition:
//
//	subtotal = base×adults + base×children×0.75
//	taxes    = subtotal × taxRate
//	total    = subtotal + taxes
//
// All amounts stay unrounded; the presentation boundary rounds to two
// fraction digits so rounding error never compounds across steps. A negative
// taxRate means unset and falls back to DefaultTaxRate; an explicit zero is
// honored as tax-free. Adults ≥ 1 is a precondition.
func ComputeFare(baseFarePerAdult float64, party domain.PartyComposition, taxRate float64) (domain.FareBreakdown, error) {
	if err := party.Validate(); err != nil {
		return domain.FareBreakdown{}, err
	}
	if baseFarePerAdult < 0 {
		return domain.FareBreakdown{}, fmt.Errorf("%w: base fare cannot be negative", domain.ErrInvalidRequest)
	}

	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}

	adults := baseFarePerAdult * float64(party.Adults)
	children := baseFarePerAdult * float64(party.Children) * ChildFareRatio
	subtotal := adults + children
	taxes := subtotal * taxRate

	return domain.FareBreakdown{
		AdultsSubtotal:   adults,
		ChildrenSubtotal: children,
		Subtotal:         subtotal,
		Taxes:            taxes,
		Total:            subtotal + taxes,
		TaxRate:          taxRate,
	}, nil
}
