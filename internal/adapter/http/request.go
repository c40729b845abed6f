// Package http provides the HTTP handler layer for the travel booking API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"strings"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// maxSeats caps the party size per booking.
const maxSeats = 9

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true, // Empty is valid (defaults to price)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Stops keeps only flights whose stop count is in this set (optional)
	Stops []int `json:"stops,omitempty"`

	// Airlines keeps only flights operated by these airlines (optional)
	Airlines []string `json:"airlines,omitempty"`

	// MinPrice is the inclusive lower fare bound (optional)
	MinPrice *float64 `json:"min_price,omitempty" example:"100"`

	// MaxPrice is the inclusive upper fare bound (optional)
	MaxPrice *float64 `json:"max_price,omitempty" example:"350"`

	// SortBy specifies how to sort results: price, duration, departure
	SortBy string `json:"sort_by,omitempty" example:"price"`
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	for i, stops := range r.Stops {
		if stops < 0 {
			errs.Add(fmt.Sprintf("stops[%d]", i), "stop count cannot be negative")
		}
	}

	for i, airline := range r.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add(fmt.Sprintf("airlines[%d]", i), "airline cannot be blank")
		}
	}

	if r.MinPrice != nil && *r.MinPrice < 0 {
		errs.Add("min_price", "min_price must be a non-negative number")
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("max_price", "max_price must be a non-negative number")
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		errs.Add("max_price", "max_price must not be below min_price")
	}

	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sort_by", "sort_by must be one of: price, duration, departure")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToCriteria converts the request to domain search criteria.
func (r *SearchFlightsRequest) ToCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Stops:    r.Stops,
		Airlines: r.Airlines,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		SortBy:   domain.ParseSortOption(r.SortBy),
	}
}

// CreateBookingRequest represents the request body for opening a booking
// wizard session.
type CreateBookingRequest struct {
	// FlightID identifies the flight being booked
	FlightID string `json:"flight_id" example:"1"`

	// Adults is the number of adult passengers (at least 1)
	Adults int `json:"adults" example:"2"`

	// Children is the number of child passengers
	Children int `json:"children" example:"1"`
}

// Validate validates the create request.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.FlightID) == "" {
		errs.Add("flight_id", "flight_id is required")
	}
	if r.Adults < 1 {
		errs.Add("adults", "adults must be at least 1")
	}
	if r.Children < 0 {
		errs.Add("children", "children cannot be negative")
	}
	if r.Adults >= 1 && r.Children >= 0 && r.Adults+r.Children > maxSeats {
		errs.Add("children", fmt.Sprintf("party cannot exceed %d seats", maxSeats))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Party converts the request to a domain party composition.
func (r *CreateBookingRequest) Party() domain.PartyComposition {
	return domain.PartyComposition{
		Adults:   r.Adults,
		Children: r.Children,
	}
}

// UpdatePassengerRequest represents the request body for editing one field of
// one roster record.
type UpdatePassengerRequest struct {
	// Field is the roster field being edited
	Field string `json:"field" example:"firstName"`

	// Value is the new field value; blank clears the field
	Value string `json:"value" example:"John"`
}

// Validate validates the update request.
func (r *UpdatePassengerRequest) Validate() error {
	errs := &ValidationErrors{}

	if !domain.PassengerField(r.Field).IsValid() {
		errs.Add("field", "field is not an editable passenger field")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SetTermsRequest represents the request body for the terms checkbox.
type SetTermsRequest struct {
	// Accepted records whether the terms and conditions are accepted
	Accepted bool `json:"accepted"`
}
