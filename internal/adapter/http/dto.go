package http

import (
	"time"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// Badge labels shown on flight cards.
const (
	// BadgeCheapest marks fares at or below the cheapest threshold.
	BadgeCheapest = "Cheapest"

	// BadgeExclusive marks fares at or above the exclusive threshold.
	BadgeExclusive = "Exclusive"

	cheapestThreshold  = 200.0
	exclusiveThreshold = 400.0
)

// SearchResponseDTO is the data transfer object for search responses.
type SearchResponseDTO struct {
	Metadata MetadataDTO `json:"metadata"`
	Flights  []FlightDTO `json:"flights"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults  int    `json:"total_results"`
	InventorySize int    `json:"inventory_size"`
	SearchTimeMs  int64  `json:"search_time_ms"`
	SortBy        string `json:"sort_by"`
}

// FlightDTO is the data transfer object for flight responses.
type FlightDTO struct {
	ID               string      `json:"id"`
	Airline          string      `json:"airline"`
	AirlineCode      string      `json:"airline_code"`
	DepartureTime    string      `json:"departure_time"`
	ArrivalTime      string      `json:"arrival_time"`
	DepartureAirport string      `json:"departure_airport"`
	ArrivalAirport   string      `json:"arrival_airport"`
	Duration         DurationDTO `json:"duration"`
	Stops            int         `json:"stops"`
	Price            float64     `json:"price"`
	DisplayPrice     string      `json:"display_price"`
	Class            string      `json:"class"`
	Refundable       bool        `json:"refundable"`
	Badge            string      `json:"badge,omitempty"`
}

// DurationDTO represents flight duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PackageDTO is the data transfer object for travel packages.
type PackageDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Image        string   `json:"image,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Price        float64  `json:"price"`
	DisplayPrice string   `json:"display_price"`
	Rating       float64  `json:"rating"`
	Duration     string   `json:"duration"`
	Refundable   bool     `json:"refundable"`
}

// PassengerDTO is the data transfer object for roster records.
type PassengerDTO struct {
	Title          string `json:"title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth"`
	Country        string `json:"country"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
	IsChild        bool   `json:"is_child"`
}

// PartyDTO represents the party composition.
type PartyDTO struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// FareDTO is the presentation view of a fare breakdown. Every amount is
// rounded and formatted here, at the boundary.
type FareDTO struct {
	AdultsSubtotal   string  `json:"adults_subtotal"`
	ChildrenSubtotal string  `json:"children_subtotal"`
	Subtotal         string  `json:"subtotal"`
	Taxes            string  `json:"taxes"`
	Total            string  `json:"total"`
	TaxRate          float64 `json:"tax_rate"`
}

// ConfirmationDTO is the terminal booking receipt.
type ConfirmationDTO struct {
	Reference   string `json:"reference"`
	ProcessedAt string `json:"processed_at"`
}

// BookingDTO is the data transfer object for a booking wizard session.
type BookingDTO struct {
	SessionID     string           `json:"session_id"`
	Step          string           `json:"step"`
	Flight        FlightDTO        `json:"flight"`
	Party         PartyDTO         `json:"party"`
	Passengers    []PassengerDTO   `json:"passengers"`
	TermsAccepted bool             `json:"terms_accepted"`
	Fare          FareDTO          `json:"fare"`
	CreatedAt     string           `json:"created_at"`
	Confirmation  *ConfirmationDTO `json:"confirmation,omitempty"`
}

// PackageOrderDTO is the receipt for a confirmed package order.
type PackageOrderDTO struct {
	Package      PackageDTO      `json:"package"`
	Confirmation ConfirmationDTO `json:"confirmation"`
}

// badgeFor picks the card badge for a fare, if any. The thresholds are
// inclusive on both sides.
func badgeFor(price float64) string {
	switch {
	case price <= cheapestThreshold:
		return BadgeCheapest
	case price >= exclusiveThreshold:
		return BadgeExclusive
	default:
		return ""
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// stepDTO renders a wizard step for clients.
func stepDTO(s domain.Step) string {
	return string(s)
}
