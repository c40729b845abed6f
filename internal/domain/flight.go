// Package domain contains the core business entities and rules for the travel
// booking pipeline. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

// CabinClass is the travel class of a flight offering.
type CabinClass string

// Available cabin classes.
const (
	ClassEconomy  CabinClass = "Economy"
	ClassBusiness CabinClass = "Business"
	ClassFirst    CabinClass = "First"
)

// IsValid checks if the cabin class is one of the known values.
func (c CabinClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	default:
		return false
	}
}

// Flight represents a single bookable inventory offering.
type Flight struct {
	// ID is the unique inventory identifier for this flight
	ID string `json:"id"`

	// Airline is the full operating airline name (e.g., "Singapore Airlines")
	Airline string `json:"airline"`

	// AirlineCode is the short airline code shown in place of a logo (e.g., "SQ")
	AirlineCode string `json:"airlineCode"`

	// DepartureTime is the scheduled departure in zero-padded 24-hour "HH:MM"
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the scheduled arrival in zero-padded 24-hour "HH:MM"
	ArrivalTime string `json:"arrivalTime"`

	// DepartureAirport is the departure airport display name
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the arrival airport display name
	ArrivalAirport string `json:"arrivalAirport"`

	// Duration is the total journey duration
	Duration DurationInfo `json:"duration"`

	// Stops is the number of stops (0 = direct flight)
	Stops int `json:"stops"`

	// Price is the per-adult base fare. It is never mutated after inventory
	// load; child and tax amounts are derived from it at fare time.
	Price float64 `json:"price"`

	// Class is the cabin class of this offering
	Class CabinClass `json:"class"`

	// Refundable reports whether the fare is partially refundable
	Refundable bool `json:"refundable"`
}

// DurationInfo carries a journey duration in normalized units alongside its
// display form. TotalMinutes is the comparison key for duration sorting.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "3h 30min")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = intToString(hours) + "h " + intToString(mins) + "min"
	case hours > 0:
		formatted = intToString(hours) + "h"
	default:
		formatted = intToString(mins) + "min"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// intToString converts a non-negative integer to a string without strconv.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
