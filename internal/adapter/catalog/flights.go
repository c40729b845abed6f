// Package catalog provides file-backed inventory adapters. Each catalog reads
// a JSON seed file and normalizes its records into domain entities; the seed
// file is the single source of truth and is re-read on every call, so edits
// take effect without a restart.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// seedFlight is the raw JSON shape of one flight record in the seed file.
type seedFlight struct {
	ID               string  `json:"id"`
	Airline          string  `json:"airline"`
	AirlineCode      string  `json:"airline_code"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DurationMinutes  int     `json:"duration_minutes"`
	Stops            int     `json:"stops"`
	Price            float64 `json:"price"`
	Class            string  `json:"class"`
	Refundable       bool    `json:"refundable"`
}

type flightSeedFile struct {
	Flights []seedFlight `json:"flights"`
}

// FlightCatalog serves flight inventory from a JSON seed file.
type FlightCatalog struct {
	filePath string
}

// NewFlightCatalog creates a FlightCatalog reading from the given file path.
func NewFlightCatalog(filePath string) *FlightCatalog {
	return &FlightCatalog{filePath: filePath}
}

// Flights implements domain.FlightInventory.
func (c *FlightCatalog) Flights(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight catalog: %w", err)
	}

	var seed flightSeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse flight catalog: %w", err)
	}

	flights := make([]domain.Flight, 0, len(seed.Flights))
	for _, f := range seed.Flights {
		normalized, err := normalizeFlight(f)
		if err != nil {
			// Malformed records are skipped, not fatal
			continue
		}
		flights = append(flights, normalized)
	}

	return flights, nil
}

// FlightByID implements domain.FlightInventory.
func (c *FlightCatalog) FlightByID(ctx context.Context, id string) (domain.Flight, error) {
	flights, err := c.Flights(ctx)
	if err != nil {
		return domain.Flight{}, err
	}

	for _, f := range flights {
		if f.ID == id {
			return f, nil
		}
	}

	return domain.Flight{}, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, id)
}

// normalizeFlight converts a raw seed record to a domain Flight entity.
func normalizeFlight(f seedFlight) (domain.Flight, error) {
	if f.ID == "" {
		return domain.Flight{}, fmt.Errorf("flight record has no id")
	}
	if f.Price < 0 {
		return domain.Flight{}, fmt.Errorf("flight %s has a negative price", f.ID)
	}

	class := domain.CabinClass(f.Class)
	if !class.IsValid() {
		class = domain.ClassEconomy
	}

	return domain.Flight{
		ID:               f.ID,
		Airline:          f.Airline,
		AirlineCode:      f.AirlineCode,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		Duration:         domain.NewDurationInfo(f.DurationMinutes),
		Stops:            f.Stops,
		Price:            f.Price,
		Class:            class,
		Refundable:       f.Refundable,
	}, nil
}

// Ensure FlightCatalog implements FlightInventory at compile time.
var _ domain.FlightInventory = (*FlightCatalog)(nil)
