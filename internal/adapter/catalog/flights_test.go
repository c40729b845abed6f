package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// writeFixture writes JSON content to a temp file and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFlightCatalog_ImplementsInterface(t *testing.T) {
	var _ domain.FlightInventory = (*FlightCatalog)(nil)
}

func TestFlightCatalog_Flights(t *testing.T) {
	tests := []struct {
		name        string
		jsonContent string
		wantFlights int
		wantErr     bool
		checkFirst  func(*testing.T, domain.Flight)
	}{
		{
			name: "valid seed file",
			jsonContent: `{
				"flights": [
					{
						"id": "1",
						"airline": "Singapore Airlines",
						"airline_code": "SQ",
						"departure_time": "12:10",
						"arrival_time": "15:30",
						"departure_airport": "Moi Intl, Mombasa Kenya",
						"arrival_airport": "JFK Terminal, Nairobi, Kenya",
						"duration_minutes": 210,
						"stops": 0,
						"price": 110,
						"class": "Business",
						"refundable": true
					}
				]
			}`,
			wantFlights: 1,
			checkFirst: func(t *testing.T, f domain.Flight) {
				assert.Equal(t, "1", f.ID)
				assert.Equal(t, "Singapore Airlines", f.Airline)
				assert.Equal(t, "SQ", f.AirlineCode)
				assert.Equal(t, "12:10", f.DepartureTime)
				assert.Equal(t, 210, f.Duration.TotalMinutes)
				assert.Equal(t, "3h 30min", f.Duration.Formatted)
				assert.Equal(t, float64(110), f.Price)
				assert.Equal(t, domain.ClassBusiness, f.Class)
				assert.True(t, f.Refundable)
			},
		},
		{
			name:        "empty flights array",
			jsonContent: `{"flights": []}`,
			wantFlights: 0,
		},
		{
			name: "record without id is skipped",
			jsonContent: `{
				"flights": [
					{"airline": "Qatar Airways", "price": 435},
					{"id": "2", "airline": "Qatar Airways", "price": 435, "class": "Business"}
				]
			}`,
			wantFlights: 1,
		},
		{
			name: "negative price is skipped",
			jsonContent: `{
				"flights": [
					{"id": "1", "airline": "Emirates", "price": -5, "class": "Business"}
				]
			}`,
			wantFlights: 0,
		},
		{
			name: "unknown cabin class falls back to economy",
			jsonContent: `{
				"flights": [
					{"id": "1", "airline": "Emirates", "price": 330, "class": "Premium Plus"}
				]
			}`,
			wantFlights: 1,
			checkFirst: func(t *testing.T, f domain.Flight) {
				assert.Equal(t, domain.ClassEconomy, f.Class)
			},
		},
		{
			name:        "malformed JSON",
			jsonContent: `{"flights": [`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "flights.json", tt.jsonContent)
			c := NewFlightCatalog(path)

			flights, err := c.Flights(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, flights, tt.wantFlights)
			if tt.checkFirst != nil {
				tt.checkFirst(t, flights[0])
			}
		})
	}
}

func TestFlightCatalog_MissingFile(t *testing.T) {
	c := NewFlightCatalog(filepath.Join(t.TempDir(), "absent.json"))

	_, err := c.Flights(context.Background())
	assert.Error(t, err)
}

func TestFlightCatalog_FlightByID(t *testing.T) {
	path := writeFixture(t, "flights.json", `{
		"flights": [
			{"id": "1", "airline": "Singapore Airlines", "price": 110, "class": "Business"},
			{"id": "2", "airline": "Qatar Airways", "price": 435, "class": "Business"}
		]
	}`)
	c := NewFlightCatalog(path)

	flight, err := c.FlightByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Qatar Airways", flight.Airline)

	_, err = c.FlightByID(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestFlightCatalog_SeedFile(t *testing.T) {
	// The shipped seed catalogue is well formed and complete.
	c := NewFlightCatalog(filepath.Join("..", "..", "..", "data", "flights.json"))

	flights, err := c.Flights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 5)

	prices := make([]float64, len(flights))
	for i, f := range flights {
		prices[i] = f.Price
	}
	assert.Equal(t, []float64{110, 435, 330, 200, 110}, prices)
}
