// Package usecase contains the business logic of the booking pipeline:
// inventory search, roster validation, fare computation, and the booking
// wizard state machine.
package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search filters and sorts the inventory by the given criteria.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)

	// Find resolves a single flight by identifier.
	Find(ctx context.Context, id string) (domain.Flight, error)
}

type flightSearchUseCase struct {
	inventory domain.FlightInventory
}

// NewFlightSearchUseCase creates a FlightSearchUseCase over the given
// inventory collaborator.
func NewFlightSearchUseCase(inventory domain.FlightInventory) FlightSearchUseCase {
	return &flightSearchUseCase{inventory: inventory}
}

// Search implements FlightSearchUseCase.Search. Filtering and sorting are
// independent stages: re-running with a different sort key never changes
// which flights pass the filter.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	start := time.Now()

	flights, err := uc.inventory.Flights(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterFlights(flights, &criteria)
	sorted := SortFlights(filtered, criteria.SortBy)

	return domain.NewSearchResponse(criteria, sorted, domain.SearchMetadata{
		InventorySize: len(flights),
		SearchTimeMs:  time.Since(start).Milliseconds(),
	}), nil
}

// Find implements FlightSearchUseCase.Find.
func (uc *flightSearchUseCase) Find(ctx context.Context, id string) (domain.Flight, error) {
	return uc.inventory.FlightByID(ctx, id)
}

// FilterFlights applies the criteria's three predicates to a list of flights.
// It returns a new slice containing only flights that match all of them.
//
// Behavior:
//   - Returns the original slice if criteria is nil (no filtering)
//   - An empty stop-set or airline-set passes every flight on that dimension
//   - A nil price bound leaves that side of the range unbounded
//   - Does NOT mutate the original flights slice
//   - Performance is O(n) where n = number of flights
func FilterFlights(flights []domain.Flight, criteria *domain.SearchCriteria) []domain.Flight {
	if criteria == nil {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if criteria.Matches(f) {
			result = append(result, f)
		}
	}
	return result
}

// FilterByStops keeps flights whose stop count is in the accepted set.
// Returns all flights if the set is empty.
func FilterByStops(flights []domain.Flight, stops []int) []domain.Flight {
	if len(stops) == 0 {
		return flights
	}
	return FilterFlights(flights, &domain.SearchCriteria{Stops: stops})
}

// FilterByAirlines keeps flights operated by one of the given airlines.
// Returns all flights if the set is empty. Matching is case-insensitive.
func FilterByAirlines(flights []domain.Flight, airlines []string) []domain.Flight {
	if len(airlines) == 0 {
		return flights
	}
	return FilterFlights(flights, &domain.SearchCriteria{Airlines: airlines})
}

// FilterByPriceRange keeps flights whose per-adult fare lies in the inclusive
// [min, max] range. A nil bound is unbounded on that side.
func FilterByPriceRange(flights []domain.Flight, min, max *float64) []domain.Flight {
	if min == nil && max == nil {
		return flights
	}
	return FilterFlights(flights, &domain.SearchCriteria{MinPrice: min, MaxPrice: max})
}

// SortFlights sorts flights by the given sort key. Sorting is stable, so
// flights comparing equal keep their original relative order, and idempotent:
// sorting an already-sorted list by the same key yields the same list.
//
// Sort keys:
//   - SortByPrice (default): ascending numeric per-adult fare
//   - SortByDuration: ascending by normalized duration minutes
//   - SortByDeparture: ascending lexicographic on the "HH:MM" departure time
//
// Does NOT mutate the original flights slice.
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) <= 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByPrice
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration.TotalMinutes < result[j].Duration.TotalMinutes
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime < result[j].DepartureTime
		})
	}

	return result
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
