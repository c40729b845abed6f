package domain

import "strings"

// SortOption defines the available sort keys for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by per-adult fare ascending (cheapest first, default)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by normalized journey duration ascending
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts lexicographically on the "HH:MM" departure time
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(s))
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// SearchCriteria is the ephemeral filter and sort state for a search. An
// empty stop-set or airline-set means no filter on that dimension, never
// "reject all"; a nil price bound means that side is unbounded.
type SearchCriteria struct {
	// Stops is the set of accepted stop counts
	Stops []int `json:"stops,omitempty"`

	// Airlines is the set of accepted airline names (case-insensitive)
	Airlines []string `json:"airlines,omitempty"`

	// MinPrice is the inclusive lower fare bound
	MinPrice *float64 `json:"minPrice,omitempty"`

	// MaxPrice is the inclusive upper fare bound
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// SortBy specifies the result ordering (default: price)
	SortBy SortOption `json:"sortBy,omitempty"`
}

// Matches checks if a flight passes all three filter predicates. Filtering is
// conjunctive; each predicate is vacuously true when its set is empty.
func (c *SearchCriteria) Matches(flight Flight) bool {
	if c == nil {
		return true
	}

	if len(c.Stops) > 0 && !containsInt(c.Stops, flight.Stops) {
		return false
	}

	if len(c.Airlines) > 0 && !containsFold(c.Airlines, flight.Airline) {
		return false
	}

	if c.MinPrice != nil && flight.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && flight.Price > *c.MaxPrice {
		return false
	}

	return true
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// SearchResponse is the ordered result of a filter-and-sort run.
type SearchResponse struct {
	// Criteria echoes the criteria the results were produced with
	Criteria SearchCriteria `json:"criteria"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Flights is the filtered, ordered result list
	Flights []Flight `json:"flights"`
}

// SearchMetadata contains metadata about a search execution.
type SearchMetadata struct {
	// TotalResults is the number of flights that passed the filter
	TotalResults int `json:"totalResults"`

	// InventorySize is the size of the inventory before filtering
	InventorySize int `json:"inventorySize"`

	// SearchTimeMs is the search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponse builds a SearchResponse, normalizing a nil flight slice.
func NewSearchResponse(criteria SearchCriteria, flights []Flight, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	metadata.TotalResults = len(flights)

	return &SearchResponse{
		Criteria: criteria,
		Metadata: metadata,
		Flights:  flights,
	}
}
