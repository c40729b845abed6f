package http

import (
	"github.com/skyway/travel-booking-system/internal/domain"
	"github.com/skyway/travel-booking-system/internal/usecase"
	"github.com/skyway/travel-booking-system/pkg/currency"
)

// ToSearchResponseDTO converts a domain SearchResponse to its DTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		Metadata: MetadataDTO{
			TotalResults:  resp.Metadata.TotalResults,
			InventorySize: resp.Metadata.InventorySize,
			SearchTimeMs:  resp.Metadata.SearchTimeMs,
			SortBy:        string(resp.Criteria.SortBy),
		},
		Flights: make([]FlightDTO, len(resp.Flights)),
	}

	for i, flight := range resp.Flights {
		dto.Flights[i] = ToFlightDTO(flight)
	}

	return dto
}

// ToFlightDTO converts a domain Flight to a FlightDTO.
func ToFlightDTO(flight domain.Flight) FlightDTO {
	return FlightDTO{
		ID:               flight.ID,
		Airline:          flight.Airline,
		AirlineCode:      flight.AirlineCode,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		DepartureAirport: flight.DepartureAirport,
		ArrivalAirport:   flight.ArrivalAirport,
		Duration: DurationDTO{
			TotalMinutes: flight.Duration.TotalMinutes,
			Formatted:    flight.Duration.Formatted,
		},
		Stops:        flight.Stops,
		Price:        flight.Price,
		DisplayPrice: currency.USD(flight.Price),
		Class:        string(flight.Class),
		Refundable:   flight.Refundable,
		Badge:        badgeFor(flight.Price),
	}
}

// ToPackageDTO converts a domain Package to a PackageDTO.
func ToPackageDTO(pkg domain.Package) PackageDTO {
	return PackageDTO{
		ID:           pkg.ID,
		Title:        pkg.Title,
		Location:     pkg.Location,
		Image:        pkg.Image,
		Description:  pkg.Description,
		Highlights:   pkg.Highlights,
		Price:        pkg.Price,
		DisplayPrice: currency.USD(pkg.Price),
		Rating:       pkg.Rating,
		Duration:     pkg.Duration,
		Refundable:   pkg.Refundable,
	}
}

// ToPackageDTOs converts a package list.
func ToPackageDTOs(packages []domain.Package) []PackageDTO {
	dtos := make([]PackageDTO, len(packages))
	for i, p := range packages {
		dtos[i] = ToPackageDTO(p)
	}
	return dtos
}

// ToBookingDTO converts a booking snapshot to its DTO.
func ToBookingDTO(snap *usecase.BookingSnapshot) *BookingDTO {
	if snap == nil {
		return nil
	}

	booking := snap.Booking
	dto := &BookingDTO{
		SessionID: snap.SessionID,
		Step:      stepDTO(booking.Step),
		Flight:    ToFlightDTO(booking.Flight),
		Party: PartyDTO{
			Adults:   booking.Roster.Party.Adults,
			Children: booking.Roster.Party.Children,
		},
		Passengers:    make([]PassengerDTO, len(booking.Roster.Passengers)),
		TermsAccepted: booking.TermsAccepted,
		Fare:          ToFareDTO(snap.Fare),
		CreatedAt:     formatTimestamp(booking.CreatedAt),
	}

	for i, p := range booking.Roster.Passengers {
		dto.Passengers[i] = PassengerDTO{
			Title:          p.Title,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Gender:         p.Gender,
			DateOfBirth:    p.DateOfBirth,
			Country:        p.Country,
			Email:          p.Email,
			Phone:          p.Phone,
			PassportNumber: p.PassportNumber,
			IsChild:        booking.Roster.IsChild(i),
		}
	}

	if booking.Confirmation != nil {
		dto.Confirmation = &ConfirmationDTO{
			Reference:   booking.Confirmation.Reference,
			ProcessedAt: formatTimestamp(booking.Confirmation.ProcessedAt),
		}
	}

	return dto
}

// ToFareDTO formats a fare breakdown for presentation.
func ToFareDTO(fare domain.FareBreakdown) FareDTO {
	return FareDTO{
		AdultsSubtotal:   currency.USD(fare.AdultsSubtotal),
		ChildrenSubtotal: currency.USD(fare.ChildrenSubtotal),
		Subtotal:         currency.USD(fare.Subtotal),
		Taxes:            currency.USD(fare.Taxes),
		Total:            currency.USD(fare.Total),
		TaxRate:          fare.TaxRate,
	}
}
