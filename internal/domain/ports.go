package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// FlightInventory supplies the read-only, already-loaded flight inventory and
// resolves a single offering by identifier.
type FlightInventory interface {
	// Flights returns the full inventory.
	Flights(ctx context.Context) ([]Flight, error)

	// FlightByID resolves one offering. Returns ErrFlightNotFound when the
	// identifier has no match.
	FlightByID(ctx context.Context, id string) (Flight, error)
}

// PackageInventory supplies the travel-package catalogue.
type PackageInventory interface {
	// Packages returns the full catalogue.
	Packages(ctx context.Context) ([]Package, error)

	// PackageByID resolves one package. Returns ErrPackageNotFound when the
	// identifier has no match.
	PackageByID(ctx context.Context, id string) (Package, error)
}

// PackageOrder is a one-shot package confirmation handed to the submission
// collaborator.
type PackageOrder struct {
	// Package is the catalogue item being booked
	Package Package

	// Customer is the authenticated identity placing the order
	Customer Identity
}

// SubmissionGateway is the external payment/confirmation collaborator. It is
// invoked exactly once per Payment attempt while the in-progress flag is set;
// any timeout or retry policy lives behind this interface, not in the core.
type SubmissionGateway interface {
	// SubmitBooking finalizes a flight booking.
	SubmitBooking(ctx context.Context, booking *Booking) (Confirmation, error)

	// SubmitPackageOrder finalizes a package order.
	SubmitPackageOrder(ctx context.Context, order PackageOrder) (Confirmation, error)
}
