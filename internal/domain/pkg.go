package domain

// Package is a curated travel-package offering. Unlike flights, packages are
// booked through a one-shot confirmation flow with no passenger wizard.
type Package struct {
	// ID is the unique catalogue identifier
	ID string `json:"id"`

	// Title is the package display name (e.g., "Bali Adventure")
	Title string `json:"title"`

	// Location is the destination display name
	Location string `json:"location"`

	// Image is an optional URL to the package hero image
	Image string `json:"image,omitempty"`

	// Description is a short marketing description
	Description string `json:"description,omitempty"`

	// Highlights lists included activities or perks
	Highlights []string `json:"highlights,omitempty"`

	// Price is the all-in package price
	Price float64 `json:"price"`

	// Rating is the average customer rating out of 5
	Rating float64 `json:"rating"`

	// Duration is the trip length display string (e.g., "5 Days / 4 Nights")
	Duration string `json:"duration"`

	// Refundable reports whether the package price is refundable
	Refundable bool `json:"refundable"`
}
