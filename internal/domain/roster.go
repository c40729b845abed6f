package domain

import "fmt"

// Passenger is one person on a booking. All fields are entered by the user
// during the Details step except the primary adult's email, which is
// pre-filled from the authenticated identity.
type Passenger struct {
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	Country        string `json:"country"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

// PassengerField identifies a single mutable field of a Passenger record.
type PassengerField string

// Mutable passenger fields, in the order validation checks them.
const (
	FieldTitle          PassengerField = "title"
	FieldFirstName      PassengerField = "firstName"
	FieldLastName       PassengerField = "lastName"
	FieldGender         PassengerField = "gender"
	FieldDateOfBirth    PassengerField = "dateOfBirth"
	FieldCountry        PassengerField = "country"
	FieldEmail          PassengerField = "email"
	FieldPhone          PassengerField = "phone"
	FieldPassportNumber PassengerField = "passportNumber"
)

// IsValid checks if the field names a known passenger field.
func (f PassengerField) IsValid() bool {
	switch f {
	case FieldTitle, FieldFirstName, FieldLastName, FieldGender,
		FieldDateOfBirth, FieldCountry, FieldEmail, FieldPhone, FieldPassportNumber:
		return true
	default:
		return false
	}
}

// PartyComposition is the (adults, children) tuple driving roster size and
// the child fare discount. It is read once at roster initialization; changing
// the composition requires an explicit whole-roster rebuild.
type PartyComposition struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Validate checks the composition bounds: at least one adult, no negative
// child count.
func (p PartyComposition) Validate() error {
	if p.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidRequest)
	}
	if p.Children < 0 {
		return fmt.Errorf("%w: children cannot be negative", ErrInvalidRequest)
	}
	return nil
}

// Seats returns the total number of passenger slots.
func (p PartyComposition) Seats() int {
	return p.Adults + p.Children
}

// Roster is the ordered list of passenger records for a booking. Adult slots
// always precede child slots and index 0 is the primary adult. A Roster is a
// value: Update returns a new snapshot and never mutates the receiver, so a
// previous wizard step can safely hold an older copy.
type Roster struct {
	Passengers []Passenger      `json:"passengers"`
	Party      PartyComposition `json:"party"`
}

// NewRoster builds adults+children blank records in adult-then-child order,
// pre-filling only the primary adult's email.
func NewRoster(party PartyComposition, primaryEmail string) (Roster, error) {
	if err := party.Validate(); err != nil {
		return Roster{}, err
	}

	passengers := make([]Passenger, party.Seats())
	passengers[0].Email = primaryEmail

	return Roster{
		Passengers: passengers,
		Party:      party,
	}, nil
}

// Size returns the number of passenger records.
func (r Roster) Size() int {
	return len(r.Passengers)
}

// IsChild reports whether the record at index occupies a child slot.
func (r Roster) IsChild(index int) bool {
	return index >= r.Party.Adults
}

// Update returns a new roster with exactly one field of exactly one record
// replaced. An out-of-range index or unknown field fails fast.
func (r Roster) Update(index int, field PassengerField, value string) (Roster, error) {
	if index < 0 || index >= len(r.Passengers) {
		return Roster{}, fmt.Errorf("%w: index %d, roster size %d", ErrPassengerIndex, index, len(r.Passengers))
	}
	if !field.IsValid() {
		return Roster{}, fmt.Errorf("%w: %q", ErrUnknownPassengerField, field)
	}

	passengers := make([]Passenger, len(r.Passengers))
	copy(passengers, r.Passengers)

	p := &passengers[index]
	switch field {
	case FieldTitle:
		p.Title = value
	case FieldFirstName:
		p.FirstName = value
	case FieldLastName:
		p.LastName = value
	case FieldGender:
		p.Gender = value
	case FieldDateOfBirth:
		p.DateOfBirth = value
	case FieldCountry:
		p.Country = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldPassportNumber:
		p.PassportNumber = value
	}

	return Roster{
		Passengers: passengers,
		Party:      r.Party,
	}, nil
}
