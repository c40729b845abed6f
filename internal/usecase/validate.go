package usecase

import "github.com/skyway/travel-booking-system/internal/domain"

// requiredFields are checked for every passenger record, in this order.
var requiredFields = []struct {
	field domain.PassengerField
	get   func(domain.Passenger) string
}{
	{domain.FieldTitle, func(p domain.Passenger) string { return p.Title }},
	{domain.FieldFirstName, func(p domain.Passenger) string { return p.FirstName }},
	{domain.FieldLastName, func(p domain.Passenger) string { return p.LastName }},
	{domain.FieldGender, func(p domain.Passenger) string { return p.Gender }},
	{domain.FieldDateOfBirth, func(p domain.Passenger) string { return p.DateOfBirth }},
	{domain.FieldCountry, func(p domain.Passenger) string { return p.Country }},
}

// ValidateRoster enforces the per-passenger completeness rules and returns
// the first violation found, or nil when every record passes.
//
// Validation is fail-fast in ascending index order so exactly one error is
// surfaced per attempt. For each record the checks run in order: the six
// required fields, then the primary contact email (index 0 only), then the
// passport number (adult slots only; child records are exempt).
func ValidateRoster(roster domain.Roster) *domain.RosterViolation {
	for i, p := range roster.Passengers {
		for _, rf := range requiredFields {
			if rf.get(p) == "" {
				return &domain.RosterViolation{
					Kind:           domain.ViolationMissingRequiredField,
					PassengerIndex: i,
					Field:          rf.field,
				}
			}
		}

		if i == 0 && p.Email == "" {
			return &domain.RosterViolation{
				Kind:           domain.ViolationMissingPrimaryContact,
				PassengerIndex: 0,
			}
		}

		if !roster.IsChild(i) && p.PassportNumber == "" {
			return &domain.RosterViolation{
				Kind:           domain.ViolationMissingPassport,
				PassengerIndex: i,
			}
		}
	}

	return nil
}
