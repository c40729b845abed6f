package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	tests := []struct {
		name         string
		party        PartyComposition
		primaryEmail string
		wantSize     int
		wantErr      bool
	}{
		{
			name:         "single adult",
			party:        PartyComposition{Adults: 1, Children: 0},
			primaryEmail: "lead@example.com",
			wantSize:     1,
		},
		{
			name:         "two adults one child",
			party:        PartyComposition{Adults: 2, Children: 1},
			primaryEmail: "lead@example.com",
			wantSize:     3,
		},
		{
			name:         "adults only",
			party:        PartyComposition{Adults: 4, Children: 0},
			primaryEmail: "lead@example.com",
			wantSize:     4,
		},
		{
			name:    "zero adults is rejected",
			party:   PartyComposition{Adults: 0, Children: 2},
			wantErr: true,
		},
		{
			name:    "negative children is rejected",
			party:   PartyComposition{Adults: 1, Children: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster, err := NewRoster(tt.party, tt.primaryEmail)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, roster.Size())

			// Only the primary adult carries the pre-filled email.
			assert.Equal(t, tt.primaryEmail, roster.Passengers[0].Email)
			for i := 1; i < roster.Size(); i++ {
				assert.Empty(t, roster.Passengers[i].Email, "index %d", i)
			}

			// Every other field starts blank.
			for i, p := range roster.Passengers {
				assert.Empty(t, p.Title, "index %d", i)
				assert.Empty(t, p.FirstName, "index %d", i)
				assert.Empty(t, p.LastName, "index %d", i)
				assert.Empty(t, p.PassportNumber, "index %d", i)
			}
		})
	}
}

func TestRoster_AdultsPrecedeChildren(t *testing.T) {
	roster, err := NewRoster(PartyComposition{Adults: 2, Children: 2}, "lead@example.com")
	require.NoError(t, err)

	assert.False(t, roster.IsChild(0))
	assert.False(t, roster.IsChild(1))
	assert.True(t, roster.IsChild(2))
	assert.True(t, roster.IsChild(3))
}

func TestRoster_Update(t *testing.T) {
	roster, err := NewRoster(PartyComposition{Adults: 2, Children: 1}, "lead@example.com")
	require.NoError(t, err)

	updated, err := roster.Update(1, FieldFirstName, "Amara")
	require.NoError(t, err)

	// Exactly one field of exactly one record changed.
	assert.Equal(t, "Amara", updated.Passengers[1].FirstName)
	assert.Empty(t, updated.Passengers[0].FirstName)
	assert.Empty(t, updated.Passengers[2].FirstName)

	// The original roster snapshot is untouched.
	assert.Empty(t, roster.Passengers[1].FirstName)
}

func TestRoster_Update_AllFields(t *testing.T) {
	roster, err := NewRoster(PartyComposition{Adults: 1, Children: 0}, "")
	require.NoError(t, err)

	fields := map[PassengerField]func(Passenger) string{
		FieldTitle:          func(p Passenger) string { return p.Title },
		FieldFirstName:      func(p Passenger) string { return p.FirstName },
		FieldLastName:       func(p Passenger) string { return p.LastName },
		FieldGender:         func(p Passenger) string { return p.Gender },
		FieldDateOfBirth:    func(p Passenger) string { return p.DateOfBirth },
		FieldCountry:        func(p Passenger) string { return p.Country },
		FieldEmail:          func(p Passenger) string { return p.Email },
		FieldPhone:          func(p Passenger) string { return p.Phone },
		FieldPassportNumber: func(p Passenger) string { return p.PassportNumber },
	}

	for field, get := range fields {
		updated, err := roster.Update(0, field, "value")
		require.NoError(t, err, "field %s", field)
		assert.Equal(t, "value", get(updated.Passengers[0]), "field %s", field)
	}
}

func TestRoster_Update_Preconditions(t *testing.T) {
	roster, err := NewRoster(PartyComposition{Adults: 1, Children: 1}, "lead@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		index   int
		field   PassengerField
		wantErr error
	}{
		{name: "negative index", index: -1, field: FieldTitle, wantErr: ErrPassengerIndex},
		{name: "index past end", index: 2, field: FieldTitle, wantErr: ErrPassengerIndex},
		{name: "unknown field", index: 0, field: PassengerField("shoeSize"), wantErr: ErrUnknownPassengerField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roster.Update(tt.index, tt.field, "x")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestPartyComposition_Seats(t *testing.T) {
	assert.Equal(t, 1, PartyComposition{Adults: 1}.Seats())
	assert.Equal(t, 5, PartyComposition{Adults: 2, Children: 3}.Seats())
}
