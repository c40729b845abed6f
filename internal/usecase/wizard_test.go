package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyway/travel-booking-system/internal/domain"
)

var testUser = domain.Identity{Email: "john.doe@example.com"}

func testFlight() domain.Flight {
	return domain.Flight{
		ID:            "1",
		Airline:       "Singapore Airlines",
		AirlineCode:   "SQ",
		DepartureTime: "12:10",
		ArrivalTime:   "15:30",
		Duration:      domain.NewDurationInfo(210),
		Price:         110,
		Class:         domain.ClassBusiness,
		Refundable:    true,
	}
}

// newTestWizard builds a wizard at the Details step with a mock gateway.
func newTestWizard(t *testing.T, ctrl *gomock.Controller, party domain.PartyComposition) (*Wizard, *domain.MockSubmissionGateway) {
	t.Helper()

	gateway := domain.NewMockSubmissionGateway(ctrl)
	w, err := NewWizard(testFlight(), party, testUser, gateway, DefaultTaxRate, time.Now())
	require.NoError(t, err)
	return w, gateway
}

// fillRoster completes every roster record so validation passes.
func fillRoster(t *testing.T, w *Wizard) {
	t.Helper()

	booking := w.Booking()
	for i := range booking.Roster.Passengers {
		p := completePassenger()
		require.NoError(t, w.UpdatePassenger(i, domain.FieldTitle, p.Title))
		require.NoError(t, w.UpdatePassenger(i, domain.FieldFirstName, p.FirstName))
		require.NoError(t, w.UpdatePassenger(i, domain.FieldLastName, p.LastName))
		require.NoError(t, w.UpdatePassenger(i, domain.FieldGender, p.Gender))
		require.NoError(t, w.UpdatePassenger(i, domain.FieldDateOfBirth, p.DateOfBirth))
		require.NoError(t, w.UpdatePassenger(i, domain.FieldCountry, p.Country))
		if !booking.Roster.IsChild(i) {
			require.NoError(t, w.UpdatePassenger(i, domain.FieldPassportNumber, p.PassportNumber))
		}
	}
}

// advanceToPayment drives a freshly created wizard to the Payment step.
func advanceToPayment(t *testing.T, w *Wizard) {
	t.Helper()

	fillRoster(t, w)
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	require.Equal(t, domain.StepPayment, w.Step())
}

func TestNewWizard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 2, Children: 1})

	booking := w.Booking()
	assert.Equal(t, domain.StepDetails, booking.Step)
	assert.Len(t, booking.Roster.Passengers, 3)
	assert.Equal(t, testUser.Email, booking.Roster.Passengers[0].Email)
	assert.False(t, booking.TermsAccepted)
	assert.Nil(t, booking.Confirmation)
}

func TestNewWizard_RequiresAuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := domain.NewMockSubmissionGateway(ctrl)

	_, err := NewWizard(testFlight(), domain.PartyComposition{Adults: 1}, domain.Identity{}, gateway, DefaultTaxRate, time.Now())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestNewWizard_RejectsInvalidParty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := domain.NewMockSubmissionGateway(ctrl)

	_, err := NewWizard(testFlight(), domain.PartyComposition{Adults: 0}, testUser, gateway, DefaultTaxRate, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestWizard_Fare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 2, Children: 1})

	fare := w.Fare()
	assert.InDelta(t, 302.5, fare.Subtotal, 1e-9)
	assert.InDelta(t, 45.375, fare.Taxes, 1e-9)
	assert.InDelta(t, 347.875, fare.Total, 1e-9)
}

func TestWizard_AdvanceBlockedByIncompleteRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})

	err := w.Advance()

	var violation *domain.RosterViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domain.ViolationMissingRequiredField, violation.Kind)
	assert.Equal(t, domain.StepDetails, w.Step())
}

func TestWizard_AdvanceHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 2, Children: 1})
	fillRoster(t, w)

	require.NoError(t, w.Advance())
	assert.Equal(t, domain.StepReview, w.Step())

	// Review to Payment needs no further validation.
	require.NoError(t, w.Advance())
	assert.Equal(t, domain.StepPayment, w.Step())

	err := w.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StepPayment, w.Step())
}

func TestWizard_Back(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)

	exited, err := w.Back()
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, domain.StepReview, w.Step())

	exited, err = w.Back()
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, domain.StepDetails, w.Step())

	// Back from Details signals wizard exit; the step does not change.
	exited, err = w.Back()
	require.NoError(t, err)
	assert.True(t, exited)
	assert.Equal(t, domain.StepDetails, w.Step())
}

func TestWizard_BackPreservesEnteredData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	fillRoster(t, w)
	require.NoError(t, w.Advance())

	_, err := w.Back()
	require.NoError(t, err)

	assert.Equal(t, "John", w.Booking().Roster.Passengers[0].FirstName)
	assert.Nil(t, ValidateRoster(w.Booking().Roster))
}

func TestWizard_RosterLockedAtPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)

	err := w.UpdatePassenger(0, domain.FieldFirstName, "Jane")
	assert.ErrorIs(t, err, domain.ErrRosterLocked)

	// Going back to Review unlocks editing again via Details.
	_, err = w.Back()
	require.NoError(t, err)
	_, err = w.Back()
	require.NoError(t, err)
	assert.NoError(t, w.UpdatePassenger(0, domain.FieldFirstName, "Jane"))
}

func TestWizard_SubmitGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejects submission before payment step", func(t *testing.T) {
		w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})

		_, err := w.Submit(context.Background())
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("rejects submission without accepted terms", func(t *testing.T) {
		w, _ := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
		advanceToPayment(t, w)

		_, err := w.Submit(context.Background())
		assert.ErrorIs(t, err, domain.ErrTermsNotAccepted)
		assert.Equal(t, domain.StepPayment, w.Step())
	})
}

func TestWizard_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 2, Children: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	want := domain.Confirmation{Reference: "SKW-20260830-0001", ProcessedAt: time.Now()}
	gateway.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.Booking) (domain.Confirmation, error) {
			assert.Equal(t, domain.StepPayment, b.Step)
			assert.True(t, b.TermsAccepted)
			assert.Len(t, b.Roster.Passengers, 3)
			return want, nil
		})

	got, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	booking := w.Booking()
	assert.Equal(t, domain.StepSubmitted, booking.Step)
	require.NotNil(t, booking.Confirmation)
	assert.Equal(t, want.Reference, booking.Confirmation.Reference)
	assert.False(t, booking.SubmissionInProgress)
}

func TestWizard_SubmitFailureReturnsToPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	gateway.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(domain.Confirmation{}, errors.New("gateway timeout"))

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)

	// Everything entered survives the failure so the user can retry.
	booking := w.Booking()
	assert.Equal(t, domain.StepPayment, booking.Step)
	assert.True(t, booking.TermsAccepted)
	assert.Equal(t, "John", booking.Roster.Passengers[0].FirstName)
	assert.False(t, booking.SubmissionInProgress)
	assert.Nil(t, booking.Confirmation)
}

func TestWizard_SubmitRetryAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	gomock.InOrder(
		gateway.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			Return(domain.Confirmation{}, errors.New("gateway timeout")),
		gateway.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			Return(domain.Confirmation{Reference: "SKW-20260830-0002"}, nil),
	)

	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrSubmissionFailed)

	got, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SKW-20260830-0002", got.Reference)
	assert.Equal(t, domain.StepSubmitted, w.Step())
}

func TestWizard_SubmitOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	gateway.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(domain.Confirmation{Reference: "SKW-20260830-0003"}, nil).
		Times(1)

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWizard_InputRejectedWhileSubmissionInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	inFlight := make(chan struct{})
	release := make(chan struct{})
	gateway.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Booking) (domain.Confirmation, error) {
			close(inFlight)
			<-release
			return domain.Confirmation{Reference: "SKW-20260830-0004"}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := w.Submit(context.Background())
		assert.NoError(t, err)
	}()

	<-inFlight

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	err = w.UpdatePassenger(0, domain.FieldFirstName, "Jane")
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	err = w.Advance()
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	close(release)
	wg.Wait()

	assert.Equal(t, domain.StepSubmitted, w.Step())
}

func TestWizard_TerminalStateRejectsAllInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, gateway := newTestWizard(t, ctrl, domain.PartyComposition{Adults: 1})
	advanceToPayment(t, w)
	require.NoError(t, w.SetTermsAccepted(true))

	gateway.EXPECT().
		SubmitBooking(gomock.Any(), gomock.Any()).
		Return(domain.Confirmation{Reference: "SKW-20260830-0005"}, nil)

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, w.UpdatePassenger(0, domain.FieldFirstName, "Jane"), domain.ErrInvalidTransition)
	assert.ErrorIs(t, w.Advance(), domain.ErrInvalidTransition)
	assert.ErrorIs(t, w.SetTermsAccepted(false), domain.ErrInvalidTransition)

	_, err = w.Back()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
