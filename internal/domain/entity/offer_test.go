package entity

import (
	"testing"

	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffer(t *testing.T) *Offer {
	t.Helper()

	return NewOffer(uuid.New(), "Free groceries", "Leftover produce every Friday", nil, nil)
}

func TestNewOffer_StartsWaitingAndActive(t *testing.T) {
	offer := newTestOffer(t)

	assert.Equal(t, StatusWaiting, offer.Status)
	assert.True(t, offer.Active)
	assert.Empty(t, offer.PossibleHelpedUsers)
	assert.Empty(t, offer.HelpedUserIDs)
}

func TestAddPossibleHelpedUser_RejectsOwner(t *testing.T) {
	offer := newTestOffer(t)

	err := offer.AddPossibleHelpedUser(offer.OwnerID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnOffer)
}

func TestAddPossibleHelpedUser_RejectsDuplicates(t *testing.T) {
	offer := newTestOffer(t)
	candidate := uuid.New()

	require.NoError(t, offer.AddPossibleHelpedUser(candidate))
	err := offer.AddPossibleHelpedUser(candidate)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPossibleHelpedUser)
}

func TestAddPossibleHelpedUser_RejectsUserAlreadyHelped(t *testing.T) {
	offer := newTestOffer(t)
	candidate := uuid.New()

	require.NoError(t, offer.AddPossibleHelpedUser(candidate))
	require.NoError(t, offer.ChooseHelpedUser(candidate))

	err := offer.AddPossibleHelpedUser(candidate)
	assert.ErrorIs(t, err, domainerrors.ErrOfferTaken)
}

func TestChooseHelpedUser_MovesCandidateIntoHelpedList(t *testing.T) {
	offer := newTestOffer(t)
	candidate := uuid.New()

	require.NoError(t, offer.AddPossibleHelpedUser(candidate))
	require.NoError(t, offer.ChooseHelpedUser(candidate))

	assert.Contains(t, offer.HelpedUserIDs, candidate)
	assert.NotContains(t, offer.PossibleHelpedUsers, candidate)
	assert.Equal(t, StatusOnGoing, offer.Status)
}

func TestChooseHelpedUser_RejectsNonCandidate(t *testing.T) {
	offer := newTestOffer(t)

	err := offer.ChooseHelpedUser(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotPossibleHelpedUser)
}

func TestChooseHelpedUser_AcceptsSeveralUsers(t *testing.T) {
	offer := newTestOffer(t)
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, offer.AddPossibleHelpedUser(first))
	require.NoError(t, offer.AddPossibleHelpedUser(second))
	require.NoError(t, offer.ChooseHelpedUser(first))
	require.NoError(t, offer.ChooseHelpedUser(second))

	assert.Len(t, offer.HelpedUserIDs, 2)
	// Status only transitions once, on the first acceptance.
	assert.Equal(t, StatusOnGoing, offer.Status)
}

func TestOfferFinish_ClosesAndDeactivates(t *testing.T) {
	offer := newTestOffer(t)

	offer.Finish()

	assert.Equal(t, StatusFinished, offer.Status)
	assert.False(t, offer.Active)
	assert.NotNil(t, offer.FinishedAt)
}
