package entity

import (
	"testing"

	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHelpRequest(t *testing.T) *HelpRequest {
	t.Helper()

	return NewHelpRequest(uuid.New(), "Move a couch", "Need two extra hands", nil, nil)
}

func TestNewHelpRequest_StartsWaitingAndActive(t *testing.T) {
	help := newTestHelpRequest(t)

	assert.Equal(t, StatusWaiting, help.Status)
	assert.True(t, help.Active)
	assert.Nil(t, help.HelperID)
	assert.Empty(t, help.PossibleHelpers)
	assert.Nil(t, help.FinishedAt)
}

func TestAddPossibleHelper_RejectsOwner(t *testing.T) {
	help := newTestHelpRequest(t)

	err := help.AddPossibleHelper(help.OwnerID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnHelpRequest)
	assert.Empty(t, help.PossibleHelpers)
}

func TestAddPossibleHelper_RejectsDuplicates(t *testing.T) {
	help := newTestHelpRequest(t)
	candidate := uuid.New()

	require.NoError(t, help.AddPossibleHelper(candidate))
	err := help.AddPossibleHelper(candidate)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPossibleHelper)
	assert.Len(t, help.PossibleHelpers, 1)
}

func TestAddPossibleHelper_RejectedOnceMatched(t *testing.T) {
	help := newTestHelpRequest(t)
	candidate := uuid.New()

	require.NoError(t, help.AddPossibleHelper(candidate))
	require.NoError(t, help.ChooseHelper(candidate))

	err := help.AddPossibleHelper(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrHelpRequestTaken)
}

func TestChooseHelper_PromotesCandidateAndClearsRoster(t *testing.T) {
	help := newTestHelpRequest(t)
	chosen := uuid.New()
	other := uuid.New()

	require.NoError(t, help.AddPossibleHelper(chosen))
	require.NoError(t, help.AddPossibleHelper(other))

	require.NoError(t, help.ChooseHelper(chosen))

	require.NotNil(t, help.HelperID)
	assert.Equal(t, chosen, *help.HelperID)
	assert.Empty(t, help.PossibleHelpers)
	assert.Equal(t, StatusOnGoing, help.Status)
}

func TestChooseHelper_RejectsNonCandidate(t *testing.T) {
	help := newTestHelpRequest(t)
	require.NoError(t, help.AddPossibleHelper(uuid.New()))

	err := help.ChooseHelper(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotPossibleHelper)
	assert.Nil(t, help.HelperID)
}

func TestChooseHelper_AtMostOneHelper(t *testing.T) {
	help := newTestHelpRequest(t)
	first := uuid.New()

	require.NoError(t, help.AddPossibleHelper(first))
	require.NoError(t, help.ChooseHelper(first))

	err := help.ChooseHelper(first)
	assert.ErrorIs(t, err, domainerrors.ErrHelpRequestTaken)
}

func matchedHelpRequest(t *testing.T) (*HelpRequest, uuid.UUID) {
	t.Helper()

	help := newTestHelpRequest(t)
	helper := uuid.New()
	require.NoError(t, help.AddPossibleHelper(helper))
	require.NoError(t, help.ChooseHelper(helper))

	return help, helper
}

func TestConfirmation_HelperThenOwnerFinishes(t *testing.T) {
	help, helper := matchedHelpRequest(t)

	require.NoError(t, help.ConfirmByHelper(helper))
	assert.Equal(t, StatusHelperFinished, help.Status)
	assert.True(t, help.Active)

	require.NoError(t, help.ConfirmByOwner(help.OwnerID))
	assert.Equal(t, StatusFinished, help.Status)
	assert.False(t, help.Active)
	assert.NotNil(t, help.FinishedAt)
}

func TestConfirmation_OwnerThenHelperFinishes(t *testing.T) {
	help, helper := matchedHelpRequest(t)

	require.NoError(t, help.ConfirmByOwner(help.OwnerID))
	assert.Equal(t, StatusOwnerFinished, help.Status)

	require.NoError(t, help.ConfirmByHelper(helper))
	assert.Equal(t, StatusFinished, help.Status)
	assert.False(t, help.Active)
	assert.NotNil(t, help.FinishedAt)
}

func TestConfirmByHelper_RejectsNonHelper(t *testing.T) {
	help, _ := matchedHelpRequest(t)

	err := help.ConfirmByHelper(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotHelper)
}

func TestConfirmByHelper_RejectsDoubleConfirmation(t *testing.T) {
	help, helper := matchedHelpRequest(t)

	require.NoError(t, help.ConfirmByHelper(helper))
	err := help.ConfirmByHelper(helper)
	assert.ErrorIs(t, err, domainerrors.ErrHelperAlreadyConfirmed)
}

func TestConfirmByOwner_RejectsNonOwner(t *testing.T) {
	help, _ := matchedHelpRequest(t)

	err := help.ConfirmByOwner(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestConfirmByOwner_RejectsDoubleConfirmation(t *testing.T) {
	help, _ := matchedHelpRequest(t)

	require.NoError(t, help.ConfirmByOwner(help.OwnerID))
	err := help.ConfirmByOwner(help.OwnerID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerAlreadyConfirmed)
}

func TestConfirmation_RejectedAfterFinish(t *testing.T) {
	help, helper := matchedHelpRequest(t)
	require.NoError(t, help.ConfirmByHelper(helper))
	require.NoError(t, help.ConfirmByOwner(help.OwnerID))

	assert.ErrorIs(t, help.ConfirmByHelper(helper), domainerrors.ErrHelpRequestFinished)
	assert.ErrorIs(t, help.ConfirmByOwner(help.OwnerID), domainerrors.ErrHelpRequestFinished)
}

func TestDeactivate_IsIdempotent(t *testing.T) {
	help := newTestHelpRequest(t)

	help.Deactivate()
	assert.False(t, help.Active)

	help.Deactivate()
	assert.False(t, help.Active)
}
