package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_CaseInsensitive(t *testing.T) {
	status, err := ParseStatus("WaItInG")
	require.NoError(t, err)
	assert.Equal(t, StatusWaiting, status)

	status, err = ParseStatus("  on_going ")
	require.NoError(t, err)
	assert.Equal(t, StatusOnGoing, status)
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseStatusList_FailsOnFirstUnknown(t *testing.T) {
	_, err := ParseStatusList([]string{"waiting", "bogus", "finished"})
	assert.ErrorIs(t, err, ErrUnknownStatus)

	statuses, err := ParseStatusList([]string{"helper_finished", "owner_finished"})
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusHelperFinished, StatusOwnerFinished}, statuses)
}
