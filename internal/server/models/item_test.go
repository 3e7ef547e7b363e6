package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "conference", "review", "approved", "delivered"} {
		got, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), got)
	}

	got, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)

	_, err = ParseStatus("archived")
	require.Error(t, err)
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	s := Statuses()
	require.Len(t, s, 6)
	s[0] = "mutated"
	assert.Equal(t, StatusPending, Statuses()[0])
}

func TestParseTaskStatus(t *testing.T) {
	got, err := ParseTaskStatus("blocked")
	require.NoError(t, err)
	assert.Equal(t, TaskBlocked, got)

	got, err = ParseTaskStatus("")
	require.NoError(t, err)
	assert.Equal(t, TaskPending, got)

	_, err = ParseTaskStatus("done")
	require.Error(t, err)
}

func TestChatMessage_VisibleTo(t *testing.T) {
	bruno := "bruno"
	public := &ChatMessage{SenderID: "ana"}
	private := &ChatMessage{SenderID: "ana", RecipientID: &bruno}

	assert.True(t, public.IsBroadcast())
	assert.True(t, public.VisibleTo("carla"))

	assert.False(t, private.IsBroadcast())
	assert.True(t, private.VisibleTo("ana"))
	assert.True(t, private.VisibleTo("bruno"))
	assert.False(t, private.VisibleTo("carla"))
}
