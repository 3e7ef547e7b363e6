package audience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisible_BroadcastSeenByEveryone(t *testing.T) {
	for _, viewer := range []string{"ana", "bruno", "carla", ""} {
		assert.True(t, Visible("ana", "", viewer), "viewer %q", viewer)
	}
}

func TestVisible_PrivateOnlyParticipants(t *testing.T) {
	assert.True(t, Visible("ana", "bruno", "ana"))
	assert.True(t, Visible("ana", "bruno", "bruno"))
	assert.False(t, Visible("ana", "bruno", "carla"))
	assert.False(t, Visible("ana", "bruno", ""))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between("ana", "bruno", "ana", "bruno"))
	assert.True(t, Between("bruno", "ana", "ana", "bruno"))
	assert.False(t, Between("ana", "carla", "ana", "bruno"))
	assert.False(t, Between("ana", "", "ana", "bruno"))
}

func TestNotifies(t *testing.T) {
	assert.True(t, Notifies("bruno", "", "ana"))
	assert.True(t, Notifies("bruno", "ana", "ana"))
	assert.False(t, Notifies("ana", "", "ana"))
	assert.False(t, Notifies("bruno", "carla", "ana"))
}
