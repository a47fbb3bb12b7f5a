package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessage_Kind(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	broadcast := NewMessage("lobby", "alice", "", "hi", at)
	unicast := NewMessage("lobby", "alice", "bob", "psst", at)

	req.Equal(Broadcast, broadcast.Kind)
	req.True(broadcast.IsBroadcast())
	req.Equal(Unicast, unicast.Kind)
	req.False(unicast.IsBroadcast())
	req.NotEqual(broadcast.ID, unicast.ID)
}

func TestMessage_Visibility(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	toBob := NewMessage("lobby", "alice", "bob", "psst", at)
	req.True(toBob.AddressedTo("bob"))
	req.False(toBob.AddressedTo("carol"))
	req.True(toBob.VisibleTo("bob"))
	req.False(toBob.VisibleTo("alice"))

	all := NewMessage("lobby", "alice", "", "hi", at)
	req.True(all.VisibleTo("bob"))
	req.False(all.VisibleTo("alice"))
}

func TestMessage_Render(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 999, time.UTC)

	req.Equal("[2024-05-01 10:00:00] alice -> All: hi", NewMessage("lobby", "alice", "", "hi", at).Render())
	req.Equal("[2024-05-01 10:00:00] alice -> bob: psst", NewMessage("lobby", "alice", "bob", "psst", at).Render())
	req.Equal("[2024-05-01 10:00:00] System -> All: bob joined the room", JoinedNotice("lobby", "bob", at).Render())
	req.Equal("bob left the room", LeftNotice("lobby", "bob", at).Content)
}

func TestSendMessageCommand_IsExit(t *testing.T) {
	req := require.New(t)

	req.True(SendMessageCommand{Content: "!exit"}.IsExit())
	req.False(SendMessageCommand{Content: "!exit now"}.IsExit())
}
