package chat

import (
	"sync"
	"testing"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id, from, to, text string) *pb.ChatMessage {
	return &pb.ChatMessage{Id: id, SenderId: from, RecipientId: to, Text: text}
}

func texts(ms []*pb.ChatMessage) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.GetText())
	}
	return out
}

func TestReceive_UnreadWhileClosed(t *testing.T) {
	s := NewSession("ana")

	assert.True(t, s.Receive(msg("1", "bob", "", "bom dia")))
	assert.True(t, s.Receive(msg("2", "bob", "ana", "oi ana")))
	assert.Equal(t, 2, s.Unread())

	s.Open()
	assert.Equal(t, 0, s.Unread())

	assert.False(t, s.Receive(msg("3", "bob", "", "ainda aí?")))
	assert.Equal(t, 0, s.Unread())
}

func TestReceive_OwnMessageDoesNotCount(t *testing.T) {
	s := NewSession("ana")

	assert.False(t, s.Receive(msg("1", "ana", "", "bom dia")))
	assert.Equal(t, 0, s.Unread())
	assert.Len(t, s.View(), 1)
}

func TestReceive_InvisibleMessageIgnored(t *testing.T) {
	s := NewSession("ana")

	assert.False(t, s.Receive(msg("1", "bob", "carla", "segredo")))
	assert.Equal(t, 0, s.Unread())

	s.SetPeer("bob")
	assert.Empty(t, s.View())
}

func TestReceive_DuplicateCountsOnce(t *testing.T) {
	s := NewSession("ana")

	m := msg("1", "bob", "", "bom dia")
	assert.True(t, s.Receive(m))
	assert.False(t, s.Receive(m))
	assert.Equal(t, 1, s.Unread())
	assert.Len(t, s.View(), 1)
}

func TestReceive_ClosedAgainCountsNewMessages(t *testing.T) {
	s := NewSession("ana")
	s.Open()
	s.Receive(msg("1", "bob", "", "a"))
	s.Close()
	s.Receive(msg("2", "bob", "", "b"))

	assert.False(t, s.IsOpen())
	assert.Equal(t, 1, s.Unread())
}

func TestView_GeneralAndPrivate(t *testing.T) {
	s := NewSession("ana")
	s.Receive(msg("1", "bob", "", "geral"))
	s.Receive(msg("2", "ana", "bob", "para bob"))
	s.Receive(msg("3", "bob", "ana", "de bob"))
	s.Receive(msg("4", "carla", "ana", "de carla"))

	assert.Equal(t, []string{"geral"}, texts(s.View()))

	s.SetPeer("bob")
	assert.Equal(t, "bob", s.Peer())
	assert.Equal(t, []string{"para bob", "de bob"}, texts(s.View()))

	s.SetPeer("carla")
	assert.Equal(t, []string{"de carla"}, texts(s.View()))
	assert.False(t, s.InView(msg("5", "bob", "", "geral")))
	assert.True(t, s.InView(msg("6", "ana", "carla", "para carla")))
}

func TestSeed_KeepsUnread(t *testing.T) {
	s := NewSession("ana")
	s.Receive(msg("1", "bob", "", "novo"))

	s.Seed([]*pb.ChatMessage{msg("0", "bob", "", "antigo"), msg("x", "bob", "carla", "privado")})

	assert.Equal(t, 1, s.Unread())
	assert.Equal(t, []string{"antigo"}, texts(s.View()))

	assert.True(t, s.Receive(msg("1", "bob", "", "novo")))
	assert.Equal(t, []string{"antigo", "novo"}, texts(s.View()))
}

func TestApplySnapshot_ReplacesOnlineList(t *testing.T) {
	s := NewSession("ana")
	s.ApplySnapshot(&pb.PresenceSnapshot{Users: []*pb.OnlineUser{{Id: "b", Name: "Bruno"}, {Id: "a", Name: "Ana"}}})

	online := s.Online()
	require.Len(t, online, 2)
	assert.Equal(t, "Ana", online[0].GetName())
	assert.True(t, s.IsOnline("b"))

	s.ApplySnapshot(&pb.PresenceSnapshot{Users: []*pb.OnlineUser{{Id: "a", Name: "Ana"}}})
	assert.False(t, s.IsOnline("b"))
	assert.Len(t, s.Online(), 1)

	s.ApplySnapshot(nil)
	assert.Empty(t, s.Online())
}

func TestSession_ConcurrentReceive(t *testing.T) {
	s := NewSession("ana")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Receive(&pb.ChatMessage{Id: string(rune('A' + i)), SenderId: "bob", Text: "x"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Unread())
	assert.Len(t, s.View(), 50)
}
