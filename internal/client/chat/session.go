// Package chat holds the terminal client's chat state: the message list fed
// by the chat subscription, the online list fed by presence snapshots, the
// active conversation and the unread counter.
package chat

import (
	"sort"
	"sync"

	"github.com/dmitrijs2005/mdterp/internal/audience"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
)

// Session is shared by the stream goroutines and the REPL.
type Session struct {
	mu       sync.Mutex
	me       string
	open     bool
	peer     string
	messages []*pb.ChatMessage
	seen     map[string]bool
	online   map[string]*pb.OnlineUser
	unread   int
}

func NewSession(me string) *Session {
	return &Session{
		me:     me,
		seen:   make(map[string]bool),
		online: make(map[string]*pb.OnlineUser),
	}
}

// Me returns the id of the signed-in profile.
func (s *Session) Me() string {
	return s.me
}

// Seed replaces the message list with history loaded at start-up. It never
// touches the unread counter.
func (s *Session) Seed(history []*pb.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = s.messages[:0]
	s.seen = make(map[string]bool, len(history))
	for _, m := range history {
		s.appendLocked(m)
	}
}

func (s *Session) appendLocked(m *pb.ChatMessage) bool {
	if m == nil || !audience.Visible(m.GetSenderId(), m.GetRecipientId(), s.me) {
		return false
	}
	if m.GetId() != "" {
		if s.seen[m.GetId()] {
			return false
		}
		s.seen[m.GetId()] = true
	}
	s.messages = append(s.messages, m)
	return true
}

// Receive appends a pushed message and reports whether it raised the unread
// counter. Duplicates and messages the profile may not see are ignored.
func (s *Session) Receive(m *pb.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.appendLocked(m) {
		return false
	}
	if s.open || !audience.Notifies(m.GetSenderId(), m.GetRecipientId(), s.me) {
		return false
	}
	s.unread++
	return true
}

// Open shows the panel and clears the unread counter.
func (s *Session) Open() {
	s.mu.Lock()
	s.open = true
	s.unread = 0
	s.mu.Unlock()
}

func (s *Session) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Session) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// SetPeer selects the private conversation with peer; "" selects the
// general channel.
func (s *Session) SetPeer(peer string) {
	s.mu.Lock()
	s.peer = peer
	s.mu.Unlock()
}

func (s *Session) Peer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer
}

func (s *Session) inViewLocked(m *pb.ChatMessage) bool {
	if s.peer == "" {
		return audience.IsBroadcast(m.GetRecipientId())
	}
	return audience.Between(m.GetSenderId(), m.GetRecipientId(), s.me, s.peer)
}

// InView reports whether m belongs to the active conversation.
func (s *Session) InView(m *pb.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inViewLocked(m)
}

// View returns the messages of the active conversation in arrival order.
func (s *Session) View() []*pb.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*pb.ChatMessage, 0, len(s.messages))
	for _, m := range s.messages {
		if s.inViewLocked(m) {
			out = append(out, m)
		}
	}
	return out
}

// ApplySnapshot replaces the online list with snap.
func (s *Session) ApplySnapshot(snap *pb.PresenceSnapshot) {
	next := make(map[string]*pb.OnlineUser)
	if snap != nil {
		for _, u := range snap.GetUsers() {
			if u != nil {
				next[u.GetId()] = u
			}
		}
	}

	s.mu.Lock()
	s.online = next
	s.mu.Unlock()
}

// Online lists the connected users ordered by name.
func (s *Session) Online() []*pb.OnlineUser {
	s.mu.Lock()
	out := make([]*pb.OnlineUser, 0, len(s.online))
	for _, u := range s.online {
		out = append(out, u)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].GetName() != out[j].GetName() {
			return out[i].GetName() < out[j].GetName()
		}
		return out[i].GetId() < out[j].GetId()
	})
	return out
}

// IsOnline reports whether id appears in the latest snapshot.
func (s *Session) IsOnline(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.online[id]
	return ok
}
