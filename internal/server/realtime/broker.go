// Package realtime fans chat messages and presence changes out to open
// streams. Brokers and registries come in two flavours: in-process for a
// single server, and Redis-backed for several.
package realtime

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

const (
	TopicChatMessages = "chat_messages"
	TopicPresence     = "presence"
)

var ErrClosed = errors.New("broker closed")

// Broker is a topic-based publish/subscribe bus. Delivery is at most once.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe returns a channel that receives every payload published on
	// topic after the call returns. The channel is closed when ctx ends, and
	// also when the subscriber falls a full buffer behind. A subscriber that
	// sees its channel close while ctx is still live has missed payloads and
	// must subscribe again.
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
}

// PresenceEvent is published on TopicPresence when a session joins or leaves.
type PresenceEvent struct {
	Kind   string `json:"kind"`
	UserID string `json:"user_id"`
}

const (
	PresenceJoin  = "join"
	PresenceLeave = "leave"
)

func EncodeMessage(m *models.ChatMessage) ([]byte, error) {
	return json.Marshal(m)
}

func DecodeMessage(b []byte) (*models.ChatMessage, error) {
	m := &models.ChatMessage{}
	if err := json.Unmarshal(b, m); err != nil {
		return nil, err
	}
	return m, nil
}

func EncodePresence(e PresenceEvent) ([]byte, error) {
	return json.Marshal(e)
}

func DecodePresence(b []byte) (PresenceEvent, error) {
	var e PresenceEvent
	err := json.Unmarshal(b, &e)
	return e, err
}
