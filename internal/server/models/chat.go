package models

import (
	"time"

	"github.com/dmitrijs2005/mdterp/internal/audience"
)

// ChatMessage is append-only. A nil RecipientID is a broadcast.
type ChatMessage struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	SenderID    string    `json:"sender_id"`
	RecipientID *string   `json:"recipient_id"`
	Timestamp   time.Time `json:"timestamp"`
}

func (m *ChatMessage) recipient() string {
	if m.RecipientID == nil {
		return ""
	}
	return *m.RecipientID
}

func (m *ChatMessage) IsBroadcast() bool {
	return audience.IsBroadcast(m.recipient())
}

// VisibleTo reports whether userID is in the audience of m.
func (m *ChatMessage) VisibleTo(userID string) bool {
	return audience.Visible(m.SenderID, m.recipient(), userID)
}

// OnlineUser is an announced presence. It is never persisted.
type OnlineUser struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	OnlineAt time.Time `json:"online_at"`
}
