package realtime

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
)

// ErrSessionExpired is returned by Refresh when the session is no longer
// tracked and has to be tracked again.
var ErrSessionExpired = errors.New("presence session expired")

// Registry tracks open presence sessions. One user may hold several.
type Registry interface {
	Track(ctx context.Context, sessionID string, u models.OnlineUser) error
	// Refresh extends a session's lifetime where the registry expires them.
	Refresh(ctx context.Context, sessionID string) error
	Untrack(ctx context.Context, sessionID string) error
	// Snapshot returns the online users, one entry per user id.
	Snapshot(ctx context.Context) ([]models.OnlineUser, error)
}

// Dedupe collapses sessions to one entry per user id, keeping the earliest
// OnlineAt, ordered by name then id.
func Dedupe(sessions []models.OnlineUser) []models.OnlineUser {
	byID := make(map[string]models.OnlineUser, len(sessions))
	for _, u := range sessions {
		if cur, ok := byID[u.ID]; !ok || u.OnlineAt.Before(cur.OnlineAt) {
			byID[u.ID] = u
		}
	}

	out := make([]models.OnlineUser, 0, len(byID))
	for _, u := range byID {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b models.OnlineUser) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

type MemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]models.OnlineUser
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]models.OnlineUser)}
}

func (r *MemoryRegistry) Track(_ context.Context, sessionID string, u models.OnlineUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = u
	return nil
}

// Refresh is a no-op: memory sessions live until untracked.
func (r *MemoryRegistry) Refresh(context.Context, string) error { return nil }

func (r *MemoryRegistry) Untrack(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *MemoryRegistry) Snapshot(context.Context) ([]models.OnlineUser, error) {
	r.mu.Lock()
	all := make([]models.OnlineUser, 0, len(r.sessions))
	for _, u := range r.sessions {
		all = append(all, u)
	}
	r.mu.Unlock()
	return Dedupe(all), nil
}
