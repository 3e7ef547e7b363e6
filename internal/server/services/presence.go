package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/realtime"
	"github.com/google/uuid"
)

const minHeartbeat = time.Second

// PresenceService announces who is connected.
type PresenceService struct {
	registry  realtime.Registry
	broker    realtime.Broker
	logger    logging.Logger
	heartbeat time.Duration
	now       func() time.Time
}

// NewPresenceService builds the service. Sessions are refreshed three times
// per ttl.
func NewPresenceService(registry realtime.Registry, broker realtime.Broker, logger logging.Logger, ttl time.Duration) *PresenceService {
	hb := ttl / 3
	if hb < minHeartbeat {
		hb = minHeartbeat
	}
	return &PresenceService{
		registry:  registry,
		broker:    broker,
		logger:    logger.With("module", "presence_service"),
		heartbeat: hb,
		now:       time.Now,
	}
}

// Join tracks a new session for actor and returns a channel of online-user
// snapshots: one right away and one after every presence change. The session
// is untracked once ctx ends, and the channel is closed.
func (s *PresenceService) Join(ctx context.Context, actor auth.Actor) (<-chan []models.OnlineUser, error) {
	events, err := s.broker.Subscribe(ctx, realtime.TopicPresence)
	if err != nil {
		return nil, fmt.Errorf("error subscribing to presence: %w", err)
	}

	sessionID := uuid.NewString()
	u := models.OnlineUser{ID: actor.ID, Name: actor.DisplayName(), OnlineAt: s.now().UTC()}
	if err := s.registry.Track(ctx, sessionID, u); err != nil {
		return nil, fmt.Errorf("error tracking presence: %w", err)
	}
	s.publish(ctx, realtime.PresenceJoin, actor.ID)

	out := make(chan []models.OnlineUser, 1)
	go s.run(ctx, sessionID, u, events, out)
	return out, nil
}

func (s *PresenceService) run(ctx context.Context, sessionID string, u models.OnlineUser, events <-chan []byte, out chan<- []models.OnlineUser) {
	defer close(out)
	defer func() {
		// ctx is already done here
		cleanup := context.WithoutCancel(ctx)
		if err := s.registry.Untrack(cleanup, sessionID); err != nil {
			s.logger.Warn(cleanup, "presence untrack failed", "session", sessionID, "error", err)
		}
		s.publish(cleanup, realtime.PresenceLeave, u.ID)
	}()

	push := func() bool {
		snap, err := s.registry.Snapshot(ctx)
		if err != nil {
			s.logger.Warn(ctx, "presence snapshot failed", "error", err)
			return true
		}
		select {
		case out <- snap:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(s.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx, sessionID, u)
		case _, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return
				}
				// the broker dropped a lagging subscription
				next, err := s.broker.Subscribe(ctx, realtime.TopicPresence)
				if err != nil {
					s.logger.Warn(ctx, "presence resubscribe failed", "session", sessionID, "error", err)
					return
				}
				events = next
			}
			if !push() {
				return
			}
		}
	}
}

// refresh keeps the session alive. A session that expired while the stream
// was still open, for example after a stalled heartbeat, is tracked again
// and announced so every open stream picks it back up.
func (s *PresenceService) refresh(ctx context.Context, sessionID string, u models.OnlineUser) {
	err := s.registry.Refresh(ctx, sessionID)
	if err == nil {
		return
	}
	if !errors.Is(err, realtime.ErrSessionExpired) {
		s.logger.Warn(ctx, "presence refresh failed", "session", sessionID, "error", err)
		return
	}

	s.logger.Info(ctx, "presence session expired, tracking again", "session", sessionID, "user", u.ID)
	if err := s.registry.Track(ctx, sessionID, u); err != nil {
		s.logger.Warn(ctx, "presence retrack failed", "session", sessionID, "error", err)
		return
	}
	s.publish(ctx, realtime.PresenceJoin, u.ID)
}

func (s *PresenceService) publish(ctx context.Context, kind, userID string) {
	payload, err := realtime.EncodePresence(realtime.PresenceEvent{Kind: kind, UserID: userID})
	if err == nil {
		err = s.broker.Publish(ctx, realtime.TopicPresence, payload)
	}
	if err != nil {
		s.logger.Warn(ctx, "presence publish failed", "kind", kind, "error", err)
	}
}

// Snapshot returns the users online now.
func (s *PresenceService) Snapshot(ctx context.Context) ([]models.OnlineUser, error) {
	snap, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading presence: %w", err)
	}
	return snap, nil
}
