package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/realtime"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"golang.org/x/time/rate"
)

type ChatConfig struct {
	HistoryLimit int
	// RatePerSecond <= 0 disables the per-sender limit.
	RatePerSecond float64
	Burst         int
}

// ChatService stores chat messages and fans them out through a broker.
type ChatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	broker      realtime.Broker
	logger      logging.Logger
	cfg         ChatConfig
	now         func() time.Time

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewChatService(db *sql.DB, m repomanager.RepositoryManager, broker realtime.Broker, logger logging.Logger, cfg ChatConfig) *ChatService {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}
	return &ChatService{
		db:          db,
		repomanager: m,
		broker:      broker,
		logger:      logger.With("module", "chat_service"),
		cfg:         cfg,
		now:         time.Now,
		limiters:    make(map[string]*rate.Limiter),
	}
}

func (s *ChatService) allow(senderID string) bool {
	if s.cfg.RatePerSecond <= 0 {
		return true
	}
	s.mu.Lock()
	l, ok := s.limiters[senderID]
	if !ok {
		burst := s.cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		l = rate.NewLimiter(rate.Limit(s.cfg.RatePerSecond), burst)
		s.limiters[senderID] = l
	}
	s.mu.Unlock()
	return l.Allow()
}

// Send stores a message from actor and publishes it. An empty recipientID
// broadcasts.
func (s *ChatService) Send(ctx context.Context, actor auth.Actor, text, recipientID string) (*models.ChatMessage, error) {
	text, err := requireText("message", text)
	if err != nil {
		return nil, err
	}
	if !s.allow(actor.ID) {
		return nil, fmt.Errorf("%w: too many messages", common.ErrorRateLimited)
	}

	msg := &models.ChatMessage{
		Text:        text,
		Author:      actor.DisplayName(),
		SenderID:    actor.ID,
		RecipientID: trimOptional(&recipientID),
		Timestamp:   s.now(),
	}

	stored, err := s.repomanager.ChatMessages(s.db).Create(ctx, msg)
	if err != nil {
		s.logger.Error(ctx, "chat message insert failed", "sender", actor.ID, "error", err)
		return nil, fmt.Errorf("error saving message: %w", err)
	}

	// the message is already stored; subscribers that miss it get it
	// from History when they reseed
	payload, err := realtime.EncodeMessage(stored)
	if err == nil {
		err = s.broker.Publish(ctx, realtime.TopicChatMessages, payload)
	}
	if err != nil {
		s.logger.Warn(ctx, "chat message publish failed", "id", stored.ID, "error", err)
	}

	s.logger.Debug(ctx, "chat message stored", "id", stored.ID, "broadcast", stored.IsBroadcast())
	return stored, nil
}

// History returns the latest messages visible to actor, oldest first.
func (s *ChatService) History(ctx context.Context, actor auth.Actor) ([]*models.ChatMessage, error) {
	recent, err := s.repomanager.ChatMessages(s.db).RecentVisibleTo(ctx, actor.ID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading chat history: %w", err)
	}
	return recent, nil
}

// Subscribe delivers every message published after the call that actor may
// see. The channel closes when ctx ends. When the broker drops a lagging
// subscription, Subscribe joins again and replays History, so the receiver
// must skip ids it has already seen.
func (s *ChatService) Subscribe(ctx context.Context, actor auth.Actor) (<-chan *models.ChatMessage, error) {
	in, err := s.broker.Subscribe(ctx, realtime.TopicChatMessages)
	if err != nil {
		return nil, fmt.Errorf("error subscribing to chat: %w", err)
	}

	out := make(chan *models.ChatMessage)
	go func() {
		defer close(out)

		send := func(m *models.ChatMessage) bool {
			select {
			case out <- m:
				return true
			case <-ctx.Done():
				return false
			}
		}

		sub := in
		for {
			for payload := range sub {
				m, err := realtime.DecodeMessage(payload)
				if err != nil {
					s.logger.Warn(ctx, "bad chat payload", "error", err)
					continue
				}
				if !m.VisibleTo(actor.ID) {
					continue
				}
				if !send(m) {
					return
				}
			}
			if ctx.Err() != nil {
				return
			}

			s.logger.Warn(ctx, "chat subscription lagged, resubscribing", "user", actor.ID)
			next, err := s.broker.Subscribe(ctx, realtime.TopicChatMessages)
			if err != nil {
				s.logger.Warn(ctx, "chat resubscribe failed", "user", actor.ID, "error", err)
				return
			}
			sub = next

			missed, err := s.History(ctx, actor)
			if err != nil {
				s.logger.Warn(ctx, "chat replay failed", "user", actor.ID, "error", err)
				continue
			}
			for _, m := range missed {
				if !send(m) {
					return
				}
			}
		}
	}()
	return out, nil
}
