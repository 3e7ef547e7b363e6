package realtime

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mdterp/internal/logging"
)

// DefaultBufferSize is the per-subscriber channel capacity.
const DefaultBufferSize = 64

type memorySub struct {
	ch chan []byte
}

// MemoryBroker delivers payloads to subscribers of the same process.
type MemoryBroker struct {
	mu     sync.RWMutex
	subs   map[string]map[*memorySub]struct{}
	buffer int
	logger logging.Logger
	closed bool
}

func NewMemoryBroker(buffer int, logger logging.Logger) *MemoryBroker {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &MemoryBroker{
		subs:   make(map[string]map[*memorySub]struct{}),
		buffer: buffer,
		logger: logger.With("module", "memory_broker"),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}

	var slow []*memorySub
	for s := range b.subs[topic] {
		p := make([]byte, len(payload))
		copy(p, payload)
		select {
		case s.ch <- p:
		default:
			slow = append(slow, s)
		}
	}
	b.mu.RUnlock()

	if len(slow) > 0 {
		b.logger.Warn(ctx, "subscriber buffer full, closing subscription", "topic", topic, "count", len(slow))
		b.unsubscribe(topic, slow...)
	}
	return nil
}

// unsubscribe closes subs that are still registered on topic.
func (b *MemoryBroker) unsubscribe(topic string, subs ...*memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range subs {
		if _, ok := b.subs[topic][s]; ok {
			delete(b.subs[topic], s)
			close(s.ch)
		}
	}
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	s := &memorySub{ch: make(chan []byte, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*memorySub]struct{})
	}
	b.subs[topic][s] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(topic, s)
	}()

	return s.ch, nil
}

// Close closes every subscription and rejects further use.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, subs := range b.subs {
		for s := range subs {
			close(s.ch)
		}
	}
	b.subs = make(map[string]map[*memorySub]struct{})
	return nil
}
