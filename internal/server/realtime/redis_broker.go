package realtime

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/redis/go-redis/v9"
)

// RedisBroker maps topics onto Redis PUBLISH/SUBSCRIBE channels.
type RedisBroker struct {
	client *redis.Client
	buffer int
	logger logging.Logger
}

func NewRedisBroker(client *redis.Client, logger logging.Logger) *RedisBroker {
	return &RedisBroker{client: client, buffer: DefaultBufferSize, logger: logger.With("module", "redis_broker")}
}

func (b *RedisBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := b.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", topic, err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	ps := b.client.Subscribe(ctx, topic)
	// Wait for the subscription confirmation so nothing published after
	// Subscribe returns is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", topic, err)
	}

	out := make(chan []byte, b.buffer)
	in := ps.Channel()

	go func() {
		defer close(out)
		defer ps.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
					b.logger.Warn(ctx, "subscriber buffer full, closing subscription", "topic", topic)
					return
				}
			}
		}
	}()

	return out, nil
}
