package realtime

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisClient connects to MDT_TEST_REDIS_ADDR (default localhost:6379) and
// skips the test when nothing answers.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("MDT_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	c := redis.NewClient(&redis.Options{Addr: addr, DialTimeout: 200 * time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		t.Skip("Skipping Redis integration test: redis not available")
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisBroker_Integration(t *testing.T) {
	c := redisClient(t)
	b := NewRedisBroker(c, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := "test:" + uuid.NewString()
	ch, err := b.Subscribe(ctx, topic)
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, topic, []byte("oi")))
	assert.Equal(t, []byte("oi"), receive(t, ch))

	cancel()
	require.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestRedisBroker_ClosesSlowSubscriber(t *testing.T) {
	c := redisClient(t)
	b := NewRedisBroker(c, logging.Nop{})
	b.buffer = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := "test:" + uuid.NewString()
	ch, err := b.Subscribe(ctx, topic)
	require.NoError(t, err)

	for _, p := range []string{"1", "2", "3"} {
		require.NoError(t, b.Publish(ctx, topic, []byte(p)))
	}

	closed := false
	deadline := time.After(2 * time.Second)
	for !closed {
		select {
		case _, ok := <-ch:
			closed = !ok
		case <-deadline:
			t.Fatal("slow subscription was not closed")
		}
	}
}

func TestRedisRegistry_Integration(t *testing.T) {
	c := redisClient(t)
	r := NewRedisRegistry(c, 2*time.Second)
	ctx := context.Background()

	user := models.OnlineUser{ID: uuid.NewString(), Name: "Ana", OnlineAt: time.Now().UTC().Truncate(time.Second)}
	s1, s2 := uuid.NewString(), uuid.NewString()
	require.NoError(t, r.Track(ctx, s1, user))
	require.NoError(t, r.Track(ctx, s2, user))
	t.Cleanup(func() {
		_ = r.Untrack(ctx, s1)
		_ = r.Untrack(ctx, s2)
	})
	require.NoError(t, r.Refresh(ctx, s1))

	snap, err := r.Snapshot(ctx)
	require.NoError(t, err)
	count := 0
	for _, u := range snap {
		if u.ID == user.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)

	require.NoError(t, r.Untrack(ctx, s1))
	require.NoError(t, r.Untrack(ctx, s2))
	assert.ErrorIs(t, r.Refresh(ctx, s1), ErrSessionExpired)
}
