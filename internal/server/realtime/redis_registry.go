package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const presenceKeyPrefix = "presence:session:"

func presenceKey(sessionID string) string {
	return presenceKeyPrefix + sessionID
}

// RedisRegistry stores each session as a key with a TTL. Sessions whose
// server dies disappear once the TTL lapses without a Refresh.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisRegistry{client: client, ttl: ttl}
}

func (r *RedisRegistry) Track(ctx context.Context, sessionID string, u models.OnlineUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, presenceKey(sessionID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set presence: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Refresh(ctx context.Context, sessionID string) error {
	ok, err := r.client.Expire(ctx, presenceKey(sessionID), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis expire presence: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionExpired, sessionID)
	}
	return nil
}

func (r *RedisRegistry) Untrack(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, presenceKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del presence: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Snapshot(ctx context.Context) ([]models.OnlineUser, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, presenceKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan presence: %w", err)
	}
	if len(keys) == 0 {
		return []models.OnlineUser{}, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis mget presence: %w", err)
	}

	return Dedupe(decodeSessions(vals)), nil
}

// decodeSessions skips keys that expired between SCAN and MGET and values
// that do not parse.
func decodeSessions(vals []any) []models.OnlineUser {
	out := make([]models.OnlineUser, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var u models.OnlineUser
		if err := json.Unmarshal([]byte(s), &u); err != nil {
			continue
		}
		out = append(out, u)
	}
	return out
}
