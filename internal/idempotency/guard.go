package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Guard registers idempotency keys so a retried createOrder request cannot
// create a second order. Register returns false when the key was already seen.
type Guard interface {
	Register(ctx context.Context, key string) (bool, error)
}

type redisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGuard(rdb *redis.Client, ttl time.Duration) Guard {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisGuard{rdb: rdb, ttl: ttl}
}

func (g *redisGuard) Register(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("idempotency-key:%s", key)

	ok, err := g.rdb.SetNX(ctx, redisKey, "exists", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("register idempotency key: %w", err)
	}
	return ok, nil
}

// NopGuard accepts every key. Used when no redis is configured.
type NopGuard struct{}

func (NopGuard) Register(context.Context, string) (bool, error) { return true, nil }
