package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventticketing/internal/domain"
)

// NewRedisClient parses a redis:// URL and returns a connected client.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type fixedWindow struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
}

// NewFixedWindow returns a RateLimiter allowing limit hits per key in each window.
func NewFixedWindow(client redis.Cmdable, limit int, window time.Duration) domain.RateLimiter {
	return &fixedWindow{client: client, limit: int64(limit), window: window, prefix: "ratelimit:gate:"}
}

func (f *fixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	k := f.prefix + key
	pipe := f.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, f.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return incr.Val() <= f.limit, nil
}

// NewNoop returns a RateLimiter that allows everything.
func NewNoop() domain.RateLimiter {
	return noop{}
}

type noop struct{}

func (noop) Allow(context.Context, string) (bool, error) { return true, nil }
