package service

import (
	"context"
	"time"
)

// Cache is a bounded-TTL string cache for upstream feed responses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// RateLimiter gates an action per client key within a rolling window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
