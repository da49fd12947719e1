package redis

import (
	"context"
	"time"

	"sprintdeck/domain/ports"
)

// NoopCache satisfies ports.Cache when Redis is unavailable. Reads always
// miss and writes are dropped, so every caller falls through to the database.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) GetJSON(ctx context.Context, key string, target any) error {
	return ports.ErrCacheMiss
}

func (NoopCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (NoopCache) Del(ctx context.Context, keys ...string) error {
	return nil
}
