package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by GetJSON when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the read-through cache used for the users list. The contract is
// explicit: entries carry a TTL and mutations call Del on the affected key.
type Cache interface {
	GetJSON(ctx context.Context, key string, target any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
