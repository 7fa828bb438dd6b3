package cache

import (
	"context"
	"time"
)

// Store is a shared key-value cache with per-entry expiry.
type Store interface {
	// Get returns the value and true, or "" and false when the key is absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	// CompareAndDelete removes key only if it currently holds expected.
	// It reports whether the key was removed.
	CompareAndDelete(ctx context.Context, key, expected string) (bool, error)
	Ping(ctx context.Context) error
}
