package contract

import (
	"context"
	"time"
)

// Cache is a key-value store with per-entry expiry. Values are copied on
// both Set and Get, so callers never share state through it.
type Cache interface {
	// Get decodes the entry into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
