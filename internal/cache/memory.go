package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = time.Minute

// Memory keeps entries in process, JSON-encoded so that readers never alias
// the value a writer stored.
type Memory struct {
	items *gocache.Cache
}

func NewMemory() *Memory {
	return &Memory{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *Memory) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.items.Get(key)
	if !ok {
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("unexpected cache entry type %T for key %s", raw, key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	m.items.Set(key, data, ttl)
	return nil
}
