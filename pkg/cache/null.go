package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. It backs --no-cache and runners created without
// a store, so every plan is computed fresh.
type NullCache struct{}

// NewNullCache returns a cache that never hits.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get reports a miss.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards data.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
