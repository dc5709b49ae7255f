// Package cache memoizes layout plans.
//
// Planning a card is cheap, but the CLI preview, the HTTP API and batch runs
// all plan the same cards over and over. The Cache interface lets every entry
// point share one store:
//
//   - [NullCache] disables caching
//   - [FileCache] stores zstd-compressed entries under a directory (CLI default)
//   - [SQLiteCache] keeps entries in a single local database file
//   - [RedisCache] and [MongoCache] share entries between server replicas
//
// Keys come from a [Keyer], so callers never build key strings by hand. A
// [ScopedKeyer] namespaces keys when several catalogs share one store.
package cache

import (
	"context"
	"time"
)

// =============================================================================
// Cache Interface
// =============================================================================

// Cache stores opaque byte values with an optional time-to-live.
//
// Get reports a miss with (nil, false, nil); an error means the store itself
// failed. A ttl of zero stores the value without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLPlan is how long a computed plan stays cached. Plans are a pure
// function of their key, so this only bounds storage growth.
const TTLPlan = 7 * 24 * time.Hour

// =============================================================================
// Keys
// =============================================================================

// PlanKeyOpts holds everything besides the behaviors that changes a plan.
type PlanKeyOpts struct {
	RowUnits    int    `json:"row_units"`
	SideUnits   int    `json:"side_units"`
	CardRows    int    `json:"card_rows"`
	CatalogHash string `json:"catalog_hash,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// PlanKey returns the key of a card plan, given the hash of the card's
	// behavior list.
	PlanKey(behaviorsHash string, opts PlanKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey returns "plan:<sha256>" over the behaviors hash and options.
func (DefaultKeyer) PlanKey(behaviorsHash string, opts PlanKeyOpts) string {
	return hashKey("plan", behaviorsHash, opts)
}
