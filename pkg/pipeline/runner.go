package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/cache"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	apperr "github.com/matzehuels/cardlayout/pkg/errors"
	"github.com/matzehuels/cardlayout/pkg/observability"
)

// Runner plans cards with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner holds no per-run state; multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// PlanWithCacheInfo plans one card and reports whether the plan came from
// the cache. Cache failures are logged and fall back to planning.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, card behavior.Card, opts Options) (CardLayoutPlan, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return CardLayoutPlan{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return CardLayoutPlan{}, false, apperr.Wrap(apperr.ErrCodeTimeout, err, "plan %s", card.ID)
	}

	hooks := observability.Layout()
	start := time.Now()
	hooks.OnPlanStart(ctx, card.ID, len(card.Behaviors))

	key, err := r.planKey(card.Behaviors, opts)
	if err != nil {
		// Behaviors that cannot be encoded are still plannable.
		r.Logger.Debug("skipping cache", "card", card.ID, "err", err)
	}

	if key != "" && !opts.Refresh {
		if plan, ok := r.lookup(ctx, key); ok {
			plan.CardID = card.ID
			hooks.OnPlanComplete(ctx, card.ID, plan.TotalEstimatedRows, plan.Overflow, time.Since(start))
			return plan, true, nil
		}
	}

	plan := PlanCard(card.Behaviors, opts)
	plan.CardID = card.ID
	if plan.Overflow {
		hooks.OnCompaction(ctx, card.ID, plan.UncompactedRows, plan.TotalEstimatedRows)
		opts.Logger.Warn("card overflows row budget",
			"card", card.ID,
			"rows", plan.UncompactedRows,
			"budget", plan.RowBudget,
			"compacted", plan.TotalEstimatedRows,
			"clipped", plan.Clipped)
	}

	if key != "" {
		r.store(ctx, key, plan)
	}

	hooks.OnPlanComplete(ctx, card.ID, plan.TotalEstimatedRows, plan.Overflow, time.Since(start))
	return plan, false, nil
}

// Plan is a convenience wrapper that calls PlanWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Plan(ctx context.Context, card behavior.Card, opts Options) (CardLayoutPlan, error) {
	plan, _, err := r.PlanWithCacheInfo(ctx, card, opts)
	return plan, err
}

// BatchStats summarizes a PlanCards run.
type BatchStats struct {
	Cards     int           `json:"cards"`
	CacheHits int           `json:"cacheHits"`
	Overflows int           `json:"overflows"`
	Clipped   int           `json:"clipped"`
	Duration  time.Duration `json:"duration"`
}

// PlanCards plans cards concurrently, at most opts.Workers at a time.
// Results are in input order. The first error cancels the remaining work.
func (r *Runner) PlanCards(ctx context.Context, cards []behavior.Card, opts Options) ([]CardLayoutPlan, BatchStats, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, BatchStats{}, err
	}

	start := time.Now()
	plans := make([]CardLayoutPlan, len(cards))
	hits := make([]bool, len(cards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range cards {
		g.Go(func() error {
			plan, hit, err := r.PlanWithCacheInfo(gctx, cards[i], opts)
			if err != nil {
				return err
			}
			plans[i], hits[i] = plan, hit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BatchStats{}, err
	}

	stats := BatchStats{Cards: len(cards), Duration: time.Since(start)}
	for i, p := range plans {
		if hits[i] {
			stats.CacheHits++
		}
		if p.Overflow {
			stats.Overflows++
		}
		if p.Clipped {
			stats.Clipped++
		}
	}

	opts.Logger.Info("planned cards",
		"cards", stats.Cards,
		"cache_hits", stats.CacheHits,
		"overflows", stats.Overflows,
		"duration", stats.Duration)

	return plans, stats, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// planKey derives the cache key of a card's behaviors under opts.
func (r *Runner) planKey(bs []behavior.Behavior, opts Options) (string, error) {
	data, err := behavior.MarshalBehaviors(bs)
	if err != nil {
		return "", fmt.Errorf("hash behaviors: %w", err)
	}
	return r.Keyer.PlanKey(cache.Hash(data), cache.PlanKeyOpts{
		RowUnits:    opts.Budget.RowUnits,
		SideUnits:   opts.Budget.SideUnits,
		CardRows:    opts.Budget.CardRows,
		CatalogHash: catalogHash(opts.Catalog),
	}), nil
}

func (r *Runner) lookup(ctx context.Context, key string) (CardLayoutPlan, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, "plan")
		return CardLayoutPlan{}, false
	}

	var plan CardLayoutPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		// Stale or corrupt entry: recompute
		hooks.OnCacheMiss(ctx, "plan")
		return CardLayoutPlan{}, false
	}
	hooks.OnCacheHit(ctx, "plan")
	return plan, true
}

func (r *Runner) store(ctx context.Context, key string, plan CardLayoutPlan) {
	plan.CardID = ""
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, cache.TTLPlan)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "plan", len(data))
}

// catalogHash fingerprints catalogs that can list their descriptors.
// Other resolvers share the empty fingerprint.
func catalogHash(r catalog.Resolver) string {
	lister, ok := r.(interface{ Descriptors() []catalog.Descriptor })
	if !ok {
		return ""
	}
	h, err := cache.HashJSON(lister.Descriptors())
	if err != nil {
		return ""
	}
	return h
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
