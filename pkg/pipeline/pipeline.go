// Package pipeline plans the front face of a card.
//
// It ties the layout stages together the same way for the CLI and the HTTP
// API:
//
//  1. Merge: always-on production behaviors collapse into one
//  2. Classify: each remaining behavior gets a layout category
//  3. Build: items are analyzed and distributed into rows
//  4. Fit: if the card overflows its row budget, the whole card is
//     re-planned once with compact displays
//
// [PlanCard] runs these stages on one card with no I/O. [Runner] adds
// memoization through a [cache.Cache] and plans batches of cards in parallel.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	plan, err := runner.Plan(ctx, card, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plan.TotalEstimatedRows, plan.Overflow)
package pipeline

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultRowUnits is the free row width in icon-units.
	DefaultRowUnits = layout.DefaultRowUnits

	// DefaultSideUnits is the width of each side of a split action row.
	DefaultSideUnits = layout.DefaultSideUnits

	// DefaultCardRows is the row budget of a card surface.
	DefaultCardRows = layout.DefaultCardRows

	// MaxBatchSize bounds the number of cards in one PlanCards call made
	// through the API.
	MaxBatchSize = 1000
)

// DefaultWorkers is the default parallelism of PlanCards.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// =============================================================================
// Options - Planning Configuration
// =============================================================================

// Options configures a planning run. Zero values mean defaults.
type Options struct {
	// Budget holds the space constants. Zero fields take the defaults.
	Budget layout.Budget `json:"budget"`

	// Refresh skips cache lookups but still stores the new result.
	Refresh bool `json:"refresh,omitempty"`

	// Workers bounds the parallelism of PlanCards.
	Workers int `json:"workers,omitempty"`

	// Runtime options (not serialized)
	Catalog catalog.Resolver `json:"-"`
	Logger  *log.Logger      `json:"-"`
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	o.Budget = o.Budget.WithDefaults()
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks the budget.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Budget.Validate()
}

// =============================================================================
// Results
// =============================================================================

// BehaviorPlan is the plan of one (possibly merged) behavior.
type BehaviorPlan struct {
	// Index is the position in the planned behavior list.
	Index int `json:"index"`

	// Sources are the indices of the input behaviors this one came from.
	// A merged production behavior lists all of its parts.
	Sources []int `json:"sources"`

	Category      layout.Category `json:"category"`
	Plan          layout.Plan     `json:"plan"`
	EstimatedRows int             `json:"estimatedRows"`
}

// CardLayoutPlan is the complete front-face plan of a card.
type CardLayoutPlan struct {
	CardID             string         `json:"cardId,omitempty"`
	PerBehavior        []BehaviorPlan `json:"perBehavior"`
	TotalEstimatedRows int            `json:"totalEstimatedRows"`
	RowBudget          int            `json:"rowBudget"`

	// Overflow is set when the first pass exceeded the row budget.
	Overflow bool `json:"overflow"`

	// UncompactedRows is the first-pass total when Overflow is set.
	UncompactedRows int `json:"uncompactedRows,omitempty"`

	// Compacted is set when the compact re-plan was adopted.
	Compacted bool `json:"compacted"`

	// Clipped is set when even the compact plan exceeds the budget; the
	// renderer should fall back to its scrolling container.
	Clipped bool `json:"clipped"`
}
