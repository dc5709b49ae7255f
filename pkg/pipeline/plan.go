package pipeline

import (
	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/layout"
	"github.com/matzehuels/cardlayout/pkg/layout/transform"
)

// PlanCard plans all behaviors of one card.
//
// Auto production behaviors are merged first. Every resulting behavior is
// classified once and built against the budget. When the estimated total
// exceeds the card's row budget, the behaviors are compacted (large amounts
// forced to numeric display) and rebuilt with the same categories. There is
// no further iteration: a compact plan that still overflows is marked
// Clipped.
//
// PlanCard never fails. Unknown kinds and malformed behaviors degrade to
// text tokens and empty lists.
func PlanCard(behaviors []behavior.Behavior, opts Options) CardLayoutPlan {
	opts.SetDefaults()
	budget := opts.Budget

	merged, sources := transform.MergeAutoProduction(behaviors, opts.Catalog)
	cats := make([]layout.Category, len(merged))
	for i, b := range merged {
		cats[i] = layout.Classify(b, opts.Catalog)
	}

	result := CardLayoutPlan{RowBudget: budget.CardRows}
	result.PerBehavior, result.TotalEstimatedRows = buildAll(merged, cats, sources, opts)

	opts.Logger.Debug("planned behaviors",
		"behaviors", len(behaviors),
		"merged", len(merged),
		"rows", result.TotalEstimatedRows,
		"budget", budget.CardRows)

	if result.TotalEstimatedRows <= budget.CardRows {
		return result
	}

	result.Overflow = true
	result.UncompactedRows = result.TotalEstimatedRows

	per, total := buildAll(transform.Compact(merged), cats, sources, opts)
	if total <= result.TotalEstimatedRows {
		result.PerBehavior, result.TotalEstimatedRows = per, total
		result.Compacted = true
	}
	result.Clipped = result.TotalEstimatedRows > budget.CardRows

	opts.Logger.Debug("compacted overflowing card",
		"before", result.UncompactedRows,
		"after", result.TotalEstimatedRows,
		"clipped", result.Clipped)

	return result
}

// buildAll builds every behavior with its precomputed category.
func buildAll(bs []behavior.Behavior, cats []layout.Category, sources [][]int, opts Options) ([]BehaviorPlan, int) {
	plans := make([]BehaviorPlan, len(bs))
	total := 0
	for i, b := range bs {
		p := layout.Build(b, cats[i], opts.Budget, false, opts.Catalog)
		rows := EstimateRows(p)
		plans[i] = BehaviorPlan{
			Index:         i,
			Sources:       sources[i],
			Category:      cats[i],
			Plan:          p,
			EstimatedRows: rows,
		}
		total += rows
	}
	return plans, total
}

// EstimateRows is the number of card rows a behavior occupies. Every
// behavior takes at least one row except auto-no-background ones, which
// count their rows as built.
func EstimateRows(p layout.Plan) int {
	if p.Category == layout.CategoryAutoNoBackground {
		return p.RowCount
	}
	return max(1, p.RowCount)
}
