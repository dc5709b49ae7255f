// Package layout plans how card behaviors are arranged as rows of icons.
//
// # Overview
//
// A card surface has a fixed width measured in icon-units and a fixed number
// of rows. This package turns one [behavior.Behavior] into a [Plan]: rows of
// [DisplayInfo] items plus the separators drawn between them. Painting the
// plan is left to the caller.
//
// Planning one behavior runs four steps, each exported so it can be tested
// on its own:
//
//  1. [Classify] picks one [Category] by first match in a fixed priority order
//  2. [AnalyzeBehavior] decides per item whether amounts show as repeated
//     icons ([ModeIndividual]) or as "N×icon" ([ModeNumeric])
//  3. [ComputeRequirement] sums the units, including separators, and decides
//     whether the behavior needs more than one row
//  4. [Distribute] packs the items into rows without splitting or reordering
//
// [Build] chains steps 2–4 for an already classified behavior.
//
// # Budgets
//
// [Budget] holds the space constants: 7 units per free row, 3 units per side
// of a split action row and 4 rows per card by default.
//
// # Degradation
//
// Nothing in this package returns an error. Missing lists are empty, kinds
// that do not resolve to an icon become text tokens ([DisplayInfo.Token]) and
// a per-condition without a reference collapses to plain numeric display.
//
// # Usage
//
//	cat := layout.Classify(b, catalog.Default())
//	p := layout.Build(b, cat, layout.DefaultBudget(), false, catalog.Default())
//	for i, row := range p.Rows {
//	    fmt.Println(i, len(row))
//	}
package layout
