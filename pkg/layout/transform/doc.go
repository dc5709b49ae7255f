// Package transform provides the optional passes around per-behavior layout.
//
// # Overview
//
// Planning a card is a fixed pipeline:
//
//	classify → merge → layout → maybe-compact → re-layout
//
// This package holds the two passes that are not layout themselves:
//
//   - [MergeAutoProduction]: coalesces always-on production bonuses into one
//     behavior before layout
//   - [Compact]: marks large amounts for tighter display after a card
//     overflows its row budget
//
// Both passes return new slices and never modify their input.
//
// # Merging Production
//
// Several independent "always-on" production bonuses read better as one
// consolidated badge. [MergeAutoProduction] collects every auto-triggered
// behavior without inputs whose outputs are all production items. Two or more
// are replaced by one synthetic behavior placed first:
//
//	merged, sources := transform.MergeAutoProduction(card.Behaviors, catalog.Default())
//
// The sources slice maps each merged behavior back to the indices it came from.
//
// # Compaction
//
// [Compact] sets ForcedDensity on every item whose amount exceeds
// [layout.CompactThreshold], so a re-layout shows it as "N×icon". It touches
// nothing else: categories, merge decisions and item order are unchanged.
package transform
