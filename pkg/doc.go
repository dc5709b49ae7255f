// Package pkg provides the core libraries for cardlayout.
//
// # Overview
//
// Cardlayout decides how the effects printed on a game card are drawn: which
// visual category each behavior belongs to, whether amounts repeat their
// icon or show a number, and how icons and separators are packed into the
// fixed rows of a card.
//
// # Architecture
//
// The data flow through cardlayout:
//
//	Card file (JSON)
//	       ↓
//	  [behavior] package (decode + schema validation)
//	       ↓
//	  [layout/transform] package (merge auto-production, compaction)
//	       ↓
//	  [layout] package (classify → analyze → requirement → distribute)
//	       ↓
//	  [pipeline] package (per-card plans, overflow handling, caching)
//	       ↓
//	  JSON/YAML plans, terminal preview, HTTP API
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cardlayout/pkg/behavior"
//	    "github.com/matzehuels/cardlayout/pkg/pipeline"
//	)
//
//	cards, _ := behavior.ReadCardsFile("cards.json")
//	plan := pipeline.PlanCard(cards[0].Behaviors, pipeline.Options{})
//	fmt.Println(plan.TotalEstimatedRows, plan.Overflow)
//
// # Main Packages
//
//   - [github.com/matzehuels/cardlayout/pkg/behavior]: card and behavior records
//   - [github.com/matzehuels/cardlayout/pkg/catalog]: kind → icon and class table
//   - [github.com/matzehuels/cardlayout/pkg/layout]: the planning engine
//   - [github.com/matzehuels/cardlayout/pkg/layout/transform]: behavior rewrites
//   - [github.com/matzehuels/cardlayout/pkg/pipeline]: card planning and batch runner
//   - [github.com/matzehuels/cardlayout/pkg/cache]: plan caches (file, SQLite, Redis, MongoDB)
//   - [github.com/matzehuels/cardlayout/pkg/config]: project files (TOML, YAML)
//   - [github.com/matzehuels/cardlayout/pkg/observability]: planning, cache and HTTP hooks
//   - [github.com/matzehuels/cardlayout/pkg/errors]: coded errors
package pkg
