package transform

import (
	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/layout"
)

// MergeAutoProduction replaces two or more always-on production behaviors
// with one synthetic behavior placed first.
//
// A behavior qualifies when it classifies as auto-no-background and all of
// its (non-empty) outputs are production items. The synthetic behavior has
// a single auto trigger and the qualifying outputs concatenated in their
// original order. Other behaviors keep their relative order after it. With
// fewer than two qualifying behaviors the input is returned as a copy.
//
// The second result holds, for every returned behavior, the indices of the
// input behaviors it was built from.
func MergeAutoProduction(bs []behavior.Behavior, r catalog.Resolver) ([]behavior.Behavior, [][]int) {
	if r == nil {
		r = catalog.Default()
	}

	var merge []int
	for i, b := range bs {
		if isAutoProduction(b, r) {
			merge = append(merge, i)
		}
	}

	if len(merge) < 2 {
		out := make([]behavior.Behavior, len(bs))
		sources := make([][]int, len(bs))
		for i, b := range bs {
			out[i] = b.Clone()
			sources[i] = []int{i}
		}
		return out, sources
	}

	merged := behavior.Behavior{
		Triggers: []behavior.Trigger{{Kind: behavior.TriggerAuto}},
	}
	for _, i := range merge {
		merged.Outputs = append(merged.Outputs, behavior.CloneItems(bs[i].Outputs)...)
	}

	out := make([]behavior.Behavior, 0, len(bs)-len(merge)+1)
	sources := make([][]int, 0, cap(out))
	out = append(out, merged)
	sources = append(sources, merge)

	skip := make(map[int]bool, len(merge))
	for _, i := range merge {
		skip[i] = true
	}
	for i, b := range bs {
		if skip[i] {
			continue
		}
		out = append(out, b.Clone())
		sources = append(sources, []int{i})
	}
	return out, sources
}

func isAutoProduction(b behavior.Behavior, r catalog.Resolver) bool {
	if len(b.Outputs) == 0 || layout.Classify(b, r) != layout.CategoryAutoNoBackground {
		return false
	}
	for _, it := range b.Outputs {
		if r.Class(it.Kind) != catalog.ClassProduction {
			return false
		}
	}
	return true
}
