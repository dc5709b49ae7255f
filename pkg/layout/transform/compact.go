package transform

import (
	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/layout"
)

// Compact returns copies of bs with ForcedDensity set on every item whose
// absolute amount exceeds [layout.CompactThreshold]. Inputs, outputs and
// choice items are all marked. Items already marked stay marked.
func Compact(bs []behavior.Behavior) []behavior.Behavior {
	out := make([]behavior.Behavior, len(bs))
	for i, b := range bs {
		c := b.Clone()
		compactItems(c.Inputs)
		compactItems(c.Outputs)
		for j := range c.Choices {
			compactItems(c.Choices[j].Inputs)
			compactItems(c.Choices[j].Outputs)
		}
		out[i] = c
	}
	return out
}

func compactItems(items []behavior.ResourceItem) {
	for i := range items {
		if n := items[i].Amount; n > layout.CompactThreshold || -n > layout.CompactThreshold {
			items[i].ForcedDensity = true
		}
	}
}
