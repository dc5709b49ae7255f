package layout

import (
	"fmt"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
)

// Mode is how an amount is drawn.
type Mode string

const (
	// ModeIndividual repeats the icon once per unit of amount.
	ModeIndividual Mode = "individual"
	// ModeNumeric draws the amount as text next to a single icon.
	ModeNumeric Mode = "numeric"
)

// Individual-display thresholds. Amounts up to the threshold repeat their icon.
const (
	DefaultThreshold = 3
	CompactThreshold = 2
)

// perConditionUnits is the fixed width of "amount-icon / condition-icon".
const perConditionUnits = 2

// DisplayInfo is one resource item ready for display.
type DisplayInfo struct {
	Kind   string              `json:"kind"`
	Amount int                 `json:"amount"`
	Mode   Mode                `json:"displayMode"`
	Units  int                 `json:"units"`
	Icon   string              `json:"icon,omitempty"`
	Target behavior.TargetType `json:"target,omitempty"`

	// Negative requests a leading minus glyph.
	Negative bool `json:"negative,omitempty"`

	// Condition is the tag or kind a per-condition counts. ConditionIcon is
	// set when that reference resolves to an icon.
	Condition     string `json:"condition,omitempty"`
	ConditionIcon string `json:"conditionIcon,omitempty"`

	// Token is a "sign amount kind" text fallback for kinds without an icon.
	Token string `json:"token,omitempty"`
}

// Analyze decides how one item is displayed given the space available in its
// row. forceCompact lowers the individual-display threshold from 3 to 2, as
// does the item's own ForcedDensity flag.
//
// The result always has Units >= 1. A nil resolver uses [catalog.Default].
func Analyze(item behavior.ResourceItem, available int, forceCompact bool, r catalog.Resolver) DisplayInfo {
	r = resolverOrDefault(r)
	d, resolved := r.Resolve(item.Kind)

	info := DisplayInfo{
		Kind:     item.Kind,
		Amount:   item.Amount,
		Mode:     ModeNumeric,
		Units:    1,
		Icon:     d.Icon,
		Target:   item.Target,
		Negative: item.Amount < 0,
	}
	if !resolved {
		info.Token = fmt.Sprintf("%+d %s", item.Amount, item.Kind)
	}

	if item.Per != nil && d.Class == catalog.ClassProduction {
		if ref := item.Per.Ref(); ref != "" {
			info.Condition = ref
			if cd, ok := r.Resolve(ref); ok {
				info.ConditionIcon = cd.Icon
			}
			info.Units = perConditionUnits
		}
		return info
	}

	if !resolved {
		return info
	}

	threshold := DefaultThreshold
	if forceCompact || item.ForcedDensity {
		threshold = CompactThreshold
	}
	n := abs(item.Amount)
	if n > 0 && n <= threshold && n <= available {
		info.Mode = ModeIndividual
		info.Units = n
	}
	return info
}

// Displays holds the analyzed items of one behavior.
type Displays struct {
	Inputs  []DisplayInfo
	Outputs []DisplayInfo
	Choices []ChoiceDisplays
}

// ChoiceDisplays holds the analyzed items of one choice.
type ChoiceDisplays struct {
	Inputs  []DisplayInfo
	Outputs []DisplayInfo
}

// AnalyzeBehavior runs [Analyze] over every item of b in order.
func AnalyzeBehavior(b behavior.Behavior, available int, forceCompact bool, r catalog.Resolver) Displays {
	r = resolverOrDefault(r)
	d := Displays{
		Inputs:  analyzeAll(b.Inputs, available, forceCompact, r),
		Outputs: analyzeAll(b.Outputs, available, forceCompact, r),
	}
	for _, c := range b.Choices {
		d.Choices = append(d.Choices, ChoiceDisplays{
			Inputs:  analyzeAll(c.Inputs, available, forceCompact, r),
			Outputs: analyzeAll(c.Outputs, available, forceCompact, r),
		})
	}
	return d
}

func analyzeAll(items []behavior.ResourceItem, available int, forceCompact bool, r catalog.Resolver) []DisplayInfo {
	if len(items) == 0 {
		return nil
	}
	out := make([]DisplayInfo, len(items))
	for i, it := range items {
		out[i] = Analyze(it, available, forceCompact, r)
	}
	return out
}

// Cost is the width d takes in a row. A zero amount is drawn but costs
// nothing.
func (d DisplayInfo) Cost() int {
	if d.Amount == 0 {
		return 0
	}
	return d.Units
}

// SumUnits returns the total layout cost of items.
func SumUnits(items []DisplayInfo) int {
	total := 0
	for _, it := range items {
		total += it.Cost()
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
