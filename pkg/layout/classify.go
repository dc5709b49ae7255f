package layout

import (
	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
)

// Category is the visual container a behavior renders in.
type Category string

// Behavior categories, listed in classification priority order.
const (
	CategoryDiscount            Category = "discount"
	CategoryManualAction        Category = "manual-action"
	CategoryAutoNoBackground    Category = "auto-no-background"
	CategoryTriggeredEffect     Category = "triggered-effect"
	CategoryImmediateProduction Category = "immediate-production"
	CategoryImmediateEffect     Category = "immediate-effect"
)

// Categories lists every category in priority order.
var Categories = []Category{
	CategoryDiscount,
	CategoryManualAction,
	CategoryAutoNoBackground,
	CategoryTriggeredEffect,
	CategoryImmediateProduction,
	CategoryImmediateEffect,
}

// Classify assigns exactly one category to b. The first matching rule wins:
//
//  1. discount: an output kind has the discount class
//  2. manual-action: the first trigger is manual, or b has choices
//  3. auto-no-background: the first trigger is auto and there are no inputs
//  4. triggered-effect: at least one trigger and at least one input
//  5. immediate-production: a production output and no trigger (or an auto one)
//  6. immediate-effect: everything else
//
// A nil resolver uses [catalog.Default].
func Classify(b behavior.Behavior, r catalog.Resolver) Category {
	r = resolverOrDefault(r)
	first := b.FirstTrigger()

	switch {
	case anyClass(b.Outputs, r, catalog.ClassDiscount):
		return CategoryDiscount
	case first == behavior.TriggerManual || len(b.Choices) > 0:
		return CategoryManualAction
	case first == behavior.TriggerAuto && len(b.Inputs) == 0:
		return CategoryAutoNoBackground
	case len(b.Triggers) > 0 && len(b.Inputs) > 0:
		return CategoryTriggeredEffect
	case anyClass(b.Outputs, r, catalog.ClassProduction) &&
		(len(b.Triggers) == 0 || first == behavior.TriggerAuto):
		return CategoryImmediateProduction
	default:
		return CategoryImmediateEffect
	}
}

// separatorFor returns the separator a plain behavior of category c draws
// between inputs and outputs, or "" when it draws none.
func separatorFor(c Category, hasInputs, hasOutputs bool) SeparatorType {
	switch c {
	case CategoryManualAction:
		if hasInputs && hasOutputs {
			return SeparatorArrow
		}
	case CategoryTriggeredEffect, CategoryDiscount:
		return SeparatorColon
	}
	return ""
}

func anyClass(items []behavior.ResourceItem, r catalog.Resolver, class catalog.Class) bool {
	for _, it := range items {
		if r.Class(it.Kind) == class {
			return true
		}
	}
	return false
}

func resolverOrDefault(r catalog.Resolver) catalog.Resolver {
	if r == nil {
		return catalog.Default()
	}
	return r
}
