package pipeline

import (
	"testing"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/layout"
)

func item(kind string, amount int) behavior.ResourceItem {
	return behavior.ResourceItem{Kind: kind, Amount: amount}
}

func effect(items ...behavior.ResourceItem) behavior.Behavior {
	return behavior.Behavior{Outputs: items}
}

func autoProd(kind string, amount int) behavior.Behavior {
	return behavior.Behavior{
		Triggers: []behavior.Trigger{{Kind: behavior.TriggerAuto}},
		Outputs:  []behavior.ResourceItem{item(kind, amount)},
	}
}

func TestPlanCardMergesAutoProduction(t *testing.T) {
	bs := []behavior.Behavior{
		autoProd("steel-production", 1),
		autoProd("energy-production", 1),
		{
			Triggers: []behavior.Trigger{{Kind: behavior.TriggerManual}},
			Inputs:   []behavior.ResourceItem{item("energy", -1)},
			Outputs:  []behavior.ResourceItem{item("steel", 1)},
		},
		autoProd("heat-production", 1),
	}

	got := PlanCard(bs, Options{})

	if len(got.PerBehavior) != 2 {
		t.Fatalf("PerBehavior = %d, want 2", len(got.PerBehavior))
	}
	first := got.PerBehavior[0]
	if first.Category != layout.CategoryAutoNoBackground {
		t.Errorf("first category = %q, want %q", first.Category, layout.CategoryAutoNoBackground)
	}
	if want := []int{0, 1, 3}; !equalInts(first.Sources, want) {
		t.Errorf("first sources = %v, want %v", first.Sources, want)
	}
	second := got.PerBehavior[1]
	if second.Category != layout.CategoryManualAction || !equalInts(second.Sources, []int{2}) {
		t.Errorf("second = %s %v, want manual-action [2]", second.Category, second.Sources)
	}
	if got.Overflow {
		t.Error("two single-row behaviors should not overflow")
	}
}

func TestPlanCardOverflowCompacts(t *testing.T) {
	// One two-row effect plus three single-row effects: 5 rows against 4.
	bs := []behavior.Behavior{
		effect(item("plants", 3), item("heat", 3), item("steel", 3)),
		effect(item("plants", 1)),
		effect(item("heat", 1)),
		effect(item("energy", 1)),
	}

	got := PlanCard(bs, Options{})

	if !got.Overflow {
		t.Fatal("Overflow = false, want true")
	}
	if got.UncompactedRows != 5 {
		t.Errorf("UncompactedRows = %d, want 5", got.UncompactedRows)
	}
	if got.TotalEstimatedRows > got.UncompactedRows {
		t.Errorf("compacted total %d exceeds naive %d", got.TotalEstimatedRows, got.UncompactedRows)
	}
	if !got.Compacted || got.TotalEstimatedRows != 4 {
		t.Errorf("Compacted = %v total = %d, want true/4", got.Compacted, got.TotalEstimatedRows)
	}
	if got.Clipped {
		t.Error("Clipped = true, want false after a successful compaction")
	}
	for _, it := range got.PerBehavior[0].Plan.Rows[0] {
		if it.Mode != layout.ModeNumeric {
			t.Errorf("%s displayed %s after compaction, want numeric", it.Kind, it.Mode)
		}
	}
}

func TestPlanCardClipsWhenCompactionIsNotEnough(t *testing.T) {
	var bs []behavior.Behavior
	for i := 0; i < 5; i++ {
		bs = append(bs, effect(item("plants", 1)))
	}

	got := PlanCard(bs, Options{})

	if !got.Overflow || !got.Clipped {
		t.Errorf("Overflow = %v Clipped = %v, want both true", got.Overflow, got.Clipped)
	}
	if got.TotalEstimatedRows != 5 {
		t.Errorf("TotalEstimatedRows = %d, want 5", got.TotalEstimatedRows)
	}
}

func TestPlanCardKeepsCategoriesAcrossCompaction(t *testing.T) {
	bs := []behavior.Behavior{
		{
			Triggers: []behavior.Trigger{{Kind: behavior.TriggerManual}},
			Inputs:   []behavior.ResourceItem{item("credits", -3)},
			Outputs:  []behavior.ResourceItem{item("plants", 3)},
		},
		effect(item("plants", 1)),
		effect(item("heat", 1)),
		effect(item("energy", 1)),
	}
	first := PlanCard(bs, Options{})
	if !first.Overflow {
		t.Fatalf("expected overflow, got %d rows", first.TotalEstimatedRows)
	}
	if !first.Compacted || first.PerBehavior[0].EstimatedRows != 1 {
		t.Errorf("Compacted = %v action rows = %d, want true/1", first.Compacted, first.PerBehavior[0].EstimatedRows)
	}
	for i, bp := range first.PerBehavior {
		if want := layout.Classify(bs[i], nil); bp.Category != want {
			t.Errorf("behavior %d category = %q, want %q", i, bp.Category, want)
		}
	}
}

func TestPlanCardEmpty(t *testing.T) {
	got := PlanCard(nil, Options{})
	if len(got.PerBehavior) != 0 || got.TotalEstimatedRows != 0 || got.Overflow {
		t.Errorf("PlanCard(nil) = %+v", got)
	}
	if got.RowBudget != DefaultCardRows {
		t.Errorf("RowBudget = %d, want %d", got.RowBudget, DefaultCardRows)
	}
}

func TestPlanCardDoesNotMutateInput(t *testing.T) {
	bs := []behavior.Behavior{
		effect(item("plants", 3), item("heat", 3), item("steel", 3)),
		effect(item("plants", 1)),
		effect(item("heat", 1)),
		effect(item("energy", 1)),
	}
	_ = PlanCard(bs, Options{})
	for _, it := range bs[0].Outputs {
		if it.ForcedDensity {
			t.Fatal("PlanCard set ForcedDensity on its input")
		}
	}
}

func TestPlanCardCustomBudget(t *testing.T) {
	bs := []behavior.Behavior{effect(item("plants", 3), item("heat", 3), item("steel", 3))}

	narrow := PlanCard(bs, Options{})
	wide := PlanCard(bs, Options{Budget: layout.Budget{RowUnits: 9, SideUnits: 4, CardRows: 4}})

	if narrow.PerBehavior[0].EstimatedRows != 2 {
		t.Errorf("default budget rows = %d, want 2", narrow.PerBehavior[0].EstimatedRows)
	}
	if wide.PerBehavior[0].EstimatedRows != 1 {
		t.Errorf("wide budget rows = %d, want 1", wide.PerBehavior[0].EstimatedRows)
	}
}

func TestEstimateRows(t *testing.T) {
	tests := []struct {
		name string
		plan layout.Plan
		want int
	}{
		{"empty effect still takes a row", layout.Plan{Category: layout.CategoryImmediateEffect}, 1},
		{"empty auto takes none", layout.Plan{Category: layout.CategoryAutoNoBackground}, 0},
		{"multi-row", layout.Plan{Category: layout.CategoryTriggeredEffect, RowCount: 3}, 3},
		{"auto one row", layout.Plan{Category: layout.CategoryAutoNoBackground, RowCount: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateRows(tt.plan); got != tt.want {
				t.Errorf("EstimateRows() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if o.Budget != layout.DefaultBudget() {
		t.Errorf("Budget = %+v, want defaults", o.Budget)
	}
	if o.Catalog == nil || o.Logger == nil || o.Workers <= 0 {
		t.Error("SetDefaults left runtime options unset")
	}

	bad := Options{Budget: layout.Budget{RowUnits: 5, SideUnits: 3}}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for sides wider than the row")
	}
}

func TestPlanCardUsesCatalog(t *testing.T) {
	c := catalog.Default().With(catalog.Descriptor{Kind: "rebate", Icon: "x/rebate", Class: catalog.ClassDiscount})
	got := PlanCard([]behavior.Behavior{effect(item("rebate", 1))}, Options{Catalog: c})
	if got.PerBehavior[0].Category != layout.CategoryDiscount {
		t.Errorf("category = %q, want discount", got.PerBehavior[0].Category)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
