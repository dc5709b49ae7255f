package layout

import (
	"testing"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
)

func TestComputeRequirement(t *testing.T) {
	budget := DefaultBudget()
	tests := []struct {
		name         string
		b            behavior.Behavior
		wantUnits    int
		wantSep      int
		wantMultiRow bool
	}{
		{
			name: "immediate effect has no separator",
			b:    behavior.Behavior{Outputs: []behavior.ResourceItem{item("plants", 2), item("heat", 3)}},
			// 2 + 3
			wantUnits: 5,
		},
		{
			name: "triggered effect adds colon",
			b: behavior.Behavior{
				Triggers: trig("card-played"),
				Inputs:   []behavior.ResourceItem{item("event", 1)},
				Outputs:  []behavior.ResourceItem{item("credits", 2)},
			},
			wantUnits: 4,
			wantSep:   1,
		},
		{
			name:      "discount adds colon without inputs",
			b:         behavior.Behavior{Outputs: []behavior.ResourceItem{item("discount", 2)}},
			wantUnits: 3,
			wantSep:   1,
		},
		{
			name:      "manual action with one side has no arrow",
			b:         behavior.Behavior{Triggers: trig(behavior.TriggerManual), Outputs: []behavior.ResourceItem{item("card-draw", 1)}},
			wantUnits: 1,
		},
		{
			name: "free row overflow",
			b: behavior.Behavior{Outputs: []behavior.ResourceItem{
				item("plants", 3), item("heat", 3), item("steel", 2),
			}},
			wantUnits:    8,
			wantMultiRow: true,
		},
		{
			name: "zero amount costs nothing",
			b:    behavior.Behavior{Outputs: []behavior.ResourceItem{item("plants", 0), item("heat", 1)}},
			// 0 + 1
			wantUnits: 1,
		},
		{
			name: "choices",
			b: behavior.Behavior{Choices: []behavior.Choice{
				{Inputs: []behavior.ResourceItem{item("energy", -1)}, Outputs: []behavior.ResourceItem{item("plants", 2)}},
				{Outputs: []behavior.ResourceItem{item("heat", 3)}},
			}},
			// (1 + 1 + 2) + 1 + 3
			wantUnits: 8,
			wantSep:   2,
			// 8 > 7
			wantMultiRow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.b, nil)
			d := AnalyzeBehavior(tt.b, budget.RowUnits, false, nil)
			req := ComputeRequirement(c, d, budget)

			if req.Units != tt.wantUnits {
				t.Errorf("Units = %d, want %d", req.Units, tt.wantUnits)
			}
			if req.SeparatorUnits != tt.wantSep {
				t.Errorf("SeparatorUnits = %d, want %d", req.SeparatorUnits, tt.wantSep)
			}
			if req.MultiRow != tt.wantMultiRow {
				t.Errorf("MultiRow = %v, want %v", req.MultiRow, tt.wantMultiRow)
			}
		})
	}
}

func TestBuildManualActionSplits(t *testing.T) {
	b := behavior.Behavior{
		Triggers: trig(behavior.TriggerManual),
		Inputs:   []behavior.ResourceItem{item("credits", -3)},
		Outputs:  []behavior.ResourceItem{item("steel-production", 1)},
	}
	c := Classify(b, nil)
	if c != CategoryManualAction {
		t.Fatalf("Classify() = %q, want %q", c, CategoryManualAction)
	}

	p := Build(b, c, DefaultBudget(), false, nil)

	if p.Units != 5 {
		t.Errorf("Units = %d, want 5", p.Units)
	}
	if !p.MultiRow || !p.Split {
		t.Fatalf("MultiRow = %v, Split = %v, want both true", p.MultiRow, p.Split)
	}
	// Each side fits its stack on one row, so the sides are stacked: credits,
	// then the arrow and steel production.
	if p.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", p.RowCount)
	}
	if len(p.Rows[0]) != 1 || len(p.Rows[1]) != 1 || p.Rows[1][0].Kind != "steel-production" {
		t.Errorf("Rows = %+v, want credits over steel-production", p.Rows)
	}
	if p.SplitAt[0] != 1 || p.SplitAt[1] != 0 {
		t.Errorf("SplitAt = %v, want [1 0]", p.SplitAt)
	}
	credits := p.Rows[0][0]
	if credits.Mode != ModeIndividual || credits.Units != 3 || !credits.Negative {
		t.Errorf("credits = %+v, want three negative individual icons", credits)
	}
	for i, row := range p.Rows {
		left, right := SumUnits(row[:p.SplitAt[i]]), SumUnits(row[p.SplitAt[i]:])
		if left > DefaultSideUnits || right > DefaultSideUnits {
			t.Errorf("row %d sides %d|%d exceed the side budget", i, left, right)
		}
	}
	if len(p.Separators) != 1 || p.Separators[0] != (Separator{Type: SeparatorArrow, Row: 1, Position: 0}) {
		t.Errorf("Separators = %+v, want one arrow at the head of row 1", p.Separators)
	}
}

func TestBuildManualActionZipsTallSides(t *testing.T) {
	b := behavior.Behavior{
		Triggers: trig(behavior.TriggerManual),
		Inputs:   []behavior.ResourceItem{item("credits", -3), item("steel", -2)},
		Outputs:  []behavior.ResourceItem{item("plants", 1)},
	}
	p := Build(b, Classify(b, nil), DefaultBudget(), false, nil)

	if p.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", p.RowCount)
	}
	if p.Rows[0][0].Kind != "credits" || p.Rows[0][1].Kind != "plants" || p.Rows[1][0].Kind != "steel" {
		t.Errorf("Rows = %+v, want credits|plants then steel", p.Rows)
	}
	if len(p.Separators) != 1 || p.Separators[0] != (Separator{Type: SeparatorArrow, Row: 0, Position: 1}) {
		t.Errorf("Separators = %+v, want the arrow between the sides of row 0", p.Separators)
	}
}

func TestBuildZeroAmountCostsNothing(t *testing.T) {
	b := behavior.Behavior{Outputs: []behavior.ResourceItem{item("plants", 0), item("heat", 1)}}
	p := Build(b, Classify(b, nil), DefaultBudget(), false, nil)

	if p.Units != 1 {
		t.Errorf("Units = %d, want 1", p.Units)
	}
	if p.RowCount != 1 || len(p.Rows[0]) != 2 {
		t.Fatalf("Rows = %+v, want both items in one row", p.Rows)
	}
	if zero := p.Rows[0][0]; zero.Units < 1 || zero.Mode != ModeNumeric {
		t.Errorf("zero item = %s/%d, want numeric with at least one unit", zero.Mode, zero.Units)
	}
}

func TestBuildPlantsExample(t *testing.T) {
	b := behavior.Behavior{Outputs: []behavior.ResourceItem{item("plants", 2)}, Triggers: []behavior.Trigger{}}
	c := Classify(b, nil)
	if c != CategoryImmediateEffect {
		t.Fatalf("Classify() = %q, want %q", c, CategoryImmediateEffect)
	}

	p := Build(b, c, DefaultBudget(), false, nil)
	if p.RowCount != 1 || len(p.Rows) != 1 {
		t.Fatalf("RowCount = %d, want 1", p.RowCount)
	}
	got := p.Rows[0][0]
	if got.Mode != ModeIndividual || got.Units != 2 {
		t.Errorf("DisplayInfo = %s/%d, want individual/2", got.Mode, got.Units)
	}
}

func TestBuildTriggeredMultiRowAttachesSeparatorOnce(t *testing.T) {
	b := behavior.Behavior{
		Triggers: trig("tag-played"),
		Inputs:   []behavior.ResourceItem{item("space", 1)},
		Outputs: []behavior.ResourceItem{
			item("titanium", 3), item("plants", 3), item("heat", 2), item("energy", 2),
		},
	}
	c := Classify(b, nil)
	p := Build(b, c, DefaultBudget(), false, nil)

	if !p.MultiRow {
		t.Fatalf("MultiRow = false for %d units", p.Units)
	}
	if len(p.Separators) != 1 {
		t.Fatalf("Separators = %+v, want exactly one", p.Separators)
	}
	sep := p.Separators[0]
	if sep.Type != SeparatorColon || sep.Row != 1 || sep.Position != 0 {
		t.Errorf("separator = %+v, want colon at head of outputs (row 1)", sep)
	}

	// Inputs row, then outputs packed against the full row with the colon in the first.
	if p.RowCount != 3 {
		t.Fatalf("RowCount = %d, want 3", p.RowCount)
	}
	for i, row := range p.Rows {
		cost := SumUnits(row)
		if i == sep.Row {
			cost++
		}
		if cost > DefaultRowUnits {
			t.Errorf("row %d costs %d units", i, cost)
		}
	}
}

func TestBuildChoicesMultiRow(t *testing.T) {
	b := behavior.Behavior{Choices: []behavior.Choice{
		{Inputs: []behavior.ResourceItem{item("energy", -1)}, Outputs: []behavior.ResourceItem{item("plants", 2)}},
		{Inputs: []behavior.ResourceItem{item("heat", -3)}, Outputs: []behavior.ResourceItem{item("temperature", 1)}},
	}}
	p := Build(b, Classify(b, nil), DefaultBudget(), false, nil)

	if !p.MultiRow || p.RowCount != 2 {
		t.Fatalf("MultiRow = %v RowCount = %d, want true/2", p.MultiRow, p.RowCount)
	}
	var or, arrows int
	for _, s := range p.Separators {
		switch s.Type {
		case SeparatorOr:
			or++
			if s.Row != 1 || s.Position != 0 {
				t.Errorf("or separator at %d/%d, want head of row 1", s.Row, s.Position)
			}
		case SeparatorArrow:
			arrows++
		}
	}
	if or != 1 || arrows != 2 {
		t.Errorf("or = %d arrows = %d, want 1 and 2", or, arrows)
	}
}

func TestBuildSingleRowChoices(t *testing.T) {
	b := behavior.Behavior{Choices: []behavior.Choice{
		{Outputs: []behavior.ResourceItem{item("plants", 1)}},
		{Outputs: []behavior.ResourceItem{item("heat", 2)}},
	}}
	p := Build(b, Classify(b, nil), DefaultBudget(), false, nil)

	if p.MultiRow || p.RowCount != 1 {
		t.Fatalf("MultiRow = %v RowCount = %d, want false/1", p.MultiRow, p.RowCount)
	}
	if len(p.Separators) != 1 || p.Separators[0].Type != SeparatorOr || p.Separators[0].Position != 1 {
		t.Errorf("Separators = %+v", p.Separators)
	}
}

func TestBuildEmptyBehavior(t *testing.T) {
	p := Build(behavior.Behavior{}, CategoryImmediateEffect, DefaultBudget(), false, nil)
	if p.RowCount != 0 || len(p.Rows) != 0 {
		t.Errorf("RowCount = %d, want 0", p.RowCount)
	}
}

func TestBuildRowCountInvariant(t *testing.T) {
	behaviors := []behavior.Behavior{
		{},
		{Outputs: []behavior.ResourceItem{item("plants", 3), item("heat", 3), item("steel", 3), item("energy", 3)}},
		{Triggers: trig(behavior.TriggerManual), Inputs: []behavior.ResourceItem{item("credits", -3), item("steel", -3)}, Outputs: []behavior.ResourceItem{item("plants", 3)}},
		{Triggers: trig(behavior.TriggerAuto), Outputs: []behavior.ResourceItem{item("heat-production", 2)}},
		{Outputs: []behavior.ResourceItem{item("discount", 2)}},
		{Triggers: trig(behavior.TriggerManual), Inputs: []behavior.ResourceItem{item("credits", -3)}, Outputs: []behavior.ResourceItem{item("steel-production", 1)}},
		{Triggers: trig(behavior.TriggerManual), Inputs: []behavior.ResourceItem{item("energy", -2)}, Outputs: []behavior.ResourceItem{item("plants", 2)}},
	}
	for i, b := range behaviors {
		for _, compact := range []bool{false, true} {
			p := Build(b, Classify(b, catalog.Default()), DefaultBudget(), compact, catalog.Default())
			if p.RowCount != len(p.Rows) {
				t.Errorf("behavior %d: RowCount = %d, len(Rows) = %d", i, p.RowCount, len(p.Rows))
			}
			if p.MultiRow && p.RowCount < 2 {
				t.Errorf("behavior %d: multi-row plan has %d rows", i, p.RowCount)
			}
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       Budget
		wantErr bool
	}{
		{"default", DefaultBudget(), false},
		{"wide", Budget{RowUnits: 9, SideUnits: 4, CardRows: 5}, false},
		{"sides too wide", Budget{RowUnits: 7, SideUnits: 4, CardRows: 4}, true},
		{"no rows", Budget{RowUnits: 7, SideUnits: 3, CardRows: 0}, true},
		{"tiny row", Budget{RowUnits: 2, SideUnits: 1, CardRows: 4}, true},
		{"narrowest", Budget{RowUnits: 5, SideUnits: 2, CardRows: 1}, false},
		{"side narrower than a per-condition item", Budget{RowUnits: 3, SideUnits: 1, CardRows: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBudgetWithDefaults(t *testing.T) {
	got := Budget{RowUnits: 5}.WithDefaults()
	if got.SideUnits != 2 || got.CardRows != DefaultCardRows {
		t.Errorf("WithDefaults() = %+v, want side 2 and %d rows", got, DefaultCardRows)
	}
}
