package behavior

import "testing"

func TestVariant(t *testing.T) {
	if got := (Behavior{}).Variant(); got != VariantPlain {
		t.Errorf("empty behavior variant = %s", got)
	}
	b := Behavior{Choices: []Choice{{Outputs: []ResourceItem{{Kind: "plants", Amount: 1}}}}}
	if got := b.Variant(); got != VariantChoices || got.String() != "choices" {
		t.Errorf("variant = %s, want choices", got)
	}
}

func TestFirstTrigger(t *testing.T) {
	if got := (Behavior{}).FirstTrigger(); got != "" {
		t.Errorf("FirstTrigger() = %q, want empty", got)
	}
	b := Behavior{Triggers: []Trigger{{Kind: TriggerAuto}, {Kind: TriggerManual}}}
	if got := b.FirstTrigger(); got != TriggerAuto {
		t.Errorf("FirstTrigger() = %q, want %q", got, TriggerAuto)
	}
}

func TestPerConditionRef(t *testing.T) {
	tests := []struct {
		p    *PerCondition
		want string
	}{
		{nil, ""},
		{&PerCondition{}, ""},
		{&PerCondition{Kind: "city-tile"}, "city-tile"},
		{&PerCondition{Kind: "city-tile", Tag: "building"}, "building"},
	}
	for _, tt := range tests {
		if got := tt.p.Ref(); got != tt.want {
			t.Errorf("Ref() = %q, want %q", got, tt.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Behavior{
		Triggers: []Trigger{{Kind: "city-placed", Condition: &TriggerCondition{Kind: "city-tile", AffectedTags: []string{"city"}}}},
		Inputs:   []ResourceItem{{Kind: "credits", Amount: -2, Per: &PerCondition{Tag: "building"}}},
		Outputs:  []ResourceItem{{Kind: "plants", Amount: 2, AffectedTags: []string{"plant"}}},
		Choices:  []Choice{{Outputs: []ResourceItem{{Kind: "heat", Amount: 3}}}},
	}
	c := orig.Clone()

	c.Triggers[0].Condition.AffectedTags[0] = "x"
	c.Inputs[0].Per.Tag = "x"
	c.Outputs[0].Amount = 9
	c.Outputs[0].AffectedTags[0] = "x"
	c.Choices[0].Outputs[0].Amount = 9

	if orig.Triggers[0].Condition.AffectedTags[0] != "city" {
		t.Error("trigger condition shared")
	}
	if orig.Inputs[0].Per.Tag != "building" {
		t.Error("per-condition shared")
	}
	if orig.Outputs[0].Amount != 2 || orig.Outputs[0].AffectedTags[0] != "plant" {
		t.Error("outputs shared")
	}
	if orig.Choices[0].Outputs[0].Amount != 3 {
		t.Error("choices shared")
	}
}

func TestCloneItemsNil(t *testing.T) {
	if CloneItems(nil) != nil {
		t.Error("CloneItems(nil) should stay nil")
	}
	if got := CloneItems([]ResourceItem{}); got == nil || len(got) != 0 {
		t.Errorf("CloneItems(empty) = %v, want empty non-nil", got)
	}
}
