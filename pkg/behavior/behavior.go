// Package behavior defines the card effect records the layout engine plans.
//
// A [Behavior] bundles optional triggers, inputs, outputs and choices. The
// records mirror the card data format of the game server, so card files can
// be decoded directly with [ReadCards] or [ReadCardsFile].
//
// Records are plain values. Every transformation in the layout engine copies
// them; nothing mutates a caller's slice.
package behavior

// TriggerKind says when a behavior activates.
type TriggerKind string

// Trigger kinds known to the engine. Any other value is a conditional trigger.
const (
	TriggerManual TriggerKind = "manual"
	TriggerAuto   TriggerKind = "auto"
)

// TargetType scopes a resource item to a player.
type TargetType string

// Targeting scopes.
const (
	TargetNone       TargetType = ""
	TargetSelfPlayer TargetType = "self-player"
	TargetSelfCard   TargetType = "self-card"
	TargetAnyPlayer  TargetType = "any-player"
	TargetOpponent   TargetType = "opponent"
	TargetAny        TargetType = "any"
)

// PerCondition scales an amount by a count of some other game element,
// e.g. "1 credits-production per 2 building tags".
type PerCondition struct {
	Kind     string     `json:"type,omitempty"`
	Tag      string     `json:"tag,omitempty"`
	Amount   int        `json:"amount,omitempty"`
	Location string     `json:"location,omitempty"`
	Target   TargetType `json:"target,omitempty"`
}

// Ref returns the tag or kind the condition counts, preferring the tag.
// It is empty when the condition references nothing.
func (p *PerCondition) Ref() string {
	if p == nil {
		return ""
	}
	if p.Tag != "" {
		return p.Tag
	}
	return p.Kind
}

// ResourceItem is one resource amount shown on a card.
type ResourceItem struct {
	Kind          string        `json:"type"`
	Amount        int           `json:"amount"`
	Target        TargetType    `json:"target,omitempty"`
	AffectedTags  []string      `json:"affectedTags,omitempty"`
	Per           *PerCondition `json:"per,omitempty"`
	ForcedDensity bool          `json:"forcedDensity,omitempty"`
}

// TriggerCondition describes a conditional trigger. The engine treats it as opaque.
type TriggerCondition struct {
	Kind         string   `json:"type"`
	Location     string   `json:"location,omitempty"`
	AffectedTags []string `json:"affectedTags,omitempty"`
}

// Trigger describes when a behavior activates.
type Trigger struct {
	Kind      TriggerKind       `json:"type"`
	Condition *TriggerCondition `json:"condition,omitempty"`
}

// Choice is one alternative of a choice-bearing behavior.
type Choice struct {
	Inputs  []ResourceItem `json:"inputs,omitempty"`
	Outputs []ResourceItem `json:"outputs,omitempty"`
}

// Variant discriminates plain behaviors from choice-bearing ones.
type Variant int

const (
	VariantPlain Variant = iota
	VariantChoices
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantChoices {
		return "choices"
	}
	return "plain"
}

// Behavior is one card-effect unit.
type Behavior struct {
	Triggers []Trigger      `json:"triggers,omitempty"`
	Inputs   []ResourceItem `json:"inputs,omitempty"`
	Outputs  []ResourceItem `json:"outputs,omitempty"`
	Choices  []Choice       `json:"choices,omitempty"`
}

// Variant reports whether b carries choices.
func (b Behavior) Variant() Variant {
	if len(b.Choices) > 0 {
		return VariantChoices
	}
	return VariantPlain
}

// FirstTrigger returns the kind of the first trigger, or "" without triggers.
func (b Behavior) FirstTrigger() TriggerKind {
	if len(b.Triggers) == 0 {
		return ""
	}
	return b.Triggers[0].Kind
}

// Clone returns a deep copy of b.
func (b Behavior) Clone() Behavior {
	out := Behavior{
		Inputs:  CloneItems(b.Inputs),
		Outputs: CloneItems(b.Outputs),
	}
	if b.Triggers != nil {
		out.Triggers = make([]Trigger, len(b.Triggers))
		for i, t := range b.Triggers {
			out.Triggers[i] = t
			if t.Condition != nil {
				c := *t.Condition
				c.AffectedTags = cloneStrings(c.AffectedTags)
				out.Triggers[i].Condition = &c
			}
		}
	}
	if b.Choices != nil {
		out.Choices = make([]Choice, len(b.Choices))
		for i, c := range b.Choices {
			out.Choices[i] = Choice{Inputs: CloneItems(c.Inputs), Outputs: CloneItems(c.Outputs)}
		}
	}
	return out
}

// CloneItems returns a deep copy of items. A nil slice stays nil.
func CloneItems(items []ResourceItem) []ResourceItem {
	if items == nil {
		return nil
	}
	out := make([]ResourceItem, len(items))
	for i, it := range items {
		out[i] = it
		out[i].AffectedTags = cloneStrings(it.AffectedTags)
		if it.Per != nil {
			p := *it.Per
			out[i].Per = &p
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Card is a playable card with its behaviors.
type Card struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type,omitempty"`
	Cost      int        `json:"cost,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Behaviors []Behavior `json:"behaviors,omitempty"`
}
