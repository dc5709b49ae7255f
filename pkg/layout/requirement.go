package layout

// separatorUnits is the width of one separator glyph.
const separatorUnits = 1

// Requirement is the horizontal space a behavior needs.
type Requirement struct {
	InputUnits     int `json:"inputUnits"`
	OutputUnits    int `json:"outputUnits"`
	SeparatorUnits int `json:"separatorUnits"`
	Units          int `json:"units"`

	// Budget is the width Units was compared against.
	Budget   int  `json:"budget"`
	MultiRow bool `json:"multiRow"`
}

// ComputeRequirement sums the layout cost of a behavior under its category.
//
// Choice-bearing behaviors cost each choice's inputs and outputs, one
// separator inside each choice that has both sides and one separator between
// adjacent choices. Plain behaviors cost inputs, outputs and one separator
// when the category draws one.
//
// Plain manual actions with both sides are measured against the split budget,
// everything else against the free-row budget.
func ComputeRequirement(c Category, d Displays, budget Budget) Requirement {
	budget = budget.WithDefaults()

	var req Requirement
	if len(d.Choices) > 0 {
		for i, ch := range d.Choices {
			in, out := SumUnits(ch.Inputs), SumUnits(ch.Outputs)
			req.InputUnits += in
			req.OutputUnits += out
			if len(ch.Inputs) > 0 && len(ch.Outputs) > 0 {
				req.SeparatorUnits += separatorUnits
			}
			if i > 0 {
				req.SeparatorUnits += separatorUnits
			}
		}
		req.Budget = budget.RowUnits
	} else {
		req.InputUnits = SumUnits(d.Inputs)
		req.OutputUnits = SumUnits(d.Outputs)
		if separatorFor(c, len(d.Inputs) > 0, len(d.Outputs) > 0) != "" {
			req.SeparatorUnits = separatorUnits
		}
		req.Budget = budget.RowUnits
		if isSplit(c, d) {
			req.Budget = budget.SideUnits
		}
	}

	req.Units = req.InputUnits + req.SeparatorUnits + req.OutputUnits
	req.MultiRow = req.Units > req.Budget
	return req
}

// isSplit reports whether d lays out as a two-sided action row.
func isSplit(c Category, d Displays) bool {
	return c == CategoryManualAction && len(d.Choices) == 0 &&
		len(d.Inputs) > 0 && len(d.Outputs) > 0
}
