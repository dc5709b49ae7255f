package layout

import (
	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
)

// Plan is the row layout of one behavior.
type Plan struct {
	Category   Category        `json:"category"`
	Rows       [][]DisplayInfo `json:"rows"`
	Separators []Separator     `json:"separators,omitempty"`
	RowCount   int             `json:"rowCount"`
	Units      int             `json:"units"`
	MultiRow   bool            `json:"multiRow"`

	// Split is set for two-sided action rows; SplitAt holds per row the
	// number of leading items that belong to the input side.
	Split   bool  `json:"split,omitempty"`
	SplitAt []int `json:"splitAt,omitempty"`
}

// Build analyzes and distributes b, which has already been classified as c.
func Build(b behavior.Behavior, c Category, budget Budget, forceCompact bool, r catalog.Resolver) Plan {
	budget = budget.WithDefaults()
	available := budget.RowUnits
	if c == CategoryManualAction && b.Variant() == behavior.VariantPlain &&
		len(b.Inputs) > 0 && len(b.Outputs) > 0 {
		available = budget.SideUnits
	}

	d := AnalyzeBehavior(b, available, forceCompact, r)
	req := ComputeRequirement(c, d, budget)
	return Distribute(c, d, req, budget)
}

// Distribute lays analyzed items out in rows.
//
// A behavior that fits its budget takes one row. Otherwise:
//   - plain manual actions pack each side into its own column stack and zip
//     them; when both stacks are one row high, the inputs take the first row
//     and the outputs follow on the next with the arrow at their head
//   - choice-bearing behaviors pack each choice as its own group of rows
//   - other categories pack inputs first, then outputs alone against the full
//     row budget with the category's separator at the head of the outputs
func Distribute(c Category, d Displays, req Requirement, budget Budget) Plan {
	budget = budget.WithDefaults()
	p := Plan{Category: c, Units: req.Units, MultiRow: req.MultiRow}

	switch {
	case !req.MultiRow:
		p.Rows, p.Separators = singleRow(c, d)
	case len(d.Choices) > 0:
		p.Rows, p.Separators = choiceRows(d.Choices, budget.RowUnits)
	case isSplit(c, d):
		p.Rows, p.SplitAt = PackSplit(d.Inputs, d.Outputs, budget.SideUnits)
		p.Split = true
		p.Separators = []Separator{{Type: SeparatorArrow, Row: 0, Position: p.SplitAt[0]}}
		if len(p.Rows) == 1 {
			p.Rows, p.SplitAt, p.Separators = stackedSplit(d.Inputs, d.Outputs, budget.SideUnits)
		}
	default:
		p.Rows, p.Separators = headedRows(c, d, budget.RowUnits)
	}

	if !req.MultiRow && isSplit(c, d) && len(p.Rows) > 0 {
		p.Split = true
		p.SplitAt = []int{len(d.Inputs)}
	}
	p.RowCount = len(p.Rows)
	return p
}

// singleRow places every item in one row.
func singleRow(c Category, d Displays) ([][]DisplayInfo, []Separator) {
	var (
		row  []DisplayInfo
		seps []Separator
	)
	if len(d.Choices) > 0 {
		for i, ch := range d.Choices {
			if i > 0 {
				seps = append(seps, Separator{Type: SeparatorOr, Position: len(row)})
			}
			row = append(row, ch.Inputs...)
			if len(ch.Inputs) > 0 && len(ch.Outputs) > 0 {
				seps = append(seps, Separator{Type: SeparatorArrow, Position: len(row)})
			}
			row = append(row, ch.Outputs...)
		}
	} else {
		row = append(row, d.Inputs...)
		if t := separatorFor(c, len(d.Inputs) > 0, len(d.Outputs) > 0); t != "" {
			seps = append(seps, Separator{Type: t, Position: len(row)})
		}
		row = append(row, d.Outputs...)
	}

	if len(row) == 0 && len(seps) == 0 {
		return nil, nil
	}
	return [][]DisplayInfo{row}, seps
}

// stackedSplit places the input rows above the output rows. The arrow heads
// the first output row.
func stackedSplit(inputs, outputs []DisplayInfo, side int) ([][]DisplayInfo, []int, []Separator) {
	left := Pack(inputs, side)
	right := Pack(outputs, side)

	rows := append(left, right...)
	split := make([]int, len(rows))
	for i := range left {
		split[i] = len(left[i])
	}
	return rows, split, []Separator{{Type: SeparatorArrow, Row: len(left), Position: 0}}
}

// choiceRows packs each choice as its own group of rows.
func choiceRows(choices []ChoiceDisplays, budget int) ([][]DisplayInfo, []Separator) {
	var (
		rows [][]DisplayInfo
		seps []Separator
	)
	for i, ch := range choices {
		var cells []cell
		if i > 0 {
			cells = append(cells, sepCell(SeparatorOr))
		}
		for _, it := range ch.Inputs {
			cells = append(cells, itemCell(it))
		}
		if len(ch.Inputs) > 0 && len(ch.Outputs) > 0 {
			cells = append(cells, sepCell(SeparatorArrow))
		}
		for _, it := range ch.Outputs {
			cells = append(cells, itemCell(it))
		}
		r, s := packCells(cells, budget, len(rows))
		rows = append(rows, r...)
		seps = append(seps, s...)
	}
	return rows, seps
}

// headedRows packs inputs, then outputs with the separator attached to the
// head of the output sequence.
func headedRows(c Category, d Displays, budget int) ([][]DisplayInfo, []Separator) {
	var rows [][]DisplayInfo
	if len(d.Inputs) > 0 {
		rows = Pack(d.Inputs, budget)
	}

	var cells []cell
	if t := separatorFor(c, len(d.Inputs) > 0, len(d.Outputs) > 0); t != "" {
		cells = append(cells, sepCell(t))
	}
	for _, it := range d.Outputs {
		cells = append(cells, itemCell(it))
	}
	out, seps := packCells(cells, budget, len(rows))
	return append(rows, out...), seps
}
