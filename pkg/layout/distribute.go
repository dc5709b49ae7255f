package layout

// SeparatorType is the glyph drawn between groups of items.
type SeparatorType string

const (
	// SeparatorArrow separates cost from benefit in actions and choices.
	SeparatorArrow SeparatorType = "arrow"
	// SeparatorColon separates a condition from its effect.
	SeparatorColon SeparatorType = "colon"
	// SeparatorOr separates alternative choices.
	SeparatorOr SeparatorType = "or"
)

// Separator marks a glyph drawn in row Row before item Position.
// Position equal to the row length means after the last item.
type Separator struct {
	Type     SeparatorType `json:"type"`
	Row      int           `json:"row"`
	Position int           `json:"position"`
}

// Pack distributes items into rows of at most budget units.
//
// Packing is greedy and order preserving: items are appended to the current
// row until the next one would not fit, then a new row starts with it. An item
// wider than the budget gets a row of its own. Items are never split or
// reordered, so concatenating the rows reproduces items exactly.
func Pack(items []DisplayInfo, budget int) [][]DisplayInfo {
	cells := make([]cell, len(items))
	for i, it := range items {
		cells[i] = itemCell(it)
	}
	rows, _ := packCells(cells, budget, 0)
	return rows
}

// cell is one packable unit: an item or a separator.
type cell struct {
	item  DisplayInfo
	sep   SeparatorType
	units int
}

func itemCell(it DisplayInfo) cell { return cell{item: it, units: it.Cost()} }

func sepCell(t SeparatorType) cell { return cell{sep: t, units: separatorUnits} }

// packCells packs cells greedily starting at row index firstRow and returns
// the item rows plus the separators with their positions.
func packCells(cells []cell, budget, firstRow int) ([][]DisplayInfo, []Separator) {
	var (
		rows  [][]DisplayInfo
		seps  []Separator
		row   []DisplayInfo
		used  int
		empty = true
	)
	flush := func() {
		rows = append(rows, row)
		row, used, empty = nil, 0, true
	}

	for _, c := range cells {
		if !empty && used+c.units > budget {
			flush()
		}
		if c.sep != "" {
			seps = append(seps, Separator{Type: c.sep, Row: firstRow + len(rows), Position: len(row)})
		} else {
			row = append(row, c.item)
		}
		used += c.units
		empty = false
	}
	if !empty {
		flush()
	}
	return rows, seps
}

// PackSplit packs inputs and outputs into two column stacks of side units
// each and zips them, so row i holds input-row i followed by output-row i.
// A side with fewer rows leaves later rows empty on that side.
//
// The returned split slice holds, per row, how many of the row's items are
// inputs.
func PackSplit(inputs, outputs []DisplayInfo, side int) (rows [][]DisplayInfo, split []int) {
	left := Pack(inputs, side)
	right := Pack(outputs, side)

	n := max(len(left), len(right))
	rows = make([][]DisplayInfo, n)
	split = make([]int, n)
	for i := 0; i < n; i++ {
		var row []DisplayInfo
		if i < len(left) {
			row = append(row, left[i]...)
		}
		split[i] = len(row)
		if i < len(right) {
			row = append(row, right[i]...)
		}
		rows[i] = row
	}
	return rows, split
}
