package layout

import (
	apperr "github.com/matzehuels/cardlayout/pkg/errors"
)

// Default space budgets.
const (
	// DefaultRowUnits is the width of a free-form row in icon-units.
	DefaultRowUnits = 7

	// DefaultSideUnits is the width of one side of a split action row.
	DefaultSideUnits = 3

	// DefaultCardRows is the number of rows a card surface shows.
	DefaultCardRows = 4
)

// Budget holds the space constants the planner works against.
type Budget struct {
	RowUnits  int `json:"rowUnits" toml:"row_units" yaml:"row_units"`
	SideUnits int `json:"sideUnits" toml:"side_units" yaml:"side_units"`
	CardRows  int `json:"cardRows" toml:"card_rows" yaml:"card_rows"`
}

// DefaultBudget returns the standard card budget.
func DefaultBudget() Budget {
	return Budget{
		RowUnits:  DefaultRowUnits,
		SideUnits: DefaultSideUnits,
		CardRows:  DefaultCardRows,
	}
}

// WithDefaults fills zero fields from [DefaultBudget].
func (b Budget) WithDefaults() Budget {
	d := DefaultBudget()
	if b.RowUnits <= 0 {
		b.RowUnits = d.RowUnits
	}
	if b.SideUnits <= 0 {
		b.SideUnits = min(d.SideUnits, (b.RowUnits-1)/2)
	}
	if b.CardRows <= 0 {
		b.CardRows = d.CardRows
	}
	return b
}

// Validate checks that the two sides of a split row plus the separator fit
// inside a free row, and that a side is wide enough for the widest
// single item.
func (b Budget) Validate() error {
	if b.RowUnits < 3 {
		return apperr.New(apperr.ErrCodeInvalidBudget, "row_units must be at least 3, got %d", b.RowUnits)
	}
	if b.SideUnits < perConditionUnits {
		return apperr.New(apperr.ErrCodeInvalidBudget,
			"side_units must be at least %d, got %d", perConditionUnits, b.SideUnits)
	}
	if 2*b.SideUnits+1 > b.RowUnits {
		return apperr.New(apperr.ErrCodeInvalidBudget,
			"two sides of %d units plus a separator exceed row_units %d", b.SideUnits, b.RowUnits)
	}
	if b.CardRows < 1 {
		return apperr.New(apperr.ErrCodeInvalidBudget, "card_rows must be at least 1, got %d", b.CardRows)
	}
	return nil
}
