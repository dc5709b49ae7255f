package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/layout"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// cardWidth is the inner width of a previewed card in terminal cells.
const cardWidth = 36

var (
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(cardWidth)
	styleCardOverflow = styleCard.BorderForeground(colorYellow)
	styleCardClipped  = styleCard.BorderForeground(colorRed)

	styleCategory  = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
	styleSeparator = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleNegative  = lipgloss.NewStyle().Foreground(colorRed)
	styleToken     = lipgloss.NewStyle().Foreground(colorYellow)
)

var separatorGlyphs = map[layout.SeparatorType]string{
	layout.SeparatorArrow: "→",
	layout.SeparatorColon: ":",
	layout.SeparatorOr:    "or",
}

// previewCommand creates the preview command that draws planned cards.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		cardID     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "preview [cards.json]",
		Short: "Draw planned cards in the terminal",
		Long: `Draw planned cards in the terminal.

Each behavior is drawn row by row with its separators. Individually displayed
amounts repeat a dot per icon; numeric amounts show the number once. The card
border turns amber when the plan overflowed and was compacted, and red when it
still does not fit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			cards, err := readCards(args[0], cardID)
			if err != nil {
				return err
			}

			opts := cfg.PipelineOptions()
			opts.Logger = c.Logger
			for _, card := range cards {
				plan := pipeline.PlanCard(card.Behaviors, opts)
				plan.CardID = card.ID
				fmt.Println(renderCard(card, plan))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cardID, "card", "", "preview only the card with this id")
	_ = cmd.RegisterFlagCompletionFunc("card", completeCardIDs)
	cmd.Flags().StringVar(&configPath, "config", "", "project file (default: cardlayout.toml/.yaml in the working directory)")

	return cmd
}

// =============================================================================
// Card Rendering
// =============================================================================

// renderCard draws one planned card as a bordered box.
func renderCard(card behavior.Card, plan pipeline.CardLayoutPlan) string {
	var b strings.Builder

	title := card.Name
	if title == "" {
		title = card.ID
	}
	b.WriteString(StyleTitle.Render(title))

	for _, bp := range plan.PerBehavior {
		b.WriteString("\n")
		b.WriteString(styleCategory.Render(string(bp.Category)))
		for r := range bp.Plan.Rows {
			b.WriteString("\n  ")
			b.WriteString(renderRow(bp.Plan, r))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(footer(plan)))

	style := styleCard
	switch {
	case plan.Clipped:
		style = styleCardClipped
	case plan.Overflow:
		style = styleCardOverflow
	}
	return style.Render(b.String())
}

// footer summarizes row usage.
func footer(plan pipeline.CardLayoutPlan) string {
	s := fmt.Sprintf("%d/%d rows", plan.TotalEstimatedRows, plan.RowBudget)
	switch {
	case plan.Clipped:
		s += " · clipped"
	case plan.Compacted:
		s += fmt.Sprintf(" · compacted from %d", plan.UncompactedRows)
	}
	return s
}

// renderRow draws row r of p with its separators in place.
func renderRow(p layout.Plan, r int) string {
	row := p.Rows[r]
	var parts []string
	sepAt := func(pos int) {
		for _, s := range p.Separators {
			if s.Row == r && s.Position == pos {
				parts = append(parts, styleSeparator.Render(separatorGlyphs[s.Type]))
			}
		}
	}
	for i, d := range row {
		sepAt(i)
		parts = append(parts, renderItem(d))
	}
	sepAt(len(row))
	return strings.Join(parts, " ")
}

// renderItem draws one display item.
func renderItem(d layout.DisplayInfo) string {
	if d.Token != "" {
		return styleToken.Render(d.Token)
	}

	var s string
	switch d.Mode {
	case layout.ModeIndividual:
		s = d.Kind + " " + strings.Repeat("●", d.Units)
	default:
		s = fmt.Sprintf("%d %s", d.Amount, d.Kind)
	}
	if d.Condition != "" {
		s += " / " + d.Condition
	}
	if d.Target == behavior.TargetAnyPlayer {
		s += "*"
	}
	if d.Negative {
		return styleNegative.Render(s)
	}
	return StyleValue.Render(s)
}
