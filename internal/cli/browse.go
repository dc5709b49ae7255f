package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive card browser.
func (c *CLI) browseCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "browse [cards.json]",
		Short: "Browse planned cards interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			cards, err := readCards(args[0], "")
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				printInfo("No cards in %s", args[0])
				return nil
			}

			opts := cfg.PipelineOptions()
			opts.Logger = c.Logger
			plans := make([]pipeline.CardLayoutPlan, len(cards))
			for i, card := range cards {
				plans[i] = pipeline.PlanCard(card.Behaviors, opts)
				plans[i].CardID = card.ID
			}

			_, err = tea.NewProgram(NewCardListModel(cards, plans), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "project file (default: cardlayout.toml/.yaml in the working directory)")

	return cmd
}

// =============================================================================
// CardListModel - Interactive card browser
// =============================================================================

// CardListModel is the bubbletea model for browsing planned cards.
type CardListModel struct {
	Cards   []behavior.Card
	Plans   []pipeline.CardLayoutPlan
	Cursor  int
	Height  int
	Offset  int
	Preview bool
}

// NewCardListModel creates a card list over cards and their plans, which
// must be in the same order.
func NewCardListModel(cards []behavior.Card, plans []pipeline.CardLayoutPlan) CardListModel {
	return CardListModel{
		Cards:   cards,
		Plans:   plans,
		Height:  10,
		Preview: true,
	}
}

func (m CardListModel) Init() tea.Cmd {
	return nil
}

func (m CardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Cards)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Preview = !m.Preview
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height/2-4, 3)
	}
	return m, nil
}

func (m CardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cards"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ toggle preview  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Cards))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		card, plan := m.Cards[i], m.Plans[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := card.Name
		if name == "" {
			name = "—"
		}
		rows = append(rows, []string{
			cursor,
			card.ID,
			name,
			fmt.Sprintf("%d", len(plan.PerBehavior)),
			fmt.Sprintf("%d/%d", plan.TotalEstimatedRows, plan.RowBudget),
			planStatus(plan),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Behaviors", "Rows", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			idx := m.Offset + row
			if idx >= len(m.Plans) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			if col == 5 {
				return base.Foreground(statusColor(m.Plans[idx]))
			}
			if idx == m.Cursor {
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Cards))))

	if m.Preview && m.Cursor < len(m.Cards) {
		b.WriteString("\n\n")
		b.WriteString(renderCard(m.Cards[m.Cursor], m.Plans[m.Cursor]))
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func planStatus(p pipeline.CardLayoutPlan) string {
	switch {
	case p.Clipped:
		return "clipped"
	case p.Compacted:
		return "compacted"
	case p.Overflow:
		return "overflow"
	default:
		return "fits"
	}
}

func statusColor(p pipeline.CardLayoutPlan) lipgloss.Color {
	switch {
	case p.Clipped:
		return colorRed
	case p.Overflow:
		return colorYellow
	default:
		return colorGreen
	}
}
