package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/catalog"
)

// catalogCommand creates the catalog command listing known kinds.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		configPath string
		asJSON     bool
		class      string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the known resource kinds",
		Long: `List the known resource kinds with their icons and classes.

Kinds added in the project file are included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			descs := filterClass(cfg.Catalog(nil).Descriptors(), catalog.Class(class))
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(descs)
			}
			return writeCatalogTable(os.Stdout, descs)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "project file (default: cardlayout.toml/.yaml in the working directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().StringVar(&class, "class", "", "only kinds of this class")

	return cmd
}

func filterClass(descs []catalog.Descriptor, class catalog.Class) []catalog.Descriptor {
	if class == "" {
		return descs
	}
	var out []catalog.Descriptor
	for _, d := range descs {
		if d.Class == class {
			out = append(out, d)
		}
	}
	return out
}

func writeCatalogTable(w io.Writer, descs []catalog.Descriptor) error {
	rows := make([][]string, len(descs))
	for i, d := range descs {
		rows[i] = []string{d.Kind, string(d.Class), d.Icon}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Class", "Icon").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(classColor(catalog.Class(rows[row][1])))
			case col == 2:
				return StyleDim
			}
			return StyleValue
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func classColor(c catalog.Class) lipgloss.Color {
	switch c {
	case catalog.ClassProduction:
		return colorGreen
	case catalog.ClassDiscount:
		return colorYellow
	case catalog.ClassGlobal, catalog.ClassTile:
		return colorBlue
	default:
		return colorGray
	}
}
