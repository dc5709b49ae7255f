package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cardlayout/pkg/layout"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	output     string // output file; "-" writes to stdout
	format     string // json or yaml
	cardID     string // plan only this card
	configPath string // project file
	noCache    bool
	refresh    bool
	workers    int
	budget     layout.Budget // zero fields keep the project budget
}

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [cards.json]",
		Short: "Plan icon layouts for a card file",
		Long: `Plan icon layouts for a card file.

The input is a JSON card object or an array of cards. Every card is planned
against the space budget: behaviors are classified, their items sized and
packed into rows, and cards that do not fit are compacted once.

The project file (cardlayout.toml or cardlayout.yaml) may override the budget,
add resource kinds, and select the cache backend. Plans are cached, so
unchanged cards are not planned again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: <input>.plan.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, yaml")
	cmd.Flags().StringVar(&opts.cardID, "card", "", "plan only the card with this id")
	_ = cmd.RegisterFlagCompletionFunc("card", completeCardIDs)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "project file (default: cardlayout.toml/.yaml in the working directory)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached plans and replan")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", pipeline.DefaultWorkers, "cards planned concurrently")
	cmd.Flags().IntVar(&opts.budget.RowUnits, "row-units", 0, "icon units per row")
	cmd.Flags().IntVar(&opts.budget.SideUnits, "side-units", 0, "icon units per side of an action row")
	cmd.Flags().IntVar(&opts.budget.CardRows, "card-rows", 0, "rows available on a card")

	return cmd
}

// runPlan loads the cards, plans them, and writes the result.
func (c *CLI) runPlan(ctx context.Context, input string, opts planOpts) error {
	cfg, baseDir, err := c.loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cards, err := readCards(input, opts.cardID)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, baseDir, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := cfg.PipelineOptions()
	popts.Budget = overrideBudget(popts.Budget, opts.budget)
	popts.Refresh = opts.refresh
	popts.Workers = opts.workers
	popts.Logger = c.Logger

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, planningMessage(len(cards)))
	spinner.Start()

	plans, stats, err := runner.PlanCards(ctx, cards, popts)
	if err != nil {
		spinner.StopWithError("Planning failed")
		return fmt.Errorf("plan cards: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Planned %d cards", stats.Cards))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".plan." + opts.format
	}

	if outputPath == "-" {
		return writePlans(os.Stdout, plans, opts.format)
	}
	if err := writePlansFile(outputPath, plans, opts.format); err != nil {
		return err
	}

	printSuccess("Plans complete")
	printFile(outputPath)
	printStats(stats)
	for _, p := range plans {
		if p.Clipped {
			printWarning("%s needs %d of %d rows", p.CardID, p.TotalEstimatedRows, p.RowBudget)
		}
	}
	printNewline()
	printNextStep("Preview", appName+" preview "+input)

	return nil
}

// overrideBudget replaces the non-zero fields of base with those of flags.
func overrideBudget(base, flags layout.Budget) layout.Budget {
	if flags.RowUnits > 0 {
		base.RowUnits = flags.RowUnits
	}
	if flags.SideUnits > 0 {
		base.SideUnits = flags.SideUnits
	}
	if flags.CardRows > 0 {
		base.CardRows = flags.CardRows
	}
	return base
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be 'json' or 'yaml')", format)
	}
}

// writePlans encodes plans to w in the given format.
func writePlans(w io.Writer, plans []pipeline.CardLayoutPlan, format string) error {
	if format == formatYAML {
		// Round-trip through JSON so YAML keys match the JSON field names.
		data, err := json.Marshal(plans)
		if err != nil {
			return fmt.Errorf("encode plans: %w", err)
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("encode plans: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode plans: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plans); err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	return nil
}

func writePlansFile(path string, plans []pipeline.CardLayoutPlan, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writePlans(f, plans, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
