package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the plan cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cachePruneCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			defer fc.Close()

			count, err := fc.Clear()
			if err != nil {
				return err
			}

			printSuccess("Cleared %d cached plans", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// cachePruneCommand creates the "cache prune" subcommand for SQLite caches.
func (c *CLI) cachePruneCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "prune [cache.db]",
		Short: "Remove expired plans from a SQLite cache",
		Long: `Remove expired plans from a SQLite cache.

Without an argument the SQLite path of the project file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, baseDir, err := c.loadConfig(configPath)
				if err != nil {
					return err
				}
				path = cfg.CacheSettings(baseDir).SQLitePath
			}
			if path == "" {
				return fmt.Errorf("no SQLite cache given and none configured")
			}
			return runPrune(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "project file (default: cardlayout.toml/.yaml in the working directory)")

	return cmd
}

func runPrune(ctx context.Context, path string) error {
	sc, err := cache.NewSQLiteCache(path)
	if err != nil {
		return err
	}
	defer sc.Close()

	n, err := sc.Prune(ctx)
	if err != nil {
		return fmt.Errorf("prune %s: %w", path, err)
	}
	printSuccess("Removed %d expired plans", n)
	printDetail("Database: %s", path)
	return nil
}
