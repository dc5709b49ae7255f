// Package cli implements the cardlayout command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/buildinfo"
	"github.com/matzehuels/cardlayout/pkg/cache"
	"github.com/matzehuels/cardlayout/pkg/config"
	apperr "github.com/matzehuels/cardlayout/pkg/errors"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardlayout"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cardlayout plans icon layouts for game cards",
		Long:         `Cardlayout classifies card behaviors and plans how their resource icons are arranged in rows, so every card fits its fixed surface.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Project Configuration
// =============================================================================

// loadConfig loads the project file at path, or looks for one in the
// working directory when path is empty. It returns the directory relative
// cache paths resolve against.
func (c *CLI) loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(path), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), ".", nil
	}
	cfg, found, err := config.LoadOrDefault(wd)
	if err != nil {
		return nil, "", err
	}
	if found != "" {
		c.Logger.Debug("using project file", "path", found)
	}
	return cfg, wd, nil
}

// readCards reads a card file and keeps only the card with id when set.
func readCards(path, id string) ([]behavior.Card, error) {
	cards, err := behavior.ReadCardsFile(path)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return cards, nil
	}
	for _, card := range cards {
		if card.ID == id {
			return []behavior.Card{card}, nil
		}
	}
	return nil, apperr.New(apperr.ErrCodeCardNotFound, "card %q not found in %s", id, path)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, baseDir string, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, cfg, baseDir, noCache)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("plan cache", "backend", cache.BackendOf(store))
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache opens the configured backend. Without one, plans are cached on
// disk under the user cache directory.
func newCache(ctx context.Context, cfg *config.Config, baseDir string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg != nil && cfg.Cache.Backend != "" {
		settings := cfg.CacheSettings(baseDir)
		if settings.Backend == cache.BackendFile && settings.Dir == "" {
			settings.Dir, _ = cacheDir()
		}
		return cache.Open(ctx, settings)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cardlayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
