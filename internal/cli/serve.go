package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/internal/server"
	"github.com/matzehuels/cardlayout/pkg/cache"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		cacheBackend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP planning service",
		Long: `Run the HTTP planning service.

Settings are read from CARDLAYOUT_* environment variables; flags override
them. CARDLAYOUT_CONFIG points to a project file with the budget and extra
kinds. The cache backend is one of none, file, sqlite, redis or mongo.

Routes:
  GET  /healthz
  GET  /v1/catalog
  POST /v1/plan`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if cacheBackend != "" {
				cfg.CacheBackend = cacheBackend
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: $CARDLAYOUT_ADDR or :8080)")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "cache backend: none, file, sqlite, redis, mongo")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg server.Config) error {
	project, _, err := c.loadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}

	cc := cfg.CacheConfig()
	if cc.Backend == cache.BackendFile && cc.Dir == "" {
		cc.Dir, _ = cacheDir()
	}
	store, err := cache.Open(ctx, cc)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	cat := project.Catalog(nil)
	opts := project.PipelineOptions()
	c.Logger.Info("starting server",
		"addr", cfg.Addr,
		"cache", cache.BackendOf(store),
		"kinds", cat.Len(),
		"row_units", opts.Budget.RowUnits)

	return server.New(cfg, runner, opts, cat, c.Logger).ListenAndServe(ctx)
}
