// Package server exposes card planning over HTTP.
//
// Routes:
//
//	GET  /healthz      liveness and build information
//	GET  /v1/catalog   the kind catalog in use
//	POST /v1/plan      plan one card or a batch of cards
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with a status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// Server serves the planning API.
type Server struct {
	cfg     Config
	runner  *pipeline.Runner
	opts    pipeline.Options
	catalog *catalog.Catalog
	logger  *log.Logger
}

// New creates a server. opts supplies the default budget for requests that
// don't set one; cat is the catalog used for every plan.
func New(cfg Config, runner *pipeline.Runner, opts pipeline.Options, cat *catalog.Catalog, logger *log.Logger) *Server {
	cfg.setDefaults()
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	opts.Catalog = cat
	opts.Logger = logger
	return &Server{
		cfg:     cfg,
		runner:  runner,
		opts:    opts,
		catalog: cat,
		logger:  logger,
	}
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.With(middleware.AllowContentType("application/json")).Post("/plan", s.handlePlan)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
