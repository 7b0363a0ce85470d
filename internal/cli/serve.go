package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stableset/internal/server"
	"github.com/matzehuels/stableset/pkg/archive"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // HTTP listen address
	archiveURI string // MongoDB URI, empty for in-memory archive
	noCache    bool   // disable caching
}

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline over HTTP",
		Long: `Serve the analysis pipeline over HTTP.

POST a profile to /api/analyses to run and archive an analysis, then fetch
it again by ID. Without --archive-uri, analyses are archived in memory and
lost on restart.

Examples:
  stableset serve
  stableset serve --addr :9090 --archive-uri mongodb://localhost:27017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", c.Config.Server.Listen, "HTTP listen address")
	cmd.Flags().StringVar(&opts.archiveURI, "archive-uri", c.Config.Server.ArchiveURI, "MongoDB URI for the analysis archive (in-memory if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	store, err := c.newArchive(ctx, opts.archiveURI)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(shutdownCtx)
	}()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(runner, store, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newArchive picks the archive store for the serve command.
func (c *CLI) newArchive(ctx context.Context, uri string) (archive.Store, error) {
	if uri == "" {
		c.Logger.Warn("no archive URI configured, analyses are archived in memory only")
		return archive.NewMemoryStore(), nil
	}
	return archive.NewMongoStore(ctx, uri)
}
