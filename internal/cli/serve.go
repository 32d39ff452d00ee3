package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracekit/tracekit/internal/server"
	"github.com/tracekit/tracekit/pkg/cache"
	"github.com/tracekit/tracekit/pkg/figstore"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string        // listen address
	redis    string        // Redis address; empty means file cache
	mongo    string        // MongoDB URI; empty means in-memory store
	mongoDB  string        // MongoDB database name
	cacheTTL time.Duration // TTL for cached scenes
	noCache  bool          // disable render caching
}

// serveCommand creates the serve command for running the HTTP rendering API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		mongoDB:  appName,
		cacheTTL: time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Serve runs the rendering engine as an HTTP API. Rendered scenes are
cached (Redis when --redis is set, otherwise a local file cache) and
figures can be persisted (MongoDB when --mongo is set, otherwise an
in-memory store).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the scene cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for the figure store (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "how long rendered scenes stay cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable scene caching")

	return cmd
}

// runServe wires the cache and store backends, starts the HTTP server, and
// shuts it down gracefully when the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	sceneCache, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = sceneCache.Close() }()

	store, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	srv := server.New(server.Options{
		Logger:   c.Logger,
		Cache:    sceneCache,
		Store:    store,
		CacheTTL: opts.cacheTTL,
	})

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("Listening", "addr", opts.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache builds the scene cache backend from the serve flags.
func (c *CLI) newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		c.Logger.Debug("Using Redis cache", "addr", opts.redis)
		return cache.NewRedisCache(ctx, opts.redis)
	}
	return newCache(false)
}

// newServeStore builds the figure store backend from the serve flags.
func (c *CLI) newServeStore(ctx context.Context, opts serveOpts) (figstore.Store, error) {
	if opts.mongo != "" {
		c.Logger.Debug("Using MongoDB store", "db", opts.mongoDB)
		return figstore.NewMongoStore(ctx, opts.mongo, opts.mongoDB)
	}
	return figstore.NewMemoryStore(), nil
}
