package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pegflow/daxport/internal/server"
	"github.com/pegflow/daxport/pkg/cache"
	"github.com/pegflow/daxport/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	storeKind string        // workflow store backend: "memory" or "mongo"
	mongoURI  string        // MongoDB connection string
	mongoDB   string        // MongoDB database name
	cacheKind string        // render cache backend: "memory", "file", "redis", "none"
	cacheDir  string        // directory for the file cache
	redisAddr string        // Redis server address
	cacheTTL  time.Duration // render cache entry lifetime
}

// newServeCmd creates the serve command that runs the HTTP rendering and
// workflow storage service.
//
// Default settings:
//   - addr: :8080
//   - store: memory (use --store mongo for durable storage)
//   - cache: memory with a 1h TTL
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:      envOr("DAXPORT_ADDR", ":8080"),
		storeKind: "memory",
		mongoURI:  envOr("DAXPORT_MONGO_URI", "mongodb://localhost:27017"),
		mongoDB:   envOr("DAXPORT_MONGO_DB", "daxport"),
		cacheKind: "memory",
		redisAddr: envOr("DAXPORT_REDIS_ADDR", "localhost:6379"),
		cacheTTL:  time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering and workflow storage service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.storeKind, "store", opts.storeKind, "workflow store backend: memory, mongo")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB connection string")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", opts.cacheKind, "render cache backend: memory, file, redis, none")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for the file cache (default ~/.cache/daxport)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis server address")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "render cache entry lifetime")

	return cmd
}

// envOr returns the value of the environment variable name, or fallback if
// it is unset or empty.
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// runServe wires the store and cache backends, starts the HTTP server, and
// shuts it down gracefully when ctx is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	st, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	c, err := newCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := server.New(server.Config{
		Store:    st,
		Cache:    c,
		CacheTTL: opts.cacheTTL,
		Logger:   logger,
	})

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s (store=%s cache=%s)", opts.addr, opts.storeKind, opts.cacheKind)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// newStore builds the workflow store backend selected by --store.
func newStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.storeKind {
	case "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	default:
		return nil, errors.New("unknown store backend: " + opts.storeKind)
	}
}

// newCache builds the render cache backend selected by --cache.
func newCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "file":
		dir := opts.cacheDir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, errors.New("unknown cache backend: " + opts.cacheKind)
	}
}
