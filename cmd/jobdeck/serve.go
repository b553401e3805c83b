package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdeck/jobdeck/internal/server"
	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort     int
	serveWithSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the job board REST endpoints.

The storage backend is selected via JOBDECK_STORE (memory or postgres).
When unset, postgres is used if DATABASE_URL is set, memory otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveWithSeed, "seed", false, "Seed sample data on startup (memory store only)")
	rootCmd.AddCommand(serveCmd)
}

// newStore selects and initializes the storage backend.
func newStore(ctx context.Context, logger *zap.Logger) (store.Store, error) {
	backend := os.Getenv("JOBDECK_STORE")
	databaseURL := os.Getenv("DATABASE_URL")
	if backend == "" {
		if databaseURL != "" {
			backend = "postgres"
		} else {
			backend = "memory"
		}
	}

	switch backend {
	case "postgres":
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres store")
		}
		pg, err := store.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		logger.Info("using postgres store")
		return pg, nil
	case "memory":
		logger.Info("using in-memory store")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory or postgres)", backend)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	st, err := newStore(ctx, logger)
	if err != nil {
		return err
	}

	if serveWithSeed {
		if err := store.Seed(ctx, st); err != nil {
			st.Close()
			return fmt.Errorf("failed to seed store: %w", err)
		}
		logger.Info("seeded sample data")
	}

	srv := server.New(server.Config{Port: servePort}, st, logger)
	return srv.Start()
}
