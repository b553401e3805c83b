package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample companies and jobs",
	Long:  `Insert a small set of sample companies and job listings into the PostgreSQL database for local development. Not idempotent; running twice duplicates data.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	pg, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return err
	}
	if err := store.Seed(ctx, pg); err != nil {
		return err
	}

	fmt.Println("Seeded sample data")
	return nil
}
