package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"listings-bknd/internal/config"
	"listings-bknd/internal/database"
	"listings-bknd/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file     string
		truncate bool
	)

	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Load directory listings from a JSON file",
		Long: `Creates the listings schema if needed and inserts the listings found in
a JSON array. Ids are generated when missing and slugs are derived from
name and city, unique across the table.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), file, truncate)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "listings.json", "path to the JSON fixture file")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "delete existing listings first")

	return cmd
}

func run(ctx context.Context, file string, truncate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	logr := logger.New(cfg)
	defer logr.Sync()

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}
	var fixtures []fixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	db, err := database.New(cfg.DatabaseURL, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.CreateSchema(ctx, db); err != nil {
		return err
	}

	repo := database.NewListingRepo(db)
	if truncate {
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		logr.Info("existing listings deleted")
	}

	taken, err := repo.Slugs(ctx)
	if err != nil {
		return err
	}

	listings, err := buildListings(fixtures, taken, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := repo.InsertListings(ctx, listings); err != nil {
		return err
	}

	logr.Info("listings seeded",
		zap.String("file", file),
		zap.Int("count", len(listings)),
		zap.Bool("truncated", truncate))
	return nil
}
