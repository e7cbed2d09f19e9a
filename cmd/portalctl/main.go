// Command portalctl runs maintenance tasks against the company catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"placement-portal/internal/config"
	"placement-portal/internal/database"
	dbpostgres "placement-portal/internal/database/postgres"
	"placement-portal/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "portalctl",
	Short:         "Placement portal catalog tooling",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadEnv() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func connect(ctx context.Context, cfg config.Config) (database.DB, error) {
	if !cfg.UsesPostgres() {
		return nil, fmt.Errorf("DATA_SOURCE=%s: this command needs postgres", cfg.DataSource)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(ctx, cfg.Database)
}
