package main

import (
	"fmt"

	"placement-portal/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := connect(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := (migration.Runner{Logger: logger}).Run(cmd.Context(), db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date")
	return nil
}
