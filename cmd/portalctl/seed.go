package main

import (
	"fmt"

	"placement-portal/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin account and the bundled companies",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
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

	if cfg.Admin.Username == "" {
		logger.Warn("ADMIN_USERNAME not set, skipping admin account")
	}
	done, err := seeder.Runner{Seeders: seeder.Defaults(cfg.Admin, nil), Logger: logger}.Run(cmd.Context(), db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ran %d seeders\n", done)
	return nil
}
