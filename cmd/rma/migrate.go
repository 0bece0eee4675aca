package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_management_app/pkg/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations to PGSQL_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL is not set")
			}
			logger.Info("Running database migrations")
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		},
	}
}
