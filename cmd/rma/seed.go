package main

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_management_app/internal/platform/config"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset and demo accounts into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			if a.cfg.StorageDriver == config.StorageMemory {
				a.logger.Info("Memory storage is seeded on startup, nothing to persist")
				return nil
			}
			return a.seedDemo(cmd.Context())
		},
	}
}
