package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		database, err := db.NewPostgresDB(cmd.Context(), dbConfig(cfg.Database), logger)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer database.Close()

		return database.Migrate(cmd.Context(), logger)
	},
}
