package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pearl/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.Create(cmd.Context(), databaseConfig())
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		slog.InfoContext(cmd.Context(), "database migrated", "database_type", cfg.DatabaseType)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func databaseConfig() *database.Config {
	return &database.Config{
		Type:          cfg.DatabaseType,
		DSN:           cfg.Database,
		LogLevel:      cfg.DatabaseLogLevel,
		SlowThreshold: cfg.DatabaseSlowThreshold,
	}
}
