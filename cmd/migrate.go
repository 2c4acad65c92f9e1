package cmd

import (
	"github.com/billwiliams/fyyur/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the venues, artists and shows tables",
	Long: `Apply the embedded schema. Every statement is idempotent, so running
it against an up-to-date database changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			logger.Error("Failed to migrate database", zap.Error(err))
			return err
		}

		logger.Info("Database schema is up to date")
		return nil
	},
}
