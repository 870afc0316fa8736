package commands

import (
	"nc-news/config"
	"nc-news/database"

	"github.com/spf13/cobra"
)

// migrateCmd creates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long: `Create the topics, users, articles and comments tables if they do not exist.

Examples:
  nc-news migrate
  nc-news migrate --config config.test.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := config.InitDB(cfg.Database, logger)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("schema applied", "dbname", cfg.Database.DBName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
