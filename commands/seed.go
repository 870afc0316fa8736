package commands

import (
	"nc-news/config"
	"nc-news/database"

	"github.com/spf13/cobra"
)

var skipMigrate bool

// seedCmd replaces every row with the bundled dataset
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the database contents with the bundled dataset",
	Long: `Truncate all tables and insert the bundled topics, users, articles and comments.
Ids restart from 1. The schema is applied first unless --skip-migrate is set.

Examples:
  PGDATABASE=nc_news_test nc-news seed`,
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

		ctx := cmd.Context()
		if !skipMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}
		}

		ds, err := database.TestData()
		if err != nil {
			return err
		}
		if err := database.Seed(ctx, db, ds); err != nil {
			return err
		}

		logger.Info("database seeded",
			"dbname", cfg.Database.DBName,
			"topics", len(ds.Topics),
			"users", len(ds.Users),
			"articles", len(ds.Articles),
			"comments", len(ds.Comments),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply the schema before seeding")
	rootCmd.AddCommand(seedCmd)
}
