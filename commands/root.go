package commands

import (
	"fmt"
	"log/slog"
	"os"

	"nc-news/config"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nc-news",
	Short: "NC News - a REST API for articles, topics, users and comments",
	Long: `NC News serves a news aggregation API backed by PostgreSQL.

Commands:
  serve    - Start the HTTP API
  migrate  - Create the database schema
  seed     - Replace the database contents with the bundled dataset`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file (optional)")
}

// loadConfig reads the config and builds the logger every command shares.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, config.NewLogger(cfg.LogLevel), nil
}
