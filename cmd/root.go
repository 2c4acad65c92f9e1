package cmd

import (
	"fmt"
	"os"

	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configDir string
	debug     bool
)

// rootCmd runs the server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur - venue and artist booking listings",
	Long: `Fyyur lists venues and artists and the shows that connect them.

Commands:
  serve          - Run the HTTP server (default)
  migrate        - Create the database schema
  hash-password  - Print a bcrypt hash for ADMIN_PASSWORD_HASH`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Force debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, hashPasswordCmd)
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if debug {
		config.App.Debug = true
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using production logger.\n", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}
