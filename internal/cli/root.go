package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the userdir CLI.
// It loads configuration, wires up logging, and registers the list, browse,
// config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "userdir",
		Short:         "Browse a paginated, searchable user directory",
		Long:          "userdir: fetch a mock user directory once, then search, page through and prune it",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $USERDIR_HOME/config.yaml or ~/.userdir/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().String("log-format", "", "log format: console or json (overrides config)")

	cmd.AddCommand(NewListCmd(), NewBrowseCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

// loadConfig installs the global configuration, from --config when given.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Show the first page of the directory
  userdir list

  # Search by first name and show the second page as JSON
  userdir list --query al --page 2 --output json

  # Remove two users, then show what is left on page 1
  userdir list --delete 155e77ee-ba6d-486f-95ce-0e0c0fb4b919 --delete brad.gibson@example.com

  # Browse interactively
  userdir browse

  # Write a default configuration file
  userdir config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
