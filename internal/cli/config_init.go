package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/config"
)

// ErrConfigExists is returned by "config init" when the file is already there.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes the built-in defaults to --config, or to the default config path.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
$USERDIR_HOME/config.yaml (default ~/.userdir/config.yaml), or at --config.`,
		Example: `  # Create the default configuration
  userdir config init

  # Create configuration, overwriting existing
  userdir config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// configPath returns --config, or the default config file path.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return ErrConfigExists
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after the file and environment are applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			w := cmd.OutOrStdout()
			if cfg.Path() != "" {
				fmt.Fprintf(w, "# %s\n", cfg.Path())
			}
			_, err = w.Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: page size, result count, timeout,
match mode and default output format.`,
		Example: `  # Validate current configuration
  userdir config validate

  # Validate and show detailed information
  userdir config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("Configuration is valid")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if cfg.Source.File != "" {
		cmd.Printf("  Source file: %s\n", cfg.Source.File)
	} else {
		cmd.Printf("  Source URL: %s (results: %d, nat: %s, timeout: %s)\n",
			cfg.Source.URL, cfg.Source.Results, cfg.Source.Nationality, cfg.Source.Timeout)
	}
	cmd.Printf("  Page size: %d\n", cfg.List.PageSize)
	cmd.Printf("  Match mode: %s\n", cfg.List.Match)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
