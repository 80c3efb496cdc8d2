package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/crabgen/internal/config"
	"github.com/aatumaykin/crabgen/internal/logger"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Validate and inspect crabgen configuration.`,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Long:  `Validate the configuration file and check for errors.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.NewWithWriter(cmd.OutOrStdout(), "info", "text")
		if err != nil {
			return err
		}

		cfg, path, err := loadConfigArg(args)
		if err != nil {
			log.Error("Failed to load config", err)
			return &exitError{err: err}
		}

		log.Info("Validating configuration", logger.Field{Key: "path", Value: path})

		errs := cfg.Validate()
		if len(errs) > 0 {
			for _, e := range errs {
				log.Error("Validation error", e)
			}
			return &exitError{err: fmt.Errorf("%d configuration errors", len(errs))}
		}

		log.Info("Configuration is valid")
		return nil
	},
}

// configShowCmd prints the effective configuration with defaults applied
var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Print the effective configuration",
	Long:  `Print the configuration as TOML after defaults and environment expansion.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfigArg(args)
		if err != nil {
			return err
		}
		return cfg.Encode(cmd.OutOrStdout())
	},
}

func loadConfigArg(args []string) (*config.Config, string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	cfg, used, err := config.LoadOrDefault(path)
	if used == "" {
		used = "built-in defaults"
	}
	return cfg, used, err
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
