package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/crabgen/internal/config"
	"github.com/aatumaykin/crabgen/internal/constants"
	"github.com/aatumaykin/crabgen/internal/generator"
	"github.com/aatumaykin/crabgen/internal/logger"
	"github.com/aatumaykin/crabgen/internal/manifest"
)

var (
	genConfigPath string
	genMatch      string
	genDryRun     bool
	genDebug      bool
)

// rootCmd generates the CRAB files when called with a manifest and an output root
var rootCmd = &cobra.Command{
	Use:   "crabgen <manifest> <base_output_directory>",
	Short: "crabgen - CRAB submission script generator",
	Long: `crabgen reads a manifest of "name,path" dataset records and writes, for
every record, a directory with a CRAB submission config, the NanoAOD
post-processor driver, its shell wrapper and the fake PSet CRAB requires.

Records whose name contains 2016, 2017 or 2018 get the matching Golden JSON
lumi mask; records containing SingleMuon use the data skim list.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          generateHandler,
}

func generateHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Неверное число аргументов: только подсказка, без ошибки
	if len(args) != 2 {
		fmt.Fprintln(out, constants.Usage)
		return nil
	}
	manifestPath, outputRoot := args[0], args[1]

	cfg, configPath, err := config.LoadOrDefault(genConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "❌ Configuration validation failed:")
		for _, e := range errs {
			fmt.Fprintf(errOut, "  - %v\n", e)
		}
		return &exitError{err: fmt.Errorf("%d configuration errors", len(errs))}
	}

	if genDebug {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetDefault(log)

	if configPath == "" {
		configPath = "built-in defaults"
	}
	log.Debug("starting crabgen",
		logger.Field{Key: "version", Value: Version},
		logger.Field{Key: "git_commit", Value: GitCommit},
		logger.Field{Key: "config", Value: configPath},
	)

	gen, err := generator.New(cfg, generator.Options{
		Match:  genMatch,
		DryRun: genDryRun,
	}, generator.NewConsoleReporter(out, genDryRun), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := gen.Run(ctx, manifestPath, outputRoot); err != nil {
		switch {
		case errors.Is(err, manifest.ErrManifestNotFound):
			fmt.Fprintln(out, generator.NotFoundMessage(manifestPath))
			return &exitError{err: err}
		case errors.Is(err, context.Canceled):
			log.Warn("generation interrupted")
			return &exitError{err: err}
		}
		return err
	}

	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&genConfigPath, "config", "c", "", "Path to configuration file (default: ./crabgen.toml if present)")
	rootCmd.Flags().StringVarP(&genMatch, "match", "m", "", "Only generate records whose name matches this RE2 pattern")
	rootCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Render everything but write nothing")
	rootCmd.Flags().BoolVarP(&genDebug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
