package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/grille/internal/config"
	"github.com/tsawler/grille/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "grille",
	Short: "Rebuild zoning grids from by-law PDFs",
	Long: `Grille reads the zoning grids of a municipal by-law (as a PDF or a
JSON page dump) and rebuilds, for every zone, its setback margins, its
dominant use and its permitted usages.

Commands:
  extract  - Extract zones to JSON, YAML or an Excel workbook
  watch    - Re-run extract whenever the input changes
  merge    - Merge extracted zones into a zoning dataset
  import   - Build a zoning dataset from an inspection workbook`,
	Version:      GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.grille/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFormat, "log-format", "text", "log format: text or json",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration with the command's flags bound to their
// keys, and builds a logger tagged with a fresh run id.
func setup(cmd *cobra.Command, bindings map[string]string) (*config.Config, *slog.Logger, error) {
	loader := config.NewLoader()

	all := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, flag := range bindings {
		all[key] = flag
	}
	for key, flag := range all {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := loader.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With("run_id", uuid.NewString(), "cmd", cmd.Name())

	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return cfg, logger, nil
}

// fail logs err and returns it so cobra exits non-zero.
func fail(logger *slog.Logger, msg string, err error) error {
	logger.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}
