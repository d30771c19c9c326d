package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/grille"
	"github.com/tsawler/grille/export"
	"github.com/tsawler/grille/format"
	"github.com/tsawler/grille/internal/config"
)

var extractCmd = &cobra.Command{
	Use:   "extract [input]",
	Short: "Extract zones from a by-law PDF or page dump",
	Long: `Extract the zoning grids of a PDF or JSON page dump.

The result is an object keyed by zone code, written to --output or to
standard output. The format follows --format, else the output file
extension, else JSON.

Examples:
  grille extract reglement.pdf -o zones.json
  grille extract reglement.pdf --pages 12-30 --coerce
  grille extract pages.jsonl -o zones.xlsx
  grille extract reglement.pdf --format yaml --carry-group`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, extractBindings)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Input = args[0]
		}
		return runExtract(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	},
}

// extractBindings maps config keys to extract and watch flags.
var extractBindings = map[string]string{
	"output":                   "output",
	"format":                   "format",
	"coerce":                   "coerce",
	"validate":                 "validate",
	"pages":                    "pages",
	"extract.row_tolerance":    "row-tolerance",
	"extract.left_margin":      "left-margin",
	"extract.usage_radius":     "usage-radius",
	"extract.dominance_radius": "dominance-radius",
	"extract.margin_radius":    "margin-radius",
	"extract.default_group":    "default-group",
	"extract.carry_group":      "carry-group",
}

func init() {
	addExtractFlags(extractCmd)
}

// addExtractFlags registers the flags shared by extract and watch. Their
// defaults are placeholders: unset flags leave the config values alone.
func addExtractFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "output file (default: standard output)")
	f.StringP("format", "f", "", "output format: json, yaml or xlsx")
	f.Bool("coerce", false, "write numeric margins as numbers")
	f.Bool("validate", false, "validate JSON output against the registry schema")
	f.StringP("pages", "p", "", "pages to read, e.g. 1-3,7 (default: all)")
	f.Float64("row-tolerance", 0, "vertical distance that separates rows")
	f.Float64("left-margin", 0, "x beyond which runs hold cell values")
	f.Float64("usage-radius", 0, "acceptance radius for usage marks")
	f.Float64("dominance-radius", 0, "acceptance radius for dominance codes")
	f.Float64("margin-radius", 0, "acceptance radius for margin characters")
	f.String("default-group", "", "usage group before any group label")
	f.Bool("carry-group", false, "carry the usage group across pages")
}

// runExtract extracts cfg.Input and writes the registry to cfg.Output or w.
func runExtract(ctx context.Context, cfg *config.Config, logger *slog.Logger, w io.Writer) error {
	if cfg.Input == "" {
		return fail(logger, "extract failed", grille.ErrNoInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	outFormat, err := cfg.OutputFormat()
	if err != nil {
		return fail(logger, "extract failed", err)
	}
	if outFormat == format.XLSX && cfg.Output == "" {
		return fail(logger, "extract failed", errors.New("xlsx output needs --output"))
	}
	pages, err := cfg.PageList()
	if err != nil {
		return fail(logger, "extract failed", err)
	}

	logger.Info("extracting", "input", cfg.Input, "format", outFormat.String())

	zones, warnings, err := grille.Open(cfg.Input).
		Pages(pages...).
		WithConfig(cfg.ExtractConfig()).
		WithLogger(logger).
		Zones()
	if err != nil {
		return fail(logger, "extract failed", err)
	}
	for _, warning := range warnings {
		logger.Warn(warning.Message, "page", warning.Page, "kind", warning.Code.String())
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, outFormat, zones, export.Options{Coerce: cfg.Coerce}); err != nil {
		return fail(logger, "export failed", err)
	}
	if cfg.Validate && outFormat == format.JSON {
		if err := export.Validate(buf.Bytes()); err != nil {
			return fail(logger, "validation failed", err)
		}
	}

	if cfg.Output == "" {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fail(logger, "write failed", err)
	}

	logger.Info("extraction complete",
		"zones", zones.Len(),
		"warnings", len(warnings),
		"output", outputName(cfg.Output),
	)
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
