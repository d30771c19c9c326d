package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/grille/merge"
)

var importOutput string

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Build a zoning dataset from an inspection workbook",
	Long: `Read an inspection workbook and write a zoning dataset.

The "Liste" sheet provides one entry per zone with its descriptive
columns; the pivoted "marge" sheet adds the setback margins. Either
sheet may be missing.

Example:
  grille import "grille d'inspection.xlsx" -o data/zoningData.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd, nil)
		if err != nil {
			return err
		}

		ds, err := merge.ImportWorkbook(args[0])
		if err != nil {
			return fail(logger, "import failed", err)
		}

		if importOutput == "" {
			data, err := json.MarshalIndent(ds, "", "  ")
			if err != nil {
				return fail(logger, "import failed", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else if err := merge.SaveDataset(importOutput, ds); err != nil {
			return fail(logger, "import failed", err)
		}

		logger.Info("import complete", "zones", len(ds), "output", outputName(importOutput))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "output file (default: standard output)")
}
