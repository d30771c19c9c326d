package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/grille/merge"
	"github.com/tsawler/grille/model"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <dataset.json> <zones.json>",
	Short: "Merge extracted zones into a zoning dataset",
	Long: `Merge the zones written by extract (JSON) into a zoning dataset, a
JSON array of objects with a "zone" field.

Each extracted zone updates the entries whose zone equals it or starts
with it followed by "-"; zones with no entry are appended. Margins are
written under snake_case keys, as numbers when they read as numbers.
The dataset is rewritten in place unless --output is given.

Example:
  grille merge data/zoningData.json zones.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd, nil)
		if err != nil {
			return err
		}

		ds, err := merge.LoadDataset(args[0])
		if err != nil {
			return fail(logger, "merge failed", err)
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fail(logger, "merge failed", err)
		}
		zones := model.NewRegistry()
		if err := json.Unmarshal(data, zones); err != nil {
			return fail(logger, "merge failed", fmt.Errorf("failed to decode zones %s: %w", args[1], err))
		}

		merged, res := merge.Merge(ds, zones)

		out := mergeOutput
		if out == "" {
			out = args[0]
		}
		if err := merge.SaveDataset(out, merged); err != nil {
			return fail(logger, "merge failed", err)
		}

		logger.Info("merge complete", "updated", res.Updated, "added", res.Added, "output", out)
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %d entries. Added %d new entries.\n", res.Updated, res.Added)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output file (default: overwrite the dataset)")
}
