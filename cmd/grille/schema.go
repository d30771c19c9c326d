package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/grille/export"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of extracted registries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(export.Schema())
		return err
	},
}
