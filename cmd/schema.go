// Package cmd implements the command-line interface for wow-renovate-data.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/RagedUnicorn/wow-renovate-data/pipeline"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().Bool("version-ids", false, "Generate the schema for the game version id artifact")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates JSON schemas for the published artifact documents so consumers
// can validate them.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema for a published artifact document",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("version-ids")) {
			schema = reflector.Reflect(&pipeline.GameVersionIdsDocument{})
		} else {
			schema = reflector.Reflect(&pipeline.VersionsDocument{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
