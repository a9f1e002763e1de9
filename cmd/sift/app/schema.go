package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liamcoop/sift/source"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for records files",
	Long: `Print the JSON Schema that --input files are validated against. The
schema covers both record shapes, user (name, age, occupation) and admin
(name, age, role), discriminated by the kind field.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(source.RecordSchema()))
	},
}
