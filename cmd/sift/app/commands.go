// Package app provides the sift command-line interface.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liamcoop/sift/internal/logger"
	"github.com/liamcoop/sift/internal/versions"
)

var rootCmd = &cobra.Command{
	Use:               "sift",
	DisableAutoGenTag: true,
	Short:             "Filter tagged records by kind and field criteria",
	Long: `sift filters collections of tagged records (users and admins) by record
kind and exact field criteria. Records come from a JSON or YAML file, a
generated roster, or the built-in samples.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool("debug") {
			logger.SetLevel(logger.LevelDebug)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		if err := cmd.Help(); err != nil {
			slog.Error("Error displaying help", "error", err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versions.GetVersionInfo()

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("retrieve format flag: %w", err)
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("format version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Version:    %s\n", info.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit:     %s\n", info.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", info.GoVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Platform:   %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		slog.Error("Error binding debug flag", "error", err)
	}

	versionCmd.Flags().String("format", "", "Output format (json)")

	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// NewRootCmd returns the root command for sift.
func NewRootCmd() *cobra.Command {
	return rootCmd
}
