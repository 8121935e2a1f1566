// Package cmd defines the command-line interface for codetrail.
package cmd

import (
	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(trailCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("days", "d", contract.DefaultLookbackDays, "Lookback window in days")
	rootCmd.PersistentFlags().StringSliceP("email", "e", nil, "Author email to match (repeatable)")
	rootCmd.PersistentFlags().StringSliceP("user", "u", nil, "Author name to match (repeatable)")
	rootCmd.PersistentFlags().StringSliceP("keyword", "k", nil, "Keyword searched in commit message and diff text (repeatable)")
	rootCmd.PersistentFlags().String("mode", string(schema.UnionMode), "Filter mode: union or intersection")
	rootCmd.PersistentFlags().Bool("hotspot", false, "Rank changed files by frequency after filtering")
	rootCmd.PersistentFlags().Bool("report", false, "Write a timestamped patch/diff report file")
	rootCmd.PersistentFlags().String("report-dir", "", "Directory for the report file (default: current directory)")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "Scan subdirectories for git repositories")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
