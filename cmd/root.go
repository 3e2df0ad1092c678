package cmd

import (
	"fmt"
	"os"

	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "controller",
	Short: "Drive macOS UI automation from the command line",
	Long: "A CLI that locates UI elements through the accessibility tree and synthesizes\n" +
		"mouse, keyboard, and scroll events to act on them.",
}

// Execute runs the command tree. Fatal errors (missing arguments, element
// not found, unknown command) exit 1; soft automation failures are reported
// as warnings by the handlers and exit 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "json", "Output format for structured records: json, yaml")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "json":
			output.OutputFormat = output.FormatJSON
		case "yaml":
			output.OutputFormat = output.FormatYAML
		default:
			return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
