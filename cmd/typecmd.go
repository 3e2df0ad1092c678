package cmd

import (
	"github.com/axctl/controller/internal/output"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into the focused element",
	Long: "Type text one Unicode character at a time. Characters are delivered as\n" +
		"literal-character key events, so the text need not map to physical keys.",
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
}

func runType(cmd *cobra.Command, args []string) error {
	text, err := requireString(cmd, "text")
	if err != nil {
		return err
	}

	provider, ok := inputProvider()
	if !ok {
		return nil
	}
	if err := provider.Input.TypeText(text); err != nil {
		output.Warnf("type failed: %v", err)
		return nil
	}
	output.Statusf("typed %d characters", len([]rune(text)))
	return nil
}
