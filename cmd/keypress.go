package cmd

import (
	"github.com/axctl/controller/internal/keys"
	"github.com/axctl/controller/internal/output"
	"github.com/spf13/cobra"
)

var keypressCmd = &cobra.Command{
	Use:   "keypress",
	Short: "Press a key combination",
	Long: "Press a key combination such as \"cmd+c\" or \"ctrl+shift+tab\". With --pid the\n" +
		"events are posted directly to that process, which may be in the background.",
	RunE: runKeypress,
}

func init() {
	rootCmd.AddCommand(keypressCmd)
	keypressCmd.Flags().String("keys", "", "Key combination, components joined with \"+\"")
	keypressCmd.Flags().Int("pid", 0, "Post events directly to this process instead of the session-wide tap")
}

func runKeypress(cmd *cobra.Command, args []string) error {
	keysFlag, err := requireString(cmd, "keys")
	if err != nil {
		return err
	}
	pid, _ := cmd.Flags().GetInt("pid")

	combo := keys.Parse(keysFlag)

	provider, ok := inputProvider()
	if !ok {
		return nil
	}
	if err := provider.Input.KeyPress(combo, pid); err != nil {
		output.Warnf("keypress failed: %v", err)
		return nil
	}
	output.Statusf("pressed %q", keysFlag)
	return nil
}
