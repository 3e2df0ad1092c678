package cmd

import (
	"github.com/axctl/controller/internal/output"
	"github.com/spf13/cobra"
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag along a path (not supported)",
	Long:  "Drag gestures are disabled in the current command surface.",
	RunE:  runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().String("position", "", "Drag start \"x,y\" (accepted, unused)")
}

func runDrag(cmd *cobra.Command, args []string) error {
	// Reachable but never executed: the backend's Drag is disabled, and the
	// soft-failure policy keeps the exit code at zero.
	output.Warnf("drag is not supported")
	return nil
}
