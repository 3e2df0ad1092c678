package cmd

import (
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll at a screen position",
	RunE:  runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	scrollCmd.Flags().String("position", "", "Scroll at \"x,y\" screen coordinates")
	scrollCmd.Flags().Int("delta_x", 0, "Horizontal scroll amount")
	scrollCmd.Flags().Int("delta_y", 0, "Vertical scroll amount")
}

func runScroll(cmd *cobra.Command, args []string) error {
	position, err := requireString(cmd, "position")
	if err != nil {
		return err
	}
	p, err := platform.ParsePosition(position)
	if err != nil {
		return err
	}
	deltaX, _ := cmd.Flags().GetInt("delta_x")
	deltaY, _ := cmd.Flags().GetInt("delta_y")

	provider, ok := inputProvider()
	if !ok {
		return nil
	}
	warnIfOffscreen(provider, p)

	if err := provider.Input.Scroll(p, deltaX, deltaY); err != nil {
		output.Warnf("scroll failed: %v", err)
		return nil
	}
	output.Statusf("scrolled (%d, %d) at (%g, %g)", deltaX, deltaY, p.X, p.Y)
	return nil
}
