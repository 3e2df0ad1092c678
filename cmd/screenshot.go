package cmd

import (
	"github.com/axctl/controller/internal/capture"
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

// screenshotDir is created on demand below the working directory.
const screenshotDir = "screenshots"

// fallback region when no screen geometry is available.
var defaultRegion = model.Rect{Width: 1440, Height: 900}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a placeholder screenshot",
	Long: "Write a placeholder capture of the full screen, or of --region x,y,w,h, into\n" +
		"the screenshots directory.",
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("region", "", "Capture region as exactly four integers \"x,y,w,h\"")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	regionFlag, _ := cmd.Flags().GetString("region")

	var region model.Rect
	if regionFlag != "" {
		r, err := platform.ParseRegion(regionFlag)
		if err != nil {
			return failRecord(cmd, err.Error())
		}
		region = r
	} else {
		region = defaultRegion
		if provider, err := platform.NewProvider(); err == nil {
			if dims, err := provider.Screen.Dimensions(); err == nil {
				region = model.Rect{Width: dims.Width, Height: dims.Height}
			}
		} else {
			output.Warnf("screen geometry unavailable, using %gx%g: %v", region.Width, region.Height, err)
		}
	}

	path, err := capture.WritePlaceholder(screenshotDir, region)
	if err != nil {
		return err
	}
	output.Statusf("screenshot saved: %s", path)
	return nil
}
