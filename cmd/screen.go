package cmd

import (
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

// DimensionsResult is the structured record emitted by screen_dimensions.
type DimensionsResult struct {
	Success bool    `yaml:"success" json:"success"`
	Width   float64 `yaml:"width"   json:"width"`
	Height  float64 `yaml:"height"  json:"height"`
}

// DockResult is the structured record emitted by dock_bounding_box.
type DockResult struct {
	Success     bool       `yaml:"success"      json:"success"`
	BoundingBox model.Rect `yaml:"bounding_box" json:"bounding_box"`
}

var screenDimensionsCmd = &cobra.Command{
	Use:   "screen_dimensions",
	Short: "Print the main screen's frame size",
	RunE:  runScreenDimensions,
}

var scaleFactorCmd = &cobra.Command{
	Use:   "scale_factor",
	Short: "Print the main screen's device-pixel to point ratio",
	RunE:  runScaleFactor,
}

var dockBoundingBoxCmd = &cobra.Command{
	Use:   "dock_bounding_box",
	Short: "Print the desktop dock's bounding box",
	Long: "Derive the dock rectangle from the gap between the main screen's full frame\n" +
		"and its visible frame, checking the bottom, left, then right edge. No gap\n" +
		"yields a zero-sized rectangle.",
	RunE: runDockBoundingBox,
}

func init() {
	rootCmd.AddCommand(screenDimensionsCmd)
	rootCmd.AddCommand(scaleFactorCmd)
	rootCmd.AddCommand(dockBoundingBoxCmd)
}

func runScreenDimensions(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return failRecord(cmd, err.Error())
	}
	dims, err := provider.Screen.Dimensions()
	if err != nil {
		return failRecord(cmd, err.Error())
	}
	return output.Print(DimensionsResult{Success: true, Width: dims.Width, Height: dims.Height})
}

func runScaleFactor(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	scale, err := provider.Screen.ScaleFactor()
	if err != nil {
		return err
	}
	output.Statusf("scale_factor: %g", scale)
	return nil
}

func runDockBoundingBox(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return failRecord(cmd, err.Error())
	}
	box, err := provider.Screen.DockBounds()
	if err != nil {
		return failRecord(cmd, err.Error())
	}
	return output.Print(DockResult{Success: true, BoundingBox: box})
}
