package cmd

import (
	"fmt"

	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at coordinates or on a located element",
	Long: "Click at absolute screen coordinates (--position x,y) or on the center of\n" +
		"the first element matching an attribute query.",
	RunE: runClick,
}

var doubleClickCmd = &cobra.Command{
	Use:   "double_click",
	Short: "Double-click at coordinates or on a located element",
	RunE:  runDoubleClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("position", "", "Click at \"x,y\" screen coordinates")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right")
	addQueryFlags(clickCmd)

	rootCmd.AddCommand(doubleClickCmd)
	doubleClickCmd.Flags().String("position", "", "Double-click at \"x,y\" screen coordinates")
	addQueryFlags(doubleClickCmd)
}

// resolveTarget turns either --position or an attribute query into a click
// point. The query path needs the provider; a missing position and empty
// query is an argument error.
func resolveTarget(cmd *cobra.Command) (model.Point, *platform.Provider, error) {
	position, _ := cmd.Flags().GetString("position")
	appName, _ := cmd.Flags().GetString("app")

	if position != "" {
		p, err := platform.ParsePosition(position)
		if err != nil {
			return model.Point{}, nil, err
		}
		provider, _ := inputProvider()
		return p, provider, nil
	}

	query := queryFromFlags(cmd)
	if len(query) == 0 {
		return model.Point{}, nil, fmt.Errorf("specify --position or an element query (--role, --title, --identifier, --description)")
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return model.Point{}, nil, err
	}
	node, err := locateElement(provider, appName, query)
	if err != nil {
		return model.Point{}, nil, err
	}
	return elementCenter(node), provider, nil
}

func runClick(cmd *cobra.Command, args []string) error {
	buttonFlag, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonFlag)
	if err != nil {
		return err
	}

	p, provider, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	if provider == nil {
		// Event backend unavailable: soft failure by design.
		return nil
	}
	warnIfOffscreen(provider, p)

	if err := provider.Input.Click(p, button); err != nil {
		output.Warnf("click failed: %v", err)
		return nil
	}
	output.Statusf("clicked at (%g, %g)", p.X, p.Y)
	return nil
}

func runDoubleClick(cmd *cobra.Command, args []string) error {
	p, provider, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	if provider == nil {
		return nil
	}
	warnIfOffscreen(provider, p)

	if err := provider.Input.DoubleClick(p); err != nil {
		output.Warnf("double click failed: %v", err)
		return nil
	}
	output.Statusf("double clicked at (%g, %g)", p.X, p.Y)
	return nil
}
