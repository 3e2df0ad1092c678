package cmd

import (
	"fmt"

	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

var setTextCmd = &cobra.Command{
	Use:   "set_text",
	Short: "Set the value of a located element",
	Long: "Locate an element by attribute query and write --text into it through the\n" +
		"accessibility value attribute.",
	RunE: runSetText,
}

func init() {
	rootCmd.AddCommand(setTextCmd)
	setTextCmd.Flags().String("text", "", "Text value to set")
	addQueryFlags(setTextCmd)
}

func runSetText(cmd *cobra.Command, args []string) error {
	text, err := requireString(cmd, "text")
	if err != nil {
		return err
	}
	query := queryFromFlags(cmd)
	if len(query) == 0 {
		return fmt.Errorf("specify at least one of --role, --title, --identifier, --description")
	}
	app, _ := cmd.Flags().GetString("app")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	node, err := locateElement(provider, app, query)
	if err != nil {
		return err
	}

	if err := provider.ValueSetter.SetValue(node, text); err != nil {
		output.Warnf("set_text failed: %v", err)
		return nil
	}
	output.Statusf("set text on element")
	return nil
}
