package cmd

import (
	"fmt"

	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate a UI element by attribute query",
	Long: "Search the accessibility tree for the first element matching every given\n" +
		"attribute exactly. Prints one key: value line per attribute of the match.",
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addQueryFlags(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
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

	printNodeInfo(node.Info())
	return nil
}
