package cmd

import (
	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

// DumpResult is the structured record emitted by dump_ui.
type DumpResult struct {
	Success   bool         `yaml:"success"   json:"success"`
	Hierarchy model.UINode `yaml:"hierarchy" json:"hierarchy"`
}

var dumpUICmd = &cobra.Command{
	Use:   "dump_ui",
	Short: "Serialize an accessibility subtree",
	Long: "Dump the accessibility hierarchy of a running application (--app, matched by\n" +
		"display name or bundle identifier) or the system-wide tree, bounded by\n" +
		"--max_depth. Nodes cut off with children remaining carry truncated: true.",
	RunE: runDumpUI,
}

func init() {
	rootCmd.AddCommand(dumpUICmd)
	dumpUICmd.Flags().String("app", "", "Dump this application's tree instead of the system-wide tree")
	dumpUICmd.Flags().Int("max_depth", 10, "Maximum recursion depth")
}

func runDumpUI(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	maxDepth, _ := cmd.Flags().GetInt("max_depth")

	provider, err := platform.NewProvider()
	if err != nil {
		return failRecord(cmd, err.Error())
	}

	var root ax.Node
	if app != "" {
		root, err = provider.Locator.AppRoot(app)
	} else {
		root, err = provider.Locator.SystemRoot()
	}
	if err != nil {
		return failRecord(cmd, err.Error())
	}

	return output.Print(DumpResult{
		Success:   true,
		Hierarchy: ax.Dump(root, maxDepth),
	})
}
