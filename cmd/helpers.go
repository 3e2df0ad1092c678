package cmd

import (
	"errors"
	"fmt"

	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/output"
	"github.com/axctl/controller/internal/platform"
	"github.com/spf13/cobra"
)

var errElementNotFound = errors.New("element not found")

// addQueryFlags registers the element attribute-query flags shared by the
// commands that locate elements.
func addQueryFlags(c *cobra.Command) {
	c.Flags().String("role", "", "Match element role (e.g. AXButton)")
	c.Flags().String("title", "", "Match element title (exact, case-sensitive)")
	c.Flags().String("identifier", "", "Match element identifier")
	c.Flags().String("description", "", "Match element description")
	c.Flags().String("app", "", "Search within this running application (display name or bundle identifier)")
}

// queryFromFlags builds an attribute query from whichever query flags were
// set.
func queryFromFlags(c *cobra.Command) ax.Query {
	q := ax.Query{}
	for _, key := range []string{ax.AttrRole, ax.AttrTitle, ax.AttrIdentifier, ax.AttrDescription} {
		if v, _ := c.Flags().GetString(key); v != "" {
			q[key] = v
		}
	}
	return q
}

// locateElement resolves the search root (a named app or the system-wide
// tree) and returns the first pre-order match for the query.
func locateElement(provider *platform.Provider, app string, query ax.Query) (ax.Node, error) {
	var (
		root ax.Node
		err  error
	)
	if app != "" {
		root, err = provider.Locator.AppRoot(app)
	} else {
		root, err = provider.Locator.SystemRoot()
	}
	if err != nil {
		return nil, err
	}
	node := ax.FindFirst(root, query)
	if node == nil {
		return nil, errElementNotFound
	}
	return node, nil
}

// elementCenter is the click target for a located element.
func elementCenter(n ax.Node) model.Point {
	return n.Info().Frame().Center()
}

// inputProvider returns the platform provider for event synthesis. A missing
// backend degrades to a warning: soft automation failures must not look like
// hard process failures to an external caller.
func inputProvider() (*platform.Provider, bool) {
	provider, err := platform.NewProvider()
	if err != nil {
		output.Warnf("input synthesis unavailable: %v", err)
		return nil, false
	}
	return provider, true
}

// warnIfOffscreen warns when a target point falls outside the main screen's
// frame. Out-of-bounds coordinates are never an error: a point on a
// secondary screen is a legitimate target.
func warnIfOffscreen(provider *platform.Provider, p model.Point) {
	if provider == nil || provider.Screen == nil {
		return
	}
	dims, err := provider.Screen.Dimensions()
	if err != nil {
		return
	}
	if !platform.InBounds(p, dims) {
		output.Warnf("point (%g, %g) is outside the main screen frame %gx%g", p.X, p.Y, dims.Width, dims.Height)
	}
}

// failRecord emits a structured error record and returns a silenced error so
// Execute exits non-zero without printing the message twice.
func failRecord(c *cobra.Command, msg string) error {
	c.SilenceErrors = true
	c.SilenceUsage = true
	_ = output.PrintError(msg)
	return errors.New(msg)
}

// printNodeInfo prints one "key: value" line per resolved attribute.
func printNodeInfo(info model.NodeInfo) {
	output.Statusf("role: %s", info.Role)
	output.Statusf("title: %s", info.Title)
	output.Statusf("value: %s", info.Value)
	output.Statusf("position: (%g, %g)", info.Position.X, info.Position.Y)
	output.Statusf("size: (%g, %g)", info.Size.Width, info.Size.Height)
	output.Statusf("enabled: %t", info.Enabled)
	output.Statusf("identifier: %s", info.Identifier)
	output.Statusf("description: %s", info.Description)
	output.Statusf("subrole: %s", info.Subrole)
	output.Statusf("pid: %d", info.PID)
}

// requireString returns the flag value or an error when it is unset.
func requireString(c *cobra.Command, name string) (string, error) {
	v, _ := c.Flags().GetString(name)
	if v == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return v, nil
}
