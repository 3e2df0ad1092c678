package cmd

import (
	"testing"

	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/model"
	"github.com/spf13/cobra"
)

// stubNode is a minimal ax.Node for exercising the pure helpers.
type stubNode struct {
	info model.NodeInfo
}

func (n *stubNode) Attr(key string) (string, bool) {
	switch key {
	case ax.AttrRole:
		return n.info.Role, n.info.Role != ""
	case ax.AttrTitle:
		return n.info.Title, n.info.Title != ""
	default:
		return "", false
	}
}

func (n *stubNode) Info() model.NodeInfo { return n.info }
func (n *stubNode) Children() []ax.Node  { return nil }

func newQueryCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addQueryFlags(c)
	return c
}

func TestQueryFromFlags_Empty(t *testing.T) {
	c := newQueryCommand()
	if q := queryFromFlags(c); len(q) != 0 {
		t.Errorf("expected empty query, got %v", q)
	}
}

func TestQueryFromFlags_CollectsSetFlags(t *testing.T) {
	c := newQueryCommand()
	if err := c.Flags().Set("role", "AXButton"); err != nil {
		t.Fatalf("set role: %v", err)
	}
	if err := c.Flags().Set("title", "OK"); err != nil {
		t.Fatalf("set title: %v", err)
	}

	q := queryFromFlags(c)
	if len(q) != 2 {
		t.Fatalf("expected 2 query entries, got %d", len(q))
	}
	if q[ax.AttrRole] != "AXButton" || q[ax.AttrTitle] != "OK" {
		t.Errorf("unexpected query contents: %v", q)
	}
}

func TestQueryFromFlags_IgnoresAppFlag(t *testing.T) {
	c := newQueryCommand()
	if err := c.Flags().Set("app", "Safari"); err != nil {
		t.Fatalf("set app: %v", err)
	}
	if q := queryFromFlags(c); len(q) != 0 {
		t.Errorf("expected app flag to stay out of the query, got %v", q)
	}
}

func TestElementCenter(t *testing.T) {
	n := &stubNode{info: model.NodeInfo{
		Position: model.Point{X: 100, Y: 200},
		Size:     model.Size{Width: 40, Height: 20},
	}}
	center := elementCenter(n)
	if center.X != 120 || center.Y != 210 {
		t.Errorf("expected center (120, 210), got (%g, %g)", center.X, center.Y)
	}
}

func TestRequireString(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("text", "", "")

	if _, err := requireString(c, "text"); err == nil {
		t.Error("expected error for unset flag")
	}

	if err := c.Flags().Set("text", "hello"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	v, err := requireString(c, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Errorf("expected hello, got %q", v)
	}
}

func TestFailRecord_SilencesCommand(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	err := failRecord(c, "boom")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "boom" {
		t.Errorf("expected error message boom, got %q", err.Error())
	}
	if !c.SilenceErrors || !c.SilenceUsage {
		t.Error("expected command to be silenced after failRecord")
	}
}
