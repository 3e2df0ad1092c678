package ax

import (
	"testing"

	"github.com/axctl/controller/internal/model"
)

// fakeNode is an in-memory tree node for exercising the walkers.
type fakeNode struct {
	info     model.NodeInfo
	children []*fakeNode
	visits   *int
}

func (f *fakeNode) Attr(key string) (string, bool) {
	if f.visits != nil {
		*f.visits++
	}
	switch key {
	case AttrRole:
		return f.info.Role, true
	case AttrTitle:
		return f.info.Title, true
	case AttrIdentifier:
		return f.info.Identifier, true
	case AttrDescription:
		return f.info.Description, true
	}
	return "", false
}

func (f *fakeNode) Info() model.NodeInfo { return f.info }

func (f *fakeNode) Children() []Node {
	out := make([]Node, len(f.children))
	for i, c := range f.children {
		out[i] = c
	}
	return out
}

// buildTree returns:
//
//	window "Main"
//	├── group
//	│   ├── button "OK"        (identifier "ok")
//	│   └── button "Cancel"
//	└── button "OK"            (identifier "ok-footer")
func buildTree() *fakeNode {
	return &fakeNode{
		info: model.NodeInfo{Role: "AXWindow", Title: "Main"},
		children: []*fakeNode{
			{
				info: model.NodeInfo{Role: "AXGroup"},
				children: []*fakeNode{
					{info: model.NodeInfo{Role: "AXButton", Title: "OK", Identifier: "ok"}},
					{info: model.NodeInfo{Role: "AXButton", Title: "Cancel"}},
				},
			},
			{info: model.NodeInfo{Role: "AXButton", Title: "OK", Identifier: "ok-footer"}},
		},
	}
}

func TestFindFirstPreOrder(t *testing.T) {
	root := buildTree()
	got := FindFirst(root, Query{"role": "AXButton", "title": "OK"})
	if got == nil {
		t.Fatal("expected a match")
	}
	// Pre-order: the nested OK button comes before the footer OK button.
	if id := got.Info().Identifier; id != "ok" {
		t.Fatalf("expected first pre-order match %q, got %q", "ok", id)
	}
}

func TestFindFirstRootMatch(t *testing.T) {
	root := buildTree()
	got := FindFirst(root, Query{"title": "Main"})
	if got == nil || got.Info().Role != "AXWindow" {
		t.Fatalf("expected the root to match, got %#v", got)
	}
}

func TestFindFirstNoMatch(t *testing.T) {
	if got := FindFirst(buildTree(), Query{"title": "Quit"}); got != nil {
		t.Fatalf("expected no match, got %#v", got.Info())
	}
}

func TestFindFirstUnknownKeyMatchesNothing(t *testing.T) {
	root := buildTree()
	// "label" is outside the vocabulary: whole-query failure even though the
	// title constraint alone would match.
	if got := FindFirst(root, Query{"title": "OK", "label": "OK"}); got != nil {
		t.Fatalf("expected unknown key to fail the whole query, got %#v", got.Info())
	}
}

func TestFindFirstUnknownKeySkipsTraversal(t *testing.T) {
	visits := 0
	root := buildTree()
	root.visits = &visits
	FindFirst(root, Query{"bogus": "x"})
	if visits != 0 {
		t.Fatalf("expected no attribute reads for an invalid query, got %d", visits)
	}
}

func TestFindFirstEmptyQuery(t *testing.T) {
	if got := FindFirst(buildTree(), Query{}); got != nil {
		t.Fatal("empty query must match nothing")
	}
	if got := FindFirst(buildTree(), nil); got != nil {
		t.Fatal("nil query must match nothing")
	}
}

func TestDumpDepthZero(t *testing.T) {
	record := Dump(buildTree(), 0)
	if record.Title != "Main" {
		t.Fatalf("unexpected root record: %#v", record)
	}
	if len(record.Children) != 0 {
		t.Fatalf("depth 0 must not recurse, got %d children", len(record.Children))
	}
	if !record.Truncated {
		t.Fatal("root has children, expected truncated marker")
	}
}

func TestDumpDepthOne(t *testing.T) {
	record := Dump(buildTree(), 1)
	if len(record.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(record.Children))
	}
	if record.Truncated {
		t.Fatal("root recursed into children, must not be truncated")
	}
	group := record.Children[0]
	if !group.Truncated {
		t.Fatal("group at the depth bound still has children, expected truncated marker")
	}
	footer := record.Children[1]
	if footer.Truncated {
		t.Fatal("leaf at the depth bound must not be truncated")
	}
}

func TestDumpNeverExceedsDepth(t *testing.T) {
	record := Dump(buildTree(), 5)
	var depthOf func(n model.UINode) int
	depthOf = func(n model.UINode) int {
		max := 0
		for _, c := range n.Children {
			if d := depthOf(c) + 1; d > max {
				max = d
			}
		}
		return max
	}
	if d := depthOf(record); d != 2 {
		t.Fatalf("expected full tree depth 2, got %d", d)
	}
	if record.Truncated || record.Children[0].Truncated {
		t.Fatal("nothing should be truncated when the bound exceeds the tree depth")
	}
}
