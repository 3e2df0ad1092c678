// Package ax implements the platform-independent accessibility tree
// operations: locating a node by attribute query and serializing a subtree
// to a depth-bounded record. The live tree is reached through the Node
// interface so the walkers can be exercised against fake trees in tests.
package ax

import "github.com/axctl/controller/internal/model"

// Query attribute vocabulary. A query containing any other key matches
// nothing, regardless of tree contents.
const (
	AttrRole        = "role"
	AttrTitle       = "title"
	AttrIdentifier  = "identifier"
	AttrDescription = "description"
)

// Query maps attribute names to expected values. Matching is exact and
// case-sensitive on every key.
type Query map[string]string

// Valid reports whether every key of the query is in the attribute
// vocabulary. An empty query is not valid: a search needs at least one
// constraint.
func (q Query) Valid() bool {
	if len(q) == 0 {
		return false
	}
	for k := range q {
		switch k {
		case AttrRole, AttrTitle, AttrIdentifier, AttrDescription:
		default:
			return false
		}
	}
	return true
}

// Node is a live handle into the OS accessibility tree. Attributes are read
// on demand; holding a node across UI changes on the OS side may yield stale
// or empty values.
type Node interface {
	// Attr returns the value of one query-vocabulary attribute and whether
	// the node exposes it.
	Attr(key string) (string, bool)

	// Info reads the node's full attribute record.
	Info() model.NodeInfo

	// Children returns the node's child nodes in document order.
	Children() []Node
}

// FindFirst walks the tree in pre-order (node before children, left to
// right) and returns the first node whose attributes equal every value in
// the query, or nil if none matches. Traversal is read-only and every call
// re-walks the live tree.
//
// The host platform is assumed to expose an acyclic tree; there is no cycle
// guard here. A cyclic tree would make this walk diverge.
func FindFirst(root Node, query Query) Node {
	if root == nil || !query.Valid() {
		return nil
	}
	return findPreOrder(root, query)
}

func findPreOrder(n Node, query Query) Node {
	if matches(n, query) {
		return n
	}
	for _, child := range n.Children() {
		if found := findPreOrder(child, query); found != nil {
			return found
		}
	}
	return nil
}

func matches(n Node, query Query) bool {
	for key, want := range query {
		got, ok := n.Attr(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Dump serializes the subtree rooted at n to a UINode record. Children are
// visited only while depth < maxDepth; a node cut off with children
// remaining is marked Truncated. maxDepth 0 returns only the root's own
// record.
func Dump(n Node, maxDepth int) model.UINode {
	return dumpAtDepth(n, 0, maxDepth)
}

func dumpAtDepth(n Node, depth, maxDepth int) model.UINode {
	record := model.UINode{NodeInfo: n.Info()}
	children := n.Children()
	if depth >= maxDepth {
		if len(children) > 0 {
			record.Truncated = true
		}
		return record
	}
	for _, child := range children {
		record.Children = append(record.Children, dumpAtDepth(child, depth+1, maxDepth))
	}
	return record
}
