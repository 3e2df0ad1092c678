// Package model defines the plain data types shared between the platform
// layer, the tree walkers, and the command output.
package model

// Point is a screen coordinate in logical points.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Size is a width/height pair in logical points.
type Size struct {
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Rect is a screen rectangle in logical points.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// IsZero reports whether the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// NodeInfo is the flat attribute record of one accessibility node.
// Attributes are read from the live tree at serialization time, never cached.
type NodeInfo struct {
	Role        string `yaml:"role"                  json:"role"`
	Title       string `yaml:"title,omitempty"       json:"title,omitempty"`
	Value       string `yaml:"value,omitempty"       json:"value,omitempty"`
	Position    Point  `yaml:"position"              json:"position"`
	Size        Size   `yaml:"size"                  json:"size"`
	Enabled     bool   `yaml:"enabled"               json:"enabled"`
	Identifier  string `yaml:"identifier,omitempty"  json:"identifier,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Subrole     string `yaml:"subrole,omitempty"     json:"subrole,omitempty"`
	PID         int    `yaml:"pid"                   json:"pid"`
}

// Frame returns the node's bounding rectangle.
func (n NodeInfo) Frame() Rect {
	return Rect{X: n.Position.X, Y: n.Position.Y, Width: n.Size.Width, Height: n.Size.Height}
}

// UINode is one node of a serialized hierarchy. Children is populated only
// while the dump depth allows; Truncated marks a node whose children were
// cut off by the depth bound.
type UINode struct {
	NodeInfo  `yaml:",inline"`
	Children  []UINode `yaml:"children,omitempty"  json:"children,omitempty"`
	Truncated bool     `yaml:"truncated,omitempty" json:"truncated,omitempty"`
}
