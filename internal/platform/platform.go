package platform

import (
	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/keys"
	"github.com/axctl/controller/internal/model"
)

// Locator resolves roots into the OS accessibility tree.
type Locator interface {
	// SystemRoot returns the system-wide accessibility root.
	SystemRoot() (ax.Node, error)

	// AppRoot returns the accessibility root of a running application
	// matched by display name or bundle identifier (first match wins).
	AppRoot(app string) (ax.Node, error)
}

// Input synthesizes mouse and keyboard events. Implementations acquire an
// event source through an ordered fallback chain and emit primitive events
// separated by fixed delays to respect the OS input queue.
type Input interface {
	Click(p model.Point, button MouseButton) error
	DoubleClick(p model.Point) error
	Scroll(p model.Point, deltaX, deltaY int) error
	TypeText(text string) error
	// KeyPress presses combo. A non-zero pid posts the events directly to
	// that process instead of the session-wide event tap.
	KeyPress(combo keys.Combo, pid int) error
	// Drag is present for interface completeness; the current backend does
	// not execute drags and returns ErrNotSupported.
	Drag(path []model.Point) error
}

// Screen answers geometry queries about the main screen.
type Screen interface {
	// ScaleFactor is the ratio of device pixels to logical points.
	ScaleFactor() (float64, error)
	// Dimensions is the main screen's frame size in logical points.
	Dimensions() (model.Size, error)
	// DockBounds is the desktop dock's bounding box, derived from the gap
	// between the full frame and the visible frame. Zero rect when no edge
	// shows a gap.
	DockBounds() (model.Rect, error)
}

// ValueSetter writes an element's value through the accessibility API.
type ValueSetter interface {
	SetValue(n ax.Node, value string) error
}
