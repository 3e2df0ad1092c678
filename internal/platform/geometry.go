package platform

import "github.com/axctl/controller/internal/model"

// DockBoundsFromFrames derives the dock rectangle from the main screen's
// full frame and its visible (work-area) frame, both in top-left-origin
// coordinates. The gap is checked on the bottom, then left, then right edge;
// the first non-zero gap wins. No gap on any of those edges yields a zero
// rect. Single-edge heuristic: a hidden dock or a secondary display's dock
// is not detected.
func DockBoundsFromFrames(frame, visible model.Rect) model.Rect {
	bottomGap := (frame.Y + frame.Height) - (visible.Y + visible.Height)
	if bottomGap > 0 {
		return model.Rect{
			X:      frame.X,
			Y:      visible.Y + visible.Height,
			Width:  frame.Width,
			Height: bottomGap,
		}
	}

	leftGap := visible.X - frame.X
	if leftGap > 0 {
		return model.Rect{
			X:      frame.X,
			Y:      frame.Y,
			Width:  leftGap,
			Height: frame.Height,
		}
	}

	rightGap := (frame.X + frame.Width) - (visible.X + visible.Width)
	if rightGap > 0 {
		return model.Rect{
			X:      visible.X + visible.Width,
			Y:      frame.Y,
			Width:  rightGap,
			Height: frame.Height,
		}
	}

	return model.Rect{}
}

// InBounds reports whether p falls inside the screen frame sized by dims.
// Callers treat out-of-bounds points as a warning only: coordinates on a
// secondary screen are legitimate click targets.
func InBounds(p model.Point, dims model.Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < dims.Width && p.Y < dims.Height
}
