package platform

import (
	"testing"

	"github.com/axctl/controller/internal/model"
)

func TestDockBoundsBottom(t *testing.T) {
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	visible := model.Rect{X: 0, Y: 0, Width: 1000, Height: 670}
	got := DockBoundsFromFrames(frame, visible)
	want := model.Rect{X: 0, Y: 670, Width: 1000, Height: 30}
	if got != want {
		t.Fatalf("bottom dock: got %+v, want %+v", got, want)
	}
}

func TestDockBoundsLeft(t *testing.T) {
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	visible := model.Rect{X: 64, Y: 0, Width: 936, Height: 700}
	got := DockBoundsFromFrames(frame, visible)
	want := model.Rect{X: 0, Y: 0, Width: 64, Height: 700}
	if got != want {
		t.Fatalf("left dock: got %+v, want %+v", got, want)
	}
}

func TestDockBoundsRight(t *testing.T) {
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	visible := model.Rect{X: 0, Y: 0, Width: 936, Height: 700}
	got := DockBoundsFromFrames(frame, visible)
	want := model.Rect{X: 936, Y: 0, Width: 64, Height: 700}
	if got != want {
		t.Fatalf("right dock: got %+v, want %+v", got, want)
	}
}

func TestDockBoundsBottomWinsOverSide(t *testing.T) {
	// Bottom is checked first even when a side gap also exists.
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	visible := model.Rect{X: 64, Y: 0, Width: 936, Height: 670}
	got := DockBoundsFromFrames(frame, visible)
	if got.Height != 30 || got.Width != 1000 {
		t.Fatalf("expected bottom edge to take priority, got %+v", got)
	}
}

func TestDockBoundsNoGap(t *testing.T) {
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	got := DockBoundsFromFrames(frame, frame)
	if !got.IsZero() {
		t.Fatalf("expected zero rect, got %+v", got)
	}
}

func TestDockBoundsMenuBarOnly(t *testing.T) {
	// A visible frame shrunk only at the top (menu bar) is not a dock.
	frame := model.Rect{X: 0, Y: 0, Width: 1000, Height: 700}
	visible := model.Rect{X: 0, Y: 25, Width: 1000, Height: 675}
	got := DockBoundsFromFrames(frame, visible)
	if !got.IsZero() {
		t.Fatalf("expected zero rect for menu-bar-only gap, got %+v", got)
	}
}

func TestInBounds(t *testing.T) {
	dims := model.Size{Width: 1440, Height: 900}
	cases := []struct {
		p    model.Point
		want bool
	}{
		{model.Point{X: 0, Y: 0}, true},
		{model.Point{X: 1439, Y: 899}, true},
		{model.Point{X: 1440, Y: 0}, false},
		{model.Point{X: -1, Y: 10}, false},
		{model.Point{X: 2000, Y: 400}, false},
	}
	for _, tc := range cases {
		if got := InBounds(tc.p, dims); got != tc.want {
			t.Errorf("InBounds(%+v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
