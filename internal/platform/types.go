package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/axctl/controller/internal/model"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left or right)", s)
	}
}

// ParsePosition parses an "x,y" string into a Point.
func ParsePosition(s string) (model.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Point{}, fmt.Errorf("invalid position %q: expected x,y", s)
	}
	vals := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.Point{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
		vals[i] = v
	}
	return model.Point{X: vals[0], Y: vals[1]}, nil
}

// ParseRegion parses an "x,y,w,h" string into a Rect. The region must be
// exactly four integers.
func ParseRegion(s string) (model.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Rect{}, fmt.Errorf("invalid region %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.Rect{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}
	return model.Rect{
		X:      float64(vals[0]),
		Y:      float64(vals[1]),
		Width:  float64(vals[2]),
		Height: float64(vals[3]),
	}, nil
}
