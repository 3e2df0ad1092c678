//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include <AppKit/AppKit.h>

static double main_screen_scale(void) {
	@autoreleasepool {
		NSScreen *s = [NSScreen mainScreen];
		return s ? [s backingScaleFactor] : 0;
	}
}

// Main screen frame and visible (work-area) frame in AppKit bottom-left
// coordinates. Returns 0 on success.
static int main_screen_frames(double *fx, double *fy, double *fw, double *fh,
                              double *vx, double *vy, double *vw, double *vh) {
	@autoreleasepool {
		NSScreen *s = [NSScreen mainScreen];
		if (!s) {
			return -1;
		}
		NSRect f = [s frame];
		NSRect v = [s visibleFrame];
		*fx = f.origin.x; *fy = f.origin.y; *fw = f.size.width; *fh = f.size.height;
		*vx = v.origin.x; *vy = v.origin.y; *vw = v.size.width; *vh = v.size.height;
		return 0;
	}
}
*/
import "C"

import (
	"fmt"

	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/platform"
)

// Screen implements platform.Screen for macOS.
type Screen struct{}

// NewScreen creates a new macOS screen prober.
func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) ScaleFactor() (float64, error) {
	scale := float64(C.main_screen_scale())
	if scale <= 0 {
		return 0, fmt.Errorf("no main screen available")
	}
	return scale, nil
}

func (s *Screen) Dimensions() (model.Size, error) {
	frame, _, err := mainScreenFrames()
	if err != nil {
		return model.Size{}, err
	}
	return model.Size{Width: frame.Width, Height: frame.Height}, nil
}

func (s *Screen) DockBounds() (model.Rect, error) {
	frame, visible, err := mainScreenFrames()
	if err != nil {
		return model.Rect{}, err
	}
	return platform.DockBoundsFromFrames(frame, visible), nil
}

// mainScreenFrames returns the main screen's frame and visible frame
// converted to top-left-origin coordinates.
func mainScreenFrames() (frame, visible model.Rect, err error) {
	var fx, fy, fw, fh, vx, vy, vw, vh C.double
	if C.main_screen_frames(&fx, &fy, &fw, &fh, &vx, &vy, &vw, &vh) != 0 {
		return model.Rect{}, model.Rect{}, fmt.Errorf("no main screen available")
	}
	frame = model.Rect{X: float64(fx), Y: 0, Width: float64(fw), Height: float64(fh)}
	// AppKit rects are bottom-left origin; flip the visible frame against
	// the top of the full frame.
	visible = model.Rect{
		X:      float64(vx),
		Y:      (float64(fy) + float64(fh)) - (float64(vy) + float64(vh)),
		Width:  float64(vw),
		Height: float64(vh),
	}
	return frame, visible, nil
}
