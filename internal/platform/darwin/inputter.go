//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdbool.h>
#include <stdint.h>

static CGEventSourceRef create_event_source(int state) {
	return CGEventSourceCreate((CGEventSourceStateID)state);
}

static void release_event_source(CGEventSourceRef src) {
	if (src) {
		CFRelease(src);
	}
}

static int post_mouse_event(CGEventSourceRef src, int type, double x, double y, int button, int clickState) {
	CGEventRef ev = CGEventCreateMouseEvent(src, (CGEventType)type, CGPointMake(x, y), (CGMouseButton)button);
	if (!ev) {
		return -1;
	}
	if (clickState > 0) {
		CGEventSetIntegerValueField(ev, kCGMouseEventClickState, clickState);
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 0;
}

static int post_scroll_event(CGEventSourceRef src, int dy, int dx) {
	CGEventRef ev = CGEventCreateScrollWheelEvent(src, kCGScrollEventUnitLine, 2, dy, dx);
	if (!ev) {
		return -1;
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 0;
}

// Key event carrying a literal Unicode character instead of a physical key
// code, used for typing arbitrary text.
static int post_char_event(CGEventSourceRef src, UniChar ch, bool down) {
	CGEventRef ev = CGEventCreateKeyboardEvent(src, 0, down);
	if (!ev) {
		return -1;
	}
	CGEventKeyboardSetUnicodeString(ev, 1, &ch);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 0;
}

// Key event for a key code with modifier flags. A positive pid posts
// directly to that process instead of the session-wide tap.
static int post_key_event(CGEventSourceRef src, uint16_t keyCode, bool down, uint64_t flags, int pid) {
	CGEventRef ev = CGEventCreateKeyboardEvent(src, (CGKeyCode)keyCode, down);
	if (!ev) {
		return -1;
	}
	CGEventSetFlags(ev, (CGEventFlags)flags);
	if (pid > 0) {
		CGEventPostToPid((pid_t)pid, ev);
	} else {
		CGEventPost(kCGHIDEventTap, ev);
	}
	CFRelease(ev);
	return 0;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"time"

	"github.com/axctl/controller/internal/keys"
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/platform"
)

// Fixed delays between primitive events. The OS input queue drops or
// reorders events that arrive too close together; these are constants, not
// adaptive backoff.
const (
	moveSettleDelay = 50 * time.Millisecond
	buttonDelay     = 10 * time.Millisecond
	multiClickDelay = 60 * time.Millisecond
	keyStrokeDelay  = 30 * time.Millisecond
	typeCharDelay   = 20 * time.Millisecond
)

// Inputter implements platform.Input for macOS.
type Inputter struct{}

// NewInputter creates a new macOS inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

// acquireSource tries event-source states in order: the combined session
// state first, then the HID system state. Both failing is reported as an
// error; callers treat that as a non-fatal degradation.
func acquireSource() (C.CGEventSourceRef, error) {
	states := []C.int{
		C.int(C.kCGEventSourceStateCombinedSessionState),
		C.int(C.kCGEventSourceStateHIDSystemState),
	}
	for _, state := range states {
		if src := C.create_event_source(state); src != nil {
			return src, nil
		}
	}
	return nil, errors.New("failed to create event source (combined-session and hid-system states both unavailable)")
}

func mouseEventTypes(button platform.MouseButton) (down, up, cgButton C.int) {
	if button == platform.MouseRight {
		return C.int(C.kCGEventRightMouseDown), C.int(C.kCGEventRightMouseUp), C.int(C.kCGMouseButtonRight)
	}
	return C.int(C.kCGEventLeftMouseDown), C.int(C.kCGEventLeftMouseUp), C.int(C.kCGMouseButtonLeft)
}

func (in *Inputter) Click(p model.Point, button platform.MouseButton) error {
	src, err := acquireSource()
	if err != nil {
		return err
	}
	defer C.release_event_source(src)

	downType, upType, cgButton := mouseEventTypes(button)

	if C.post_mouse_event(src, C.int(C.kCGEventMouseMoved), C.double(p.X), C.double(p.Y), cgButton, 0) != 0 {
		return fmt.Errorf("failed to move mouse to (%g, %g)", p.X, p.Y)
	}
	time.Sleep(moveSettleDelay)

	if C.post_mouse_event(src, downType, C.double(p.X), C.double(p.Y), cgButton, 1) != 0 {
		return fmt.Errorf("failed to press at (%g, %g)", p.X, p.Y)
	}
	time.Sleep(buttonDelay)
	if C.post_mouse_event(src, upType, C.double(p.X), C.double(p.Y), cgButton, 1) != 0 {
		return fmt.Errorf("failed to release at (%g, %g)", p.X, p.Y)
	}
	return nil
}

func (in *Inputter) DoubleClick(p model.Point) error {
	src, err := acquireSource()
	if err != nil {
		return err
	}
	defer C.release_event_source(src)

	if C.post_mouse_event(src, C.int(C.kCGEventMouseMoved), C.double(p.X), C.double(p.Y), C.int(C.kCGMouseButtonLeft), 0) != 0 {
		return fmt.Errorf("failed to move mouse to (%g, %g)", p.X, p.Y)
	}
	time.Sleep(moveSettleDelay)

	for clickState := 1; clickState <= 2; clickState++ {
		if C.post_mouse_event(src, C.int(C.kCGEventLeftMouseDown), C.double(p.X), C.double(p.Y), C.int(C.kCGMouseButtonLeft), C.int(clickState)) != 0 {
			return fmt.Errorf("failed to press at (%g, %g)", p.X, p.Y)
		}
		time.Sleep(buttonDelay)
		if C.post_mouse_event(src, C.int(C.kCGEventLeftMouseUp), C.double(p.X), C.double(p.Y), C.int(C.kCGMouseButtonLeft), C.int(clickState)) != 0 {
			return fmt.Errorf("failed to release at (%g, %g)", p.X, p.Y)
		}
		if clickState == 1 {
			time.Sleep(multiClickDelay)
		}
	}
	return nil
}

func (in *Inputter) Scroll(p model.Point, deltaX, deltaY int) error {
	src, err := acquireSource()
	if err != nil {
		return err
	}
	defer C.release_event_source(src)

	if C.post_mouse_event(src, C.int(C.kCGEventMouseMoved), C.double(p.X), C.double(p.Y), C.int(C.kCGMouseButtonLeft), 0) != 0 {
		return fmt.Errorf("failed to move mouse to (%g, %g)", p.X, p.Y)
	}
	time.Sleep(moveSettleDelay)

	if C.post_scroll_event(src, C.int(deltaY), C.int(deltaX)) != 0 {
		return fmt.Errorf("failed to scroll at (%g, %g)", p.X, p.Y)
	}
	return nil
}

// TypeText types one Unicode scalar at a time, each as a key-down/key-up
// pair carrying the literal character rather than a physical key code.
func (in *Inputter) TypeText(text string) error {
	src, err := acquireSource()
	if err != nil {
		return err
	}
	defer C.release_event_source(src)

	for _, ch := range text {
		if C.post_char_event(src, C.UniChar(ch), true) != 0 ||
			C.post_char_event(src, C.UniChar(ch), false) != 0 {
			return fmt.Errorf("failed to type character %q", ch)
		}
		time.Sleep(typeCharDelay)
	}
	return nil
}

func (in *Inputter) KeyPress(combo keys.Combo, pid int) error {
	src, err := acquireSource()
	if err != nil {
		return err
	}
	defer C.release_event_source(src)

	for _, code := range combo.Codes {
		if C.post_key_event(src, C.uint16_t(code), true, C.uint64_t(combo.Flags), C.int(pid)) != 0 {
			return fmt.Errorf("failed to press key code %d", code)
		}
		time.Sleep(buttonDelay)
		if C.post_key_event(src, C.uint16_t(code), false, C.uint64_t(combo.Flags), C.int(pid)) != 0 {
			return fmt.Errorf("failed to release key code %d", code)
		}
		time.Sleep(keyStrokeDelay)
	}
	return nil
}

// Drag is disabled in the current command surface.
func (in *Inputter) Drag(path []model.Point) error {
	return platform.ErrNotSupported
}
