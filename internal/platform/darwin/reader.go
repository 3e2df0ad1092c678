//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework AppKit -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <AppKit/AppKit.h>
#include <stdio.h>
#include <stdlib.h>

static AXUIElementRef ax_system_wide(void) {
	return AXUIElementCreateSystemWide();
}

static AXUIElementRef ax_app_element(pid_t pid) {
	return AXUIElementCreateApplication(pid);
}

// Copy a string-convertible attribute into buf. Returns 0 on success.
static int ax_copy_string_attr(AXUIElementRef el, const char *name, char *buf, int buflen) {
	CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
	CFRelease(cfName);
	buf[0] = '\0';
	if (err != kAXErrorSuccess || value == NULL) {
		return -1;
	}
	int rc = -1;
	CFTypeID tid = CFGetTypeID(value);
	if (tid == CFStringGetTypeID()) {
		if (CFStringGetCString((CFStringRef)value, buf, buflen, kCFStringEncodingUTF8)) {
			rc = 0;
		}
	} else if (tid == CFNumberGetTypeID()) {
		double d = 0;
		CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, &d);
		snprintf(buf, buflen, "%g", d);
		rc = 0;
	} else if (tid == CFBooleanGetTypeID()) {
		snprintf(buf, buflen, "%s", CFBooleanGetValue((CFBooleanRef)value) ? "true" : "false");
		rc = 0;
	}
	CFRelease(value);
	return rc;
}

// Read a boolean attribute. Returns 0 on success.
static int ax_copy_bool_attr(AXUIElementRef el, const char *name, int *out) {
	CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
	CFRelease(cfName);
	if (err != kAXErrorSuccess || value == NULL) {
		return -1;
	}
	int rc = -1;
	if (CFGetTypeID(value) == CFBooleanGetTypeID()) {
		*out = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
		rc = 0;
	}
	CFRelease(value);
	return rc;
}

// Read an AXValue-wrapped CGPoint attribute. Returns 0 on success.
static int ax_copy_point_attr(AXUIElementRef el, const char *name, double *x, double *y) {
	CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
	CFRelease(cfName);
	if (err != kAXErrorSuccess || value == NULL) {
		return -1;
	}
	int rc = -1;
	CGPoint p;
	if (CFGetTypeID(value) == AXValueGetTypeID() &&
	    AXValueGetValue((AXValueRef)value, kAXValueCGPointType, &p)) {
		*x = p.x;
		*y = p.y;
		rc = 0;
	}
	CFRelease(value);
	return rc;
}

// Read an AXValue-wrapped CGSize attribute. Returns 0 on success.
static int ax_copy_size_attr(AXUIElementRef el, const char *name, double *w, double *h) {
	CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
	CFRelease(cfName);
	if (err != kAXErrorSuccess || value == NULL) {
		return -1;
	}
	int rc = -1;
	CGSize s;
	if (CFGetTypeID(value) == AXValueGetTypeID() &&
	    AXValueGetValue((AXValueRef)value, kAXValueCGSizeType, &s)) {
		*w = s.width;
		*h = s.height;
		rc = 0;
	}
	CFRelease(value);
	return rc;
}

// Copy the children array. Caller releases via CFRelease. NULL when the
// element has no children attribute.
static CFArrayRef ax_copy_children(AXUIElementRef el) {
	CFTypeRef value = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXChildrenAttribute, &value) != kAXErrorSuccess) {
		return NULL;
	}
	if (value != NULL && CFGetTypeID(value) != CFArrayGetTypeID()) {
		CFRelease(value);
		return NULL;
	}
	return (CFArrayRef)value;
}

// Retained child element at index i. Caller releases.
static AXUIElementRef ax_child_at(CFArrayRef children, int i) {
	AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(children, i);
	if (child) {
		CFRetain(child);
	}
	return child;
}

static int ax_element_pid(AXUIElementRef el) {
	pid_t pid = 0;
	if (AXUIElementGetPid(el, &pid) != kAXErrorSuccess) {
		return 0;
	}
	return (int)pid;
}

static void ax_release(AXUIElementRef el) {
	if (el) {
		CFRelease(el);
	}
}

// Resolve a running application by display name or bundle identifier.
// Returns the pid of the first match, or -1.
static int resolve_app_pid(const char *name) {
	@autoreleasepool {
		NSString *wanted = [NSString stringWithUTF8String:name];
		for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
			if ([app.localizedName isEqualToString:wanted] ||
			    [app.bundleIdentifier isEqualToString:wanted]) {
				return (int)app.processIdentifier;
			}
		}
	}
	return -1;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/model"
)

// axAttrNames maps the query vocabulary to AX attribute names.
var axAttrNames = map[string]string{
	ax.AttrRole:        "AXRole",
	ax.AttrTitle:       "AXTitle",
	ax.AttrIdentifier:  "AXIdentifier",
	ax.AttrDescription: "AXDescription",
}

// Node wraps a retained AXUIElementRef and implements ax.Node. It is a live
// view into OS state: attribute reads hit the accessibility API every time.
type Node struct {
	ref C.AXUIElementRef
}

func newNode(ref C.AXUIElementRef) *Node {
	n := &Node{ref: ref}
	runtime.SetFinalizer(n, func(n *Node) {
		C.ax_release(n.ref)
	})
	return n
}

// Attr reads one query-vocabulary attribute from the live element.
func (n *Node) Attr(key string) (string, bool) {
	axName, ok := axAttrNames[key]
	if !ok {
		return "", false
	}
	s, ok := n.stringAttr(axName)
	return s, ok
}

func (n *Node) stringAttr(axName string) (string, bool) {
	cName := C.CString(axName)
	defer C.free(unsafe.Pointer(cName))
	var buf [4096]C.char
	if C.ax_copy_string_attr(n.ref, cName, &buf[0], C.int(len(buf))) != 0 {
		return "", false
	}
	return C.GoString(&buf[0]), true
}

// Info reads the full attribute record of the element.
func (n *Node) Info() model.NodeInfo {
	info := model.NodeInfo{Enabled: true, PID: int(C.ax_element_pid(n.ref))}
	info.Role, _ = n.stringAttr("AXRole")
	info.Title, _ = n.stringAttr("AXTitle")
	info.Value, _ = n.stringAttr("AXValue")
	info.Identifier, _ = n.stringAttr("AXIdentifier")
	info.Description, _ = n.stringAttr("AXDescription")
	info.Subrole, _ = n.stringAttr("AXSubrole")

	cPos := C.CString("AXPosition")
	var x, y C.double
	if C.ax_copy_point_attr(n.ref, cPos, &x, &y) == 0 {
		info.Position = model.Point{X: float64(x), Y: float64(y)}
	}
	C.free(unsafe.Pointer(cPos))

	cSize := C.CString("AXSize")
	var w, h C.double
	if C.ax_copy_size_attr(n.ref, cSize, &w, &h) == 0 {
		info.Size = model.Size{Width: float64(w), Height: float64(h)}
	}
	C.free(unsafe.Pointer(cSize))

	cEnabled := C.CString("AXEnabled")
	var enabled C.int
	if C.ax_copy_bool_attr(n.ref, cEnabled, &enabled) == 0 {
		info.Enabled = enabled != 0
	}
	C.free(unsafe.Pointer(cEnabled))

	return info
}

// Children returns the element's child nodes in document order.
func (n *Node) Children() []ax.Node {
	arr := C.ax_copy_children(n.ref)
	if arr == nil {
		return nil
	}
	defer C.CFRelease(C.CFTypeRef(arr))

	count := int(C.CFArrayGetCount(arr))
	children := make([]ax.Node, 0, count)
	for i := 0; i < count; i++ {
		child := C.ax_child_at(arr, C.int(i))
		if child != nil {
			children = append(children, newNode(child))
		}
	}
	return children
}

// Locator implements platform.Locator for macOS.
type Locator struct{}

// NewLocator creates a new macOS locator.
func NewLocator() *Locator {
	return &Locator{}
}

// SystemRoot returns the system-wide accessibility root.
func (l *Locator) SystemRoot() (ax.Node, error) {
	if err := CheckAccessibilityPermission(); err != nil {
		return nil, err
	}
	ref := C.ax_system_wide()
	if ref == nil {
		return nil, fmt.Errorf("failed to create system-wide accessibility element")
	}
	return newNode(ref), nil
}

// AppRoot returns the accessibility root of a running application matched by
// display name or bundle identifier. The first matching application wins.
func (l *Locator) AppRoot(app string) (ax.Node, error) {
	if err := CheckAccessibilityPermission(); err != nil {
		return nil, err
	}
	cName := C.CString(app)
	defer C.free(unsafe.Pointer(cName))
	pid := int(C.resolve_app_pid(cName))
	if pid < 0 {
		return nil, fmt.Errorf("application not found: %q", app)
	}
	ref := C.ax_app_element(C.pid_t(pid))
	if ref == nil {
		return nil, fmt.Errorf("failed to create accessibility element for %q (pid %d)", app, pid)
	}
	return newNode(ref), nil
}
