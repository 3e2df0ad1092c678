//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static int ax_set_string_value(AXUIElementRef el, const char *value) {
	CFStringRef cf = CFStringCreateWithCString(NULL, value, kCFStringEncodingUTF8);
	if (!cf) {
		return -1;
	}
	AXError err = AXUIElementSetAttributeValue(el, kAXValueAttribute, cf);
	CFRelease(cf);
	return err == kAXErrorSuccess ? 0 : -1;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/axctl/controller/internal/ax"
)

// ValueSetter implements platform.ValueSetter for macOS by writing the
// element's AXValue attribute directly.
type ValueSetter struct{}

// NewValueSetter creates a new macOS value setter.
func NewValueSetter() *ValueSetter {
	return &ValueSetter{}
}

func (vs *ValueSetter) SetValue(n ax.Node, value string) error {
	node, ok := n.(*Node)
	if !ok {
		return fmt.Errorf("cannot set value on %T", n)
	}
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	if C.ax_set_string_value(node.ref, cValue) != 0 {
		return fmt.Errorf("failed to set element value")
	}
	return nil
}
