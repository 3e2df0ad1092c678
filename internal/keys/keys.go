// Package keys parses human-readable key-combination strings ("cmd+shift+t")
// into CGEvent modifier flags and virtual key codes.
package keys

import "strings"

// EventFlags is a union of CGEventFlags modifier masks.
type EventFlags uint64

// CGEventFlags modifier masks from CGEventTypes.h.
const (
	MaskCapsLock EventFlags = 1 << 16
	MaskShift    EventFlags = 1 << 17
	MaskControl  EventFlags = 1 << 18
	MaskOption   EventFlags = 1 << 19
	MaskCommand  EventFlags = 1 << 20
	MaskFunction EventFlags = 1 << 23
)

// KeyCode is a macOS virtual key code, or, for single-character tokens, the
// character's raw Unicode scalar value.
type KeyCode uint32

// Combo is a parsed key combination: a set of modifier flags plus the ordered
// key codes to press while they are held.
type Combo struct {
	Flags EventFlags
	Codes []KeyCode
}

// modifierNames maps modifier tokens to their CGEventFlags mask.
var modifierNames = map[string]EventFlags{
	"command":  MaskCommand,
	"cmd":      MaskCommand,
	"shift":    MaskShift,
	"option":   MaskOption,
	"alt":      MaskOption,
	"opt":      MaskOption,
	"control":  MaskControl,
	"ctrl":     MaskControl,
	"capslock": MaskCapsLock,
	"function": MaskFunction,
	"fn":       MaskFunction,
}

// namedKeys maps named key tokens to Carbon virtual key codes (Events.h).
var namedKeys = map[string]KeyCode{
	"return":    0x24,
	"enter":     0x24,
	"tab":       0x30,
	"space":     0x31,
	"delete":    0x33,
	"backspace": 0x33,
	"escape":    0x35,
	"esc":       0x35,
	"left":      0x7B,
	"right":     0x7C,
	"down":      0x7D,
	"up":        0x7E,
	"home":      0x73,
	"end":       0x77,
	"pageup":    0x74,
	"page up":   0x74,
	"pagedown":  0x79,
	"page down": 0x79,
	"f1":        0x7A,
	"f2":        0x78,
	"f3":        0x63,
	"f4":        0x76,
	"f5":        0x60,
	"f6":        0x61,
	"f7":        0x62,
	"f8":        0x64,
	"f9":        0x65,
	"f10":       0x6D,
	"f11":       0x67,
	"f12":       0x6F,
}

// Parse splits text on "+" and resolves each trimmed component in priority
// order: modifier name, then named key, then single-character Unicode scalar.
// Components matching none of these are dropped silently; that quirk is
// load-bearing for callers that feed through unvalidated input, and tests
// pin it.
func Parse(text string) Combo {
	var combo Combo
	for _, part := range strings.Split(text, "+") {
		token := strings.ToLower(strings.TrimSpace(part))
		if mask, ok := modifierNames[token]; ok {
			combo.Flags |= mask
			continue
		}
		if code, ok := namedKeys[token]; ok {
			combo.Codes = append(combo.Codes, code)
			continue
		}
		if runes := []rune(token); len(runes) == 1 {
			combo.Codes = append(combo.Codes, KeyCode(runes[0]))
		}
	}
	return combo
}
