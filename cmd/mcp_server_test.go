package cmd

import (
	"testing"

	"github.com/axctl/controller/internal/ax"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"app": "Safari", "pid": 42.0}
	if got := stringParam(params, "app", ""); got != "Safari" {
		t.Errorf("expected Safari, got %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	// Wrong type falls back to the default.
	if got := stringParam(params, "pid", "d"); got != "d" {
		t.Errorf("expected default for non-string value, got %q", got)
	}
}

func TestNumericParams(t *testing.T) {
	params := map[string]interface{}{"x": 12.5, "pid": 42.0}
	if got := floatParam(params, "x", 0); got != 12.5 {
		t.Errorf("expected 12.5, got %g", got)
	}
	if got := floatParam(params, "missing", 7); got != 7 {
		t.Errorf("expected default 7, got %g", got)
	}
	if got := intParam(params, "pid", 0); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := intParam(params, "missing", 10); got != 10 {
		t.Errorf("expected default 10, got %d", got)
	}
}

func TestHasParam(t *testing.T) {
	params := map[string]interface{}{"x": 0.0}
	if !hasParam(params, "x") {
		t.Error("expected x to be present even with zero value")
	}
	if hasParam(params, "y") {
		t.Error("expected y to be absent")
	}
}

func TestQueryFromParams(t *testing.T) {
	params := map[string]interface{}{
		"role":  "AXButton",
		"title": "OK",
		"app":   "Safari",
		"x":     5.0,
	}
	q := queryFromParams(params)
	if len(q) != 2 {
		t.Fatalf("expected 2 query entries, got %d", len(q))
	}
	if q[ax.AttrRole] != "AXButton" || q[ax.AttrTitle] != "OK" {
		t.Errorf("unexpected query contents: %v", q)
	}
}

func TestMCPServe_RejectsUnknownTransport(t *testing.T) {
	s := &mcpServer{}
	err := s.serve(MCPConfig{Transport: "websocket"})
	if err == nil {
		t.Error("expected error for unsupported transport")
	}
}
