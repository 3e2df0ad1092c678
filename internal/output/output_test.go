package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with stdout redirected to a pipe and returns what it
// wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPrintJSONDefault(t *testing.T) {
	OutputFormat = FormatJSON
	out := captureStdout(t, func() {
		if err := Print(map[string]interface{}{"success": true, "width": 1440}); err != nil {
			t.Errorf("Print: %v", err)
		}
	})
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded["success"] != true {
		t.Fatalf("unexpected record: %v", decoded)
	}
}

func TestPrintYAML(t *testing.T) {
	OutputFormat = FormatYAML
	defer func() { OutputFormat = FormatJSON }()
	out := captureStdout(t, func() {
		if err := Print(ErrorResult{Success: false, Error: "element not found"}); err != nil {
			t.Errorf("Print: %v", err)
		}
	})
	if !strings.Contains(out, "success: false") || !strings.Contains(out, "element not found") {
		t.Fatalf("unexpected yaml output:\n%s", out)
	}
}

func TestPrintErrorRecord(t *testing.T) {
	OutputFormat = FormatJSON
	out := captureStdout(t, func() {
		if err := PrintError("application not found: NotAnApp"); err != nil {
			t.Errorf("PrintError: %v", err)
		}
	})
	var rec ErrorResult
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if rec.Success || rec.Error == "" {
		t.Fatalf("unexpected error record: %+v", rec)
	}
}
