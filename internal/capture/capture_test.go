package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/axctl/controller/internal/model"
)

func TestWritePlaceholder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screenshots")
	now = func() time.Time { return time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC) }
	defer func() { now = time.Now }()

	path, err := WritePlaceholder(dir, model.Rect{X: 10, Y: 20, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("WritePlaceholder: %v", err)
	}
	if !strings.HasSuffix(path, "screenshot_20260827_103000.png") {
		t.Fatalf("unexpected path %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written file is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 480 {
		t.Fatalf("expected 640x480, got %v", img.Bounds())
	}
}

func TestWritePlaceholderCreatesDirOnDemand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "screenshots")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("precondition: dir must not exist")
	}
	if _, err := WritePlaceholder(dir, model.Rect{Width: 8, Height: 8}); err != nil {
		t.Fatalf("WritePlaceholder: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestWritePlaceholderTinyRegion(t *testing.T) {
	// Degenerate sizes are clamped to 1x1 rather than failing.
	path, err := WritePlaceholder(t.TempDir(), model.Rect{})
	if err != nil {
		t.Fatalf("WritePlaceholder: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("expected 1x1 clamp, got %v", img.Bounds())
	}
}
