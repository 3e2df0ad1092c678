// Package capture writes placeholder screenshot images. The controller does
// not ship a real capture pipeline; callers get a stamped PNG of the
// requested region so downstream tooling always has a file to pick up.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/axctl/controller/internal/model"
)

var (
	background = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2e, A: 0xff}
	border     = color.RGBA{R: 0x88, G: 0x88, B: 0x90, A: 0xff}
	labelColor = color.RGBA{R: 0xe8, G: 0xe8, B: 0xec, A: 0xff}
)

// now is swapped out in tests for a fixed timestamp.
var now = time.Now

// WritePlaceholder renders a placeholder capture of region into dir, creating
// the directory on demand, and returns the written file path.
func WritePlaceholder(dir string, region model.Rect) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	w, h := int(region.Width), int(region.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	drawBorder(img)

	ts := now()
	label := fmt.Sprintf("screenshot %dx%d at (%d,%d) %s",
		w, h, int(region.X), int(region.Y), ts.Format("2006-01-02 15:04:05"))
	drawLabel(img, label)

	path := filepath.Join(dir, fmt.Sprintf("screenshot_%s.png", ts.Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	return path, nil
}

func drawBorder(img *image.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, border)
		img.Set(x, b.Max.Y-1, border)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, border)
		img.Set(b.Max.X-1, y, border)
	}
}

func drawLabel(img *image.RGBA, label string) {
	face := basicfont.Face7x13
	b := img.Bounds()
	// Skip the label when the region is too small to hold it.
	if b.Dx() < len(label)*face.Advance+8 || b.Dy() < face.Height+8 {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot: fixed.P(
			b.Min.X+(b.Dx()-len(label)*face.Advance)/2,
			b.Min.Y+b.Dy()/2,
		),
	}
	d.DrawString(label)
}
