//go:build darwin && cgo

// Package darwin provides macOS platform support using the CoreGraphics and
// Accessibility APIs. All functionality requires CGo (Objective-C
// frameworks). On other platforms the provider registration never runs and
// platform.NewProvider reports ErrUnsupported.
package darwin
