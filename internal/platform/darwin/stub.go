//go:build !darwin || !cgo

// Package darwin is the macOS accessibility and event-synthesis backend. On
// other platforms, or without cgo, the package compiles to nothing and no
// provider constructor is registered.
package darwin
