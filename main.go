package main

import (
	"github.com/axctl/controller/cmd"

	// Registers the macOS provider when built on darwin with cgo.
	_ "github.com/axctl/controller/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
