//go:build darwin && cgo

package darwin

import "github.com/axctl/controller/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Locator:     NewLocator(),
			Input:       NewInputter(),
			Screen:      NewScreen(),
			ValueSetter: NewValueSetter(),
		}, nil
	}
}
