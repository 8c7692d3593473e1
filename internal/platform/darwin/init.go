//go:build darwin && cgo

package darwin

import "github.com/mj1618/window-getter/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Backend:     newBackend(cgWindowList{}),
			Permissions: ScreenCapture{},
		}, nil
	}
}
