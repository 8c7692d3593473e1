//go:build windows

package win32

import "github.com/mj1618/window-getter/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Backend:            newBackend(nativeAPI{}),
			Permissions:        platform.AlwaysGranted,
			EnableDPIAwareness: EnablePerMonitorDPI,
		}, nil
	}
}
