package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the backends for the current OS.
type Provider struct {
	Backend     Backend
	Permissions PermissionProber

	// EnableDPIAwareness switches the process to per-monitor DPI awareness.
	// Nil on platforms where coordinates are not DPI virtualized.
	EnableDPIAwareness func() error
}

// ErrUnsupported is returned on platforms without a backend. It has kind
// KindNoWindowEnvironment.
var ErrUnsupported = NoWindowEnvironment("NewProvider",
	fmt.Errorf("window-getter is not supported on %s/%s; supported: darwin (cgo), windows", runtime.GOOS, runtime.GOARCH))

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go and internal/platform/win32/init_windows.go.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if p.Permissions == nil {
		p.Permissions = AlwaysGranted
	}
	return p, nil
}
