package window

import "github.com/mj1618/window-getter/internal/platform"

// newProvider is replaced in tests.
var newProvider = platform.NewProvider

// Source answers window queries through one platform provider. The package
// level functions use the provider compiled into the binary.
type Source struct {
	p *platform.Provider
}

// NewSource binds a Source to p.
func NewSource(p *platform.Provider) *Source {
	if p.Permissions == nil {
		p.Permissions = platform.AlwaysGranted
	}
	return &Source{p: p}
}

// Default returns a Source for the current platform.
func Default() (*Source, error) {
	p, err := newProvider()
	if err != nil {
		return nil, err
	}
	return NewSource(p), nil
}

// Windows returns every window the platform reports, in native order.
func (s *Source) Windows() ([]Window, error) {
	native, err := s.p.Backend.Windows()
	if err != nil {
		return nil, err
	}
	windows := make([]Window, len(native))
	for i, w := range native {
		windows[i] = Window{w: w}
	}
	return windows, nil
}

// Window looks up one window. See GetWindow for the platform differences.
func (s *Source) Window(id ID) (Window, bool, error) {
	native, ok, err := s.p.Backend.Window(id)
	if err != nil || !ok {
		return Window{}, false, err
	}
	return Window{w: native}, true, nil
}

func (s *Source) HasScreenCaptureAccess() bool {
	return s.p.Permissions.HasScreenCaptureAccess()
}

func (s *Source) RequestScreenCaptureAccess() bool {
	return s.p.Permissions.RequestScreenCaptureAccess()
}

// EnableDPIAwareness is a no-op where coordinates are not DPI virtualized.
func (s *Source) EnableDPIAwareness() error {
	if s.p.EnableDPIAwareness == nil {
		return nil
	}
	return s.p.EnableDPIAwareness()
}

// GetWindows returns every window the platform reports, in native order:
// front to back on macOS, EnumWindows order on Windows. The order is never
// re-sorted.
func GetWindows() ([]Window, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Windows()
}

// GetWindow looks up a single window. ok is false when no window with that
// id exists.
//
// The failure modes differ by platform. On macOS the window list is queried
// again and the call fails with ErrNoWindowEnvironment when no window server
// session is available, whether or not id exists. On Windows the call only
// checks that the handle is a live top-level window and never returns an
// error.
func GetWindow(id ID) (w Window, ok bool, err error) {
	s, err := Default()
	if err != nil {
		return Window{}, false, err
	}
	return s.Window(id)
}

// HasScreenCaptureAccess reports whether window titles and owner names will
// be populated. It is always true on platforms that gate nothing.
func HasScreenCaptureAccess() bool {
	s, err := Default()
	if err != nil {
		return false
	}
	return s.HasScreenCaptureAccess()
}

// RequestScreenCaptureAccess asks the user for screen capture access and
// reports whether it is granted. On macOS the grant usually takes effect
// only after the process restarts.
func RequestScreenCaptureAccess() bool {
	s, err := Default()
	if err != nil {
		return false
	}
	return s.RequestScreenCaptureAccess()
}

// EnableDPIAwareness makes the process per-monitor DPI aware so that bounds
// are reported in physical pixels. Call it before creating any window.
func EnableDPIAwareness() error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.EnableDPIAwareness()
}
