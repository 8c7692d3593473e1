//go:build windows

package win32

import "fmt"

var procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnablePerMonitorDPI makes the process per-monitor DPI aware, so that
// GetWindowRect reports physical pixels like DwmGetWindowAttribute does.
// It affects the whole process and has to run before any window is created.
func EnablePerMonitorDPI() error {
	if err := procSetProcessDpiAwarenessContext.Find(); err != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not available: %w", err)
	}
	r, _, e := procSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return classify("SetProcessDpiAwarenessContext", e)
	}
	return nil
}
