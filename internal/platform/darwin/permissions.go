//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static int wg_preflight_screen_capture(void) {
	return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

static int wg_request_screen_capture(void) {
	return CGRequestScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"

// ScreenCapture probes the Screen Recording permission, which gates
// kCGWindowName and, on recent releases, kCGWindowOwnerName.
type ScreenCapture struct{}

// HasScreenCaptureAccess reports whether the process already has access.
// It never prompts.
func (ScreenCapture) HasScreenCaptureAccess() bool {
	return C.wg_preflight_screen_capture() != 0
}

// RequestScreenCaptureAccess asks for access, showing the system prompt the
// first time. A grant usually takes effect only after the process restarts.
func (ScreenCapture) RequestScreenCaptureAccess() bool {
	return C.wg_request_screen_capture() != 0
}
