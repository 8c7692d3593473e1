package win32

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/mj1618/window-getter/internal/platform"
)

// HWND is a native window handle.
type HWND uintptr

// Rect mirrors the native RECT layout.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// hresult is a COM status code returned directly by a native call.
type hresult uint32

func (h hresult) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(h))
}

// errNoThread is used when GetWindowThreadProcessId fails without setting a
// last error, which happens for handles that were already destroyed.
var errNoThread = errors.New("window has no owning thread")

// api is the set of native calls the backend needs. Methods return either a
// syscall.Errno, an hresult, or nil.
type api interface {
	enumWindows() ([]HWND, error)
	isWindow(h HWND) bool
	isWindowVisible(h HWND) bool
	rootAncestor(h HWND) HWND

	// windowText fills buf and returns the number of UTF-16 units written.
	// When it returns 0, err carries the thread's last error, or nil if the
	// last error was ERROR_SUCCESS.
	windowText(h HWND, buf []uint16) (n int, err error)

	windowRect(h HWND) (Rect, error)
	extendedFrameBounds(h HWND) (Rect, error)

	// cloaked reports DWMWA_CLOAKED: windows on another virtual desktop or
	// suspended UWP frames are cloaked while still WS_VISIBLE.
	cloaked(h HWND) (bool, error)
	windowThreadProcessID(h HWND) (tid, pid uint32, err error)

	openProcess(pid uint32) (uintptr, error)
	processImageName(process uintptr) (string, error)
	closeHandle(process uintptr) error
}

// classify converts a native failure into the shared taxonomy. Win32 codes
// are mapped to HRESULTs first, so ERROR_ACCESS_DENIED and E_ACCESSDENIED
// both become platform.KindPermissionDenied.
func classify(op string, err error) error {
	var hr hresult
	if errors.As(err, &hr) {
		return platform.FromHRESULT(op, uint32(hr), err)
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return platform.FromHRESULT(op, platform.HRESULTFromWin32(uint32(errno)), err)
	}
	return platform.PlatformSpecific(op, err)
}
