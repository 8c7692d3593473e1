package win32

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/mj1618/window-getter/internal/platform"
)

// titleBufferLen is the number of UTF-16 units read for a title.
const titleBufferLen = 512

// HandleFromID converts a normalized window id back into a handle. User
// handles carry only 32 significant bits, and 64-bit Windows sign-extends
// them when widening, so the conversion does the same.
func HandleFromID(id platform.WindowID) HWND {
	return HWND(uintptr(int32(id.Uint32())))
}

// IDFromHandle truncates a handle to its 32 significant bits.
func IDFromHandle(h HWND) platform.WindowID {
	return platform.NewWindowID(uint32(h))
}

// Window is a live handle to a top-level window. It holds no cached state
// and is safe to share between goroutines.
type Window struct {
	hwnd HWND
	api  api
}

func (w *Window) ID() platform.WindowID {
	return IDFromHandle(w.hwnd)
}

// Title reads the window text. A zero-length result with a clean last error
// is a window without a title; anything else is a failure.
func (w *Window) Title() (string, error) {
	buf := make([]uint16, titleBufferLen)
	n, err := w.api.windowText(w.hwnd, buf)
	if n == 0 {
		if err == nil {
			return "", nil
		}
		return "", classify("GetWindowTextW", err)
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(utf16.Decode(buf[:n])), nil
}

// Bounds returns the extended frame bounds, which exclude the invisible
// resize border that the raw window rectangle includes.
func (w *Window) Bounds() (platform.Bounds, error) {
	r, err := w.api.extendedFrameBounds(w.hwnd)
	if err != nil {
		return platform.Bounds{}, classify("DwmGetWindowAttribute", err)
	}
	return rectToBounds("DwmGetWindowAttribute", r)
}

// FrameBounds returns the raw window rectangle from GetWindowRect.
func (w *Window) FrameBounds() (platform.Bounds, error) {
	r, err := w.api.windowRect(w.hwnd)
	if err != nil {
		return platform.Bounds{}, classify("GetWindowRect", err)
	}
	return rectToBounds("GetWindowRect", r)
}

// Details reports visibility only. A window is on screen when it has
// WS_VISIBLE and DWM has not cloaked it. Minimized windows keep WS_VISIBLE
// and are parked at (-32000, -32000), so they still count as on screen here.
func (w *Window) Details() platform.Details {
	on := w.api.isWindowVisible(w.hwnd)
	if on {
		if c, err := w.api.cloaked(w.hwnd); err == nil && c {
			on = false
		}
	}
	return platform.Details{OnScreen: &on}
}

func rectToBounds(op string, r Rect) (platform.Bounds, error) {
	b, err := platform.BoundsFromCorners(r.Left, r.Top, r.Right, r.Bottom)
	if err != nil {
		return platform.Bounds{}, platform.PlatformSpecific(op, err)
	}
	return b, nil
}

func (w *Window) OwnerPID() (uint32, error) {
	tid, pid, err := w.api.windowThreadProcessID(w.hwnd)
	if tid == 0 {
		if err == nil {
			err = errNoThread
		}
		return 0, classify("GetWindowThreadProcessId", err)
	}
	return pid, nil
}

// OwnerName resolves the owning process, opens it with limited query
// rights and returns the base name of its executable. Opening another
// user's or an elevated process fails with platform.ErrPermissionDenied.
func (w *Window) OwnerName() (string, error) {
	pid, err := w.OwnerPID()
	if err != nil {
		return "", err
	}

	process, err := w.api.openProcess(pid)
	if err != nil {
		return "", classify("OpenProcess", err)
	}
	defer w.api.closeHandle(process)

	path, err := w.api.processImageName(process)
	if err != nil {
		return "", classify("QueryFullProcessImageNameW", err)
	}
	name := baseName(path)
	if name == "" {
		return "", platform.PlatformSpecific("QueryFullProcessImageNameW", errors.New("empty image name"))
	}
	return name, nil
}

// baseName strips the directory from a Windows or slash-separated path.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
