// Package window enumerates the on-screen windows of the current desktop
// session and reads their basic properties.
//
// Two native models sit behind the same API. On macOS each Window is a
// snapshot of the CoreGraphics window list taken when it was enumerated, so
// its accessors never race the live window. On Windows each Window is a live
// HWND, so a window closed after enumeration makes later accessor calls
// fail.
//
// The backend is chosen at build time. On other platforms, or on macOS
// without cgo, every entry point fails with an error matching
// ErrNoWindowEnvironment.
package window

import (
	"github.com/mj1618/window-getter/internal/platform"
)

// ID identifies a window within the current platform's addressing scheme.
// IDs are comparable and may be used as map keys; two IDs are equal exactly
// when their Uint32 values are equal.
type ID = platform.WindowID

// Bounds is a window rectangle in screen coordinates. The origin follows the
// native convention (top-left of the main display on both supported
// platforms, with y growing downward), so do not assume more than that.
type Bounds = platform.Bounds

// Details are the extra window properties captured by snapshot backends.
type Details = platform.Details

// Error is the error type returned by every accessor and entry point.
type Error = platform.Error

// Kind classifies an Error.
type Kind = platform.Kind

const (
	KindPlatformSpecific    = platform.KindPlatformSpecific
	KindNoWindowEnvironment = platform.KindNoWindowEnvironment
	KindPermissionDenied    = platform.KindPermissionDenied
)

var (
	ErrNoWindowEnvironment = platform.ErrNoWindowEnvironment
	ErrPermissionDenied    = platform.ErrPermissionDenied
	ErrInvalidWindowBounds = platform.ErrInvalidWindowBounds
)

// KindOf reports the kind of err.
func KindOf(err error) Kind {
	return platform.KindOf(err)
}

// IDFromUint32 builds an ID from a raw value. The window it names is not
// checked until the ID is used.
func IDFromUint32(raw uint32) ID {
	return platform.NewWindowID(raw)
}

// ParseID parses a decimal or 0x-prefixed window id.
func ParseID(s string) (ID, error) {
	return platform.ParseWindowID(s)
}

// Window is one on-screen window. The zero value is not usable; obtain
// windows from GetWindows or GetWindow.
type Window struct {
	w platform.Window
}

// ID returns the window's identifier.
func (w Window) ID() ID {
	return w.w.ID()
}

// Title returns the window title. A window without a title yields "" and a
// nil error. On macOS titles are only populated with screen capture access.
func (w Window) Title() (string, error) {
	return w.w.Title()
}

// Bounds returns the visible bounds of the window. On Windows this excludes
// the invisible resize border.
func (w Window) Bounds() (Bounds, error) {
	return w.w.Bounds()
}

// FrameBounds returns the raw native window rectangle. Where the platform
// has a single rectangle it is the same as Bounds.
func (w Window) FrameBounds() (Bounds, error) {
	if f, ok := w.w.(platform.Framer); ok {
		return f.FrameBounds()
	}
	return w.w.Bounds()
}

// OwnerPID returns the id of the process that owns the window.
func (w Window) OwnerPID() (uint32, error) {
	return w.w.OwnerPID()
}

// OwnerName returns the name of the owning process, or "" when the platform
// did not report one.
func (w Window) OwnerName() (string, error) {
	return w.w.OwnerName()
}

// Details returns the extra properties captured with the window. ok is false
// on platforms that capture none. The Windows backend fills only OnScreen.
func (w Window) Details() (d Details, ok bool) {
	if dd, ok := w.w.(platform.Describer); ok {
		return dd.Details(), true
	}
	return Details{}, false
}
