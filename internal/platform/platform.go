package platform

// Window is one native window record or handle, wrapped by a backend.
//
// Snapshot backends answer from data captured at enumeration time. Handle
// backends query the live window, so a window closed after enumeration
// surfaces as an error from these methods.
type Window interface {
	// ID returns the identity of the window in the normalized form.
	ID() WindowID

	// Title returns the window title, or "" when it has none.
	Title() (string, error)

	// Bounds returns the visible bounds of the window.
	Bounds() (Bounds, error)

	// OwnerPID returns the id of the process that owns the window.
	OwnerPID() (uint32, error)

	// OwnerName returns the owning process name, or "" when unknown.
	OwnerName() (string, error)
}

// Backend enumerates windows through the native facility.
type Backend interface {
	// Windows returns every window in native enumeration order.
	Windows() ([]Window, error)

	// Window looks up a single window. ok is false when no window with
	// that id exists.
	Window(id WindowID) (w Window, ok bool, err error)
}

// Framer is implemented by windows that can report the raw native window
// rectangle in addition to the visible bounds.
type Framer interface {
	FrameBounds() (Bounds, error)
}

// Describer is implemented by windows that captured extra properties.
type Describer interface {
	Details() Details
}

// PermissionProber checks and requests the OS capability that gates access
// to window titles and owner names.
type PermissionProber interface {
	HasScreenCaptureAccess() bool
	RequestScreenCaptureAccess() bool
}

// grantedProber is used by platforms with no capability gate.
type grantedProber struct{}

func (grantedProber) HasScreenCaptureAccess() bool     { return true }
func (grantedProber) RequestScreenCaptureAccess() bool { return true }

// AlwaysGranted is a PermissionProber for platforms that gate nothing.
var AlwaysGranted PermissionProber = grantedProber{}
