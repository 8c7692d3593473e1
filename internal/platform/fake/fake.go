// Package fake provides an in-memory platform backend for tests.
package fake

import (
	"sync"

	"github.com/mj1618/window-getter/internal/platform"
)

// Window is a scripted window. Zero-valued error fields mean success.
type Window struct {
	Number uint32
	Name   string
	Owner  string
	PID    uint32
	Rect   [4]float64
	Frame  *[4]float64
	Info   *platform.Details

	TitleErr  error
	BoundsErr error
	PIDErr    error
	OwnerErr  error
}

// Backend serves a fixed list of windows. It is safe for concurrent use;
// tests may toggle the errors or the permission at any time.
type Backend struct {
	mu        sync.Mutex
	windows   []*Window
	listErr   error
	lookupErr error
	granted   bool
}

// NewBackend returns a backend serving windows in the given order, with
// screen capture access granted.
func NewBackend(windows ...*Window) *Backend {
	return &Backend{windows: windows, granted: true}
}

// Provider wraps the backend in a platform.Provider.
func (b *Backend) Provider() *platform.Provider {
	return &platform.Provider{Backend: b, Permissions: b}
}

// FailList makes Windows fail with err. Nil clears the failure.
func (b *Backend) FailList(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listErr = err
}

// FailLookup makes Window fail with err. Nil clears the failure.
func (b *Backend) FailLookup(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lookupErr = err
}

// SetGranted toggles the screen capture permission.
func (b *Backend) SetGranted(granted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.granted = granted
}

func (b *Backend) Windows() ([]platform.Window, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listErr != nil {
		return nil, b.listErr
	}
	out := make([]platform.Window, len(b.windows))
	for i, w := range b.windows {
		out[i] = wrap(w)
	}
	return out, nil
}

func (b *Backend) Window(id platform.WindowID) (platform.Window, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lookupErr != nil {
		return nil, false, b.lookupErr
	}
	for _, w := range b.windows {
		if w.Number == id.Uint32() {
			return wrap(w), true, nil
		}
	}
	return nil, false, nil
}

func (b *Backend) HasScreenCaptureAccess() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.granted
}

func (b *Backend) RequestScreenCaptureAccess() bool {
	return b.HasScreenCaptureAccess()
}

// wrap picks the adapter flavour that matches the capabilities the scripted
// window has, so tests see the same optional interfaces real backends expose.
func wrap(w *Window) platform.Window {
	base := window{w: w}
	switch {
	case w.Frame != nil && w.Info != nil:
		return framedDescribedWindow{framedWindow{base}}
	case w.Frame != nil:
		return framedWindow{base}
	case w.Info != nil:
		return describedWindow{base}
	}
	return base
}

type window struct {
	w *Window
}

func (f window) ID() platform.WindowID { return platform.NewWindowID(f.w.Number) }

func (f window) Title() (string, error) {
	if f.w.TitleErr != nil {
		return "", f.w.TitleErr
	}
	return f.w.Name, nil
}

func (f window) Bounds() (platform.Bounds, error) {
	if f.w.BoundsErr != nil {
		return platform.Bounds{}, f.w.BoundsErr
	}
	r := f.w.Rect
	return platform.BoundsFromOrigin(r[0], r[1], r[2], r[3])
}

func (f window) OwnerPID() (uint32, error) {
	if f.w.PIDErr != nil {
		return 0, f.w.PIDErr
	}
	return f.w.PID, nil
}

func (f window) OwnerName() (string, error) {
	if f.w.OwnerErr != nil {
		return "", f.w.OwnerErr
	}
	return f.w.Owner, nil
}

type framedWindow struct{ window }

func (f framedWindow) FrameBounds() (platform.Bounds, error) {
	r := *f.w.Frame
	return platform.BoundsFromOrigin(r[0], r[1], r[2], r[3])
}

type describedWindow struct{ window }

func (f describedWindow) Details() platform.Details { return *f.w.Info }

type framedDescribedWindow struct{ framedWindow }

func (f framedDescribedWindow) Details() platform.Details { return *f.w.Info }
