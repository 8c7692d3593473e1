package darwin

import (
	"errors"
	"fmt"

	"github.com/mj1618/window-getter/internal/platform"
)

// Window list dictionary keys, used to report which required keys were
// absent from a record.
const (
	keyNumber       = "kCGWindowNumber"
	keyStoreType    = "kCGWindowStoreType"
	keyLayer        = "kCGWindowLayer"
	keyBounds       = "kCGWindowBounds"
	keySharingState = "kCGWindowSharingState"
	keyAlpha        = "kCGWindowAlpha"
	keyOwnerPID     = "kCGWindowOwnerPID"
	keyMemoryUsage  = "kCGWindowMemoryUsage"
)

// errMissingKey is wrapped when a required window list key was absent.
var errMissingKey = errors.New("required window list key missing")

// BoundsState records the outcome of decoding kCGWindowBounds.
type BoundsState int

const (
	BoundsMissing BoundsState = iota
	BoundsDecoded
	BoundsUndecodable
)

// WindowInfo is the typed form of one window dictionary.
type WindowInfo struct {
	Number       uint32
	StoreType    int32
	Layer        int32
	SharingState int32
	Alpha        float64
	OwnerPID     int32
	MemoryUsage  int64

	BoundsState BoundsState
	X, Y        float64
	Width       float64
	Height      float64

	// Optional keys; nil when absent.
	OwnerName   *string
	Name        *string
	OnScreen    *bool
	VideoMemory *bool

	// Missing lists required keys that were absent or mistyped.
	Missing []string
}

func (info *WindowInfo) missing(key string) bool {
	for _, k := range info.Missing {
		if k == key {
			return true
		}
	}
	return false
}

// Window is a snapshot-backed platform.Window. The underlying WindowInfo is
// never mutated after construction, so a Window is safe to share between
// goroutines.
type Window struct {
	info *WindowInfo
}

// NewWindow wraps a decoded window record.
func NewWindow(info *WindowInfo) *Window {
	return &Window{info: info}
}

func (w *Window) ID() platform.WindowID {
	return platform.NewWindowID(w.info.Number)
}

// Title returns kCGWindowName. Without screen capture access the window
// server omits the key and Title returns "".
func (w *Window) Title() (string, error) {
	if w.info.Name == nil {
		return "", nil
	}
	return *w.info.Name, nil
}

func (w *Window) Bounds() (platform.Bounds, error) {
	if w.info.BoundsState != BoundsDecoded {
		return platform.Bounds{}, platform.PlatformSpecific("CGRectMakeWithDictionaryRepresentation", platform.ErrInvalidWindowBounds)
	}
	b, err := platform.BoundsFromOrigin(w.info.X, w.info.Y, w.info.Width, w.info.Height)
	if err != nil {
		return platform.Bounds{}, platform.PlatformSpecific(keyBounds, err)
	}
	return b, nil
}

func (w *Window) OwnerPID() (uint32, error) {
	if w.info.missing(keyOwnerPID) {
		return 0, platform.PlatformSpecific(keyOwnerPID, errMissingKey)
	}
	if w.info.OwnerPID < 0 {
		return 0, platform.PlatformSpecific(keyOwnerPID, fmt.Errorf("negative pid %d", w.info.OwnerPID))
	}
	return uint32(w.info.OwnerPID), nil
}

func (w *Window) OwnerName() (string, error) {
	if w.info.OwnerName == nil {
		return "", nil
	}
	return *w.info.OwnerName, nil
}

// Details reports the optional properties captured with the window.
func (w *Window) Details() platform.Details {
	d := platform.Details{
		Layer:        w.info.Layer,
		Alpha:        w.info.Alpha,
		SharingState: w.info.SharingState,
		StoreType:    w.info.StoreType,
		MemoryUsage:  w.info.MemoryUsage,
		OnScreen:     w.info.OnScreen,
		VideoMemory:  w.info.VideoMemory,
	}
	if len(w.info.Missing) > 0 {
		d.MissingFields = append([]string(nil), w.info.Missing...)
	}
	return d
}
