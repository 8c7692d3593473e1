package platform

import (
	"fmt"
	"math"
	"strconv"
)

// WindowID identifies one window within the current platform's addressing
// scheme. It stores the normalized 32-bit projection of the native identity,
// so == and map hashing agree with Uint32 on every platform.
type WindowID struct {
	v uint32
}

// NewWindowID wraps a raw 32-bit value. It does not check that a window with
// that identity exists.
func NewWindowID(raw uint32) WindowID {
	return WindowID{v: raw}
}

// Uint32 returns the normalized numeric form of the identifier.
func (id WindowID) Uint32() uint32 {
	return id.v
}

func (id WindowID) String() string {
	return strconv.FormatUint(uint64(id.v), 10)
}

// ParseWindowID parses a decimal (or 0x-prefixed hex) window identifier.
func ParseWindowID(s string) (WindowID, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return WindowID{}, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return NewWindowID(uint32(v)), nil
}

// Bounds is a window rectangle in screen coordinates. The origin convention
// is the native platform's. Width and height are never negative.
type Bounds struct {
	x, y, width, height float64
}

// BoundsFromOrigin converts an origin/size rectangle (CGRect shape).
func BoundsFromOrigin(x, y, width, height float64) (Bounds, error) {
	for _, v := range [...]float64{x, y, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bounds{}, ErrInvalidWindowBounds
		}
	}
	if width < 0 || height < 0 {
		return Bounds{}, ErrInvalidWindowBounds
	}
	return Bounds{x: x, y: y, width: width, height: height}, nil
}

// BoundsFromCorners converts a corner-pair rectangle (RECT shape).
// Width is right-left and height is bottom-top.
func BoundsFromCorners(left, top, right, bottom int32) (Bounds, error) {
	w := int64(right) - int64(left)
	h := int64(bottom) - int64(top)
	if w < 0 || h < 0 {
		return Bounds{}, ErrInvalidWindowBounds
	}
	return Bounds{x: float64(left), y: float64(top), width: float64(w), height: float64(h)}, nil
}

func (b Bounds) X() float64      { return b.x }
func (b Bounds) Y() float64      { return b.y }
func (b Bounds) Width() float64  { return b.width }
func (b Bounds) Height() float64 { return b.height }

// Rect returns the bounds as [x, y, width, height].
func (b Bounds) Rect() [4]float64 {
	return [4]float64{b.x, b.y, b.width, b.height}
}

// Contains reports whether the point lies inside the rectangle.
func (b Bounds) Contains(px, py float64) bool {
	return px >= b.x && px < b.x+b.width && py >= b.y && py < b.y+b.height
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%g, %g, %g x %g)", b.x, b.y, b.width, b.height)
}

// Details holds the extra properties a snapshot backend captures alongside
// the required ones. Pointer fields are nil when the key was absent.
type Details struct {
	Layer         int32    `yaml:"layer"                    json:"layer"`
	Alpha         float64  `yaml:"alpha"                    json:"alpha"`
	SharingState  int32    `yaml:"sharing_state"            json:"sharing_state"`
	StoreType     int32    `yaml:"store_type"               json:"store_type"`
	MemoryUsage   int64    `yaml:"memory_usage"             json:"memory_usage"`
	OnScreen      *bool    `yaml:"on_screen,omitempty"      json:"on_screen,omitempty"`
	VideoMemory   *bool    `yaml:"video_memory,omitempty"   json:"video_memory,omitempty"`
	MissingFields []string `yaml:"missing_fields,omitempty" json:"missing_fields,omitempty"`
}

// OffScreen reports whether the window is known not to be drawn. An absent
// OnScreen value is treated as visible.
func (d Details) OffScreen() bool {
	return d.OnScreen != nil && !*d.OnScreen
}
