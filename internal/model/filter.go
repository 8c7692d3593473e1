package model

import (
	"strings"

	"github.com/mj1618/window-getter/internal/platform"
)

// Filter narrows a window listing. Zero fields match everything.
type Filter struct {
	PID   uint32 // exact owner pid
	App   string // owner name, case-insensitive
	Title string // substring of the title, case-insensitive
}

// Match reports whether w passes every set field of f. A record whose
// filtered field could not be read never matches.
func (f Filter) Match(w Window) bool {
	if f.PID != 0 && (w.HasError("pid") || w.PID != f.PID) {
		return false
	}
	if f.App != "" && !strings.EqualFold(w.App, f.App) {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(f.Title)) {
		return false
	}
	return true
}

// FilterWindows returns the records matching f in their original order.
func FilterWindows(windows []Window, f Filter) []Window {
	if f == (Filter{}) {
		return windows
	}
	result := []Window{}
	for _, w := range windows {
		if f.Match(w) {
			result = append(result, w)
		}
	}
	return result
}

// MarkStale flags every record whose owner pid is not a running process.
// Records whose pid could not be read are left alone.
func MarkStale(windows []Window, running func(pid uint32) bool) {
	for i := range windows {
		if windows[i].HasError("pid") {
			continue
		}
		if !running(windows[i].PID) {
			windows[i].Stale = true
		}
	}
}

// CountStale returns the number of records flagged stale.
func CountStale(windows []Window) int {
	n := 0
	for _, w := range windows {
		if w.Stale {
			n++
		}
	}
	return n
}

// FrontmostAt returns the first visible record, in listing order, whose
// bounds contain the point. Listings are front to back, so that is the
// topmost window under the point.
func FrontmostAt(windows []Window, x, y float64) (Window, bool) {
	for _, w := range windows {
		if w.Hidden || w.Bounds == nil {
			continue
		}
		r := w.Bounds
		b, err := platform.BoundsFromOrigin(r[0], r[1], r[2], r[3])
		if err != nil {
			continue
		}
		if b.Contains(x, y) {
			return w, true
		}
	}
	return Window{}, false
}
