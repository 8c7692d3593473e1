package model

import "github.com/mj1618/window-getter/window"

// Window is the serializable record of one window. Accessor failures are
// kept per field in Errors so one bad window never hides the rest.
type Window struct {
	ID      uint32            `yaml:"id"                    json:"id"`
	Title   string            `yaml:"title,omitempty"       json:"title,omitempty"`
	App     string            `yaml:"app,omitempty"         json:"app,omitempty"`
	PID     uint32            `yaml:"pid,omitempty"         json:"pid,omitempty"`
	Bounds  *[4]float64       `yaml:"bounds,omitempty,flow" json:"bounds,omitempty"`
	Frame   *[4]float64       `yaml:"frame,omitempty,flow"  json:"frame,omitempty"`
	Details *window.Details   `yaml:"details,omitempty"     json:"details,omitempty"`
	Hidden  bool              `yaml:"hidden,omitempty"      json:"hidden,omitempty"`
	Stale   bool              `yaml:"stale,omitempty"       json:"stale,omitempty"`
	Errors  map[string]string `yaml:"errors,omitempty"      json:"errors,omitempty"`
}

// RecordOptions selects the optional parts of a record.
type RecordOptions struct {
	Frame   bool // include the raw frame rectangle
	Details bool // include snapshot details where captured
}

// FromWindow reads every accessor of w into a record.
func FromWindow(w window.Window, opts RecordOptions) Window {
	rec := Window{ID: w.ID().Uint32()}

	if title, err := w.Title(); err != nil {
		rec.addError("title", err)
	} else {
		rec.Title = title
	}
	if name, err := w.OwnerName(); err != nil {
		rec.addError("app", err)
	} else {
		rec.App = name
	}
	if pid, err := w.OwnerPID(); err != nil {
		rec.addError("pid", err)
	} else {
		rec.PID = pid
	}
	if b, err := w.Bounds(); err != nil {
		rec.addError("bounds", err)
	} else {
		r := b.Rect()
		rec.Bounds = &r
	}
	if opts.Frame {
		if b, err := w.FrameBounds(); err != nil {
			rec.addError("frame", err)
		} else {
			r := b.Rect()
			rec.Frame = &r
		}
	}
	if d, ok := w.Details(); ok {
		rec.Hidden = d.OffScreen()
		if opts.Details {
			rec.Details = &d
		}
	}
	return rec
}

// FromWindows converts a listing, preserving its order.
func FromWindows(ws []window.Window, opts RecordOptions) []Window {
	out := make([]Window, len(ws))
	for i, w := range ws {
		out[i] = FromWindow(w, opts)
	}
	return out
}

func (w *Window) addError(field string, err error) {
	if w.Errors == nil {
		w.Errors = make(map[string]string)
	}
	w.Errors[field] = err.Error()
}

// HasError reports whether reading field failed.
func (w Window) HasError(field string) bool {
	_, ok := w.Errors[field]
	return ok
}
