package darwin

import "github.com/mj1618/window-getter/internal/platform"

// windowSource produces decoded window records. single restricts the listing
// to the window with the given number.
type windowSource interface {
	copyWindowInfo(number uint32, single bool) ([]WindowInfo, error)
}

// Backend implements platform.Backend over a window list source.
type Backend struct {
	src windowSource
}

func newBackend(src windowSource) *Backend {
	return &Backend{src: src}
}

// Windows returns every window the window server reports, front to back.
// Records are wrapped regardless of how complete they are.
func (b *Backend) Windows() ([]platform.Window, error) {
	infos, err := b.src.copyWindowInfo(0, false)
	if err != nil {
		return nil, err
	}
	windows := make([]platform.Window, len(infos))
	for i := range infos {
		windows[i] = NewWindow(&infos[i])
	}
	return windows, nil
}

// Window re-runs the listing restricted to id and returns the first record
// with that window number.
func (b *Backend) Window(id platform.WindowID) (platform.Window, bool, error) {
	infos, err := b.src.copyWindowInfo(id.Uint32(), true)
	if err != nil {
		return nil, false, err
	}
	for i := range infos {
		if infos[i].missing(keyNumber) {
			continue
		}
		if infos[i].Number == id.Uint32() {
			return NewWindow(&infos[i]), true, nil
		}
	}
	return nil, false, nil
}
