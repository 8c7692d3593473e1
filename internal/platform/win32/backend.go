package win32

import "github.com/mj1618/window-getter/internal/platform"

// Backend implements platform.Backend over EnumWindows.
type Backend struct {
	api api
}

func newBackend(a api) *Backend {
	return &Backend{api: a}
}

// Windows returns every top-level window in EnumWindows order.
func (b *Backend) Windows() ([]platform.Window, error) {
	hwnds, err := b.api.enumWindows()
	if err != nil {
		return nil, classify("EnumWindows", err)
	}
	windows := make([]platform.Window, len(hwnds))
	for i, h := range hwnds {
		windows[i] = &Window{hwnd: h, api: b.api}
	}
	return windows, nil
}

// Window returns the window for id if the handle currently denotes a live
// top-level window. It never fails.
func (b *Backend) Window(id platform.WindowID) (platform.Window, bool, error) {
	h := HandleFromID(id)
	if h == 0 || !b.api.isWindow(h) || b.api.rootAncestor(h) != h {
		return nil, false, nil
	}
	return &Window{hwnd: h, api: b.api}, true, nil
}
