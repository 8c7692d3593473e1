//go:build darwin && cgo

package window

import _ "github.com/mj1618/window-getter/internal/platform/darwin"
