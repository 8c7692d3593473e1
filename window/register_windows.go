//go:build windows

package window

import _ "github.com/mj1618/window-getter/internal/platform/win32"
