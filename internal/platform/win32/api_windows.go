//go:build windows

package win32

import (
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procDwmGetWindowAttribute    = dwmapi.NewProc("DwmGetWindowAttribute")
	procSetLastError             = kernel32.NewProc("SetLastError")
)

const (
	gaRoot                   = 2
	dwmwaExtendedFrameBounds = 9
	dwmwaCloaked             = 14
	maxImagePath             = 32768
)

// EnumWindows reports handles through a callback. Callbacks created with
// windows.NewCallback are never freed, so one is created for the process
// and feeds enumSink. enumMu is held for the whole EnumWindows call; nothing
// else reads or writes enumSink while it is being filled.
var (
	enumMu   sync.Mutex
	enumSink []HWND

	enumCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		enumSink = append(enumSink, HWND(hwnd))
		return 1
	})
)

type nativeAPI struct{}

func (nativeAPI) enumWindows() ([]HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumSink = make([]HWND, 0, 256)
	err := windows.EnumWindows(enumCallback, nil)
	hwnds := enumSink
	enumSink = nil
	if err != nil {
		return nil, err
	}
	return hwnds, nil
}

func (nativeAPI) isWindow(h HWND) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

func (nativeAPI) isWindowVisible(h HWND) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(h))
	return r != 0
}

func (nativeAPI) rootAncestor(h HWND) HWND {
	r, _, _ := procGetAncestor.Call(uintptr(h), gaRoot)
	return HWND(r)
}

func (nativeAPI) windowText(h HWND, buf []uint16) (int, error) {
	// SetLastError and GetWindowTextW must run on the same thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	r, _, e := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		if errno, ok := e.(syscall.Errno); ok && errno != 0 {
			return 0, errno
		}
		return 0, nil
	}
	return int(r), nil
}

func (nativeAPI) windowRect(h HWND) (Rect, error) {
	var r Rect
	ok, _, e := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Rect{}, e
	}
	return r, nil
}

func (nativeAPI) extendedFrameBounds(h HWND) (Rect, error) {
	if err := procDwmGetWindowAttribute.Find(); err != nil {
		return Rect{}, err
	}
	var r Rect
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(h),
		dwmwaExtendedFrameBounds,
		uintptr(unsafe.Pointer(&r)),
		unsafe.Sizeof(r),
	)
	if hr != 0 {
		return Rect{}, hresult(uint32(hr))
	}
	return r, nil
}

func (nativeAPI) cloaked(h HWND) (bool, error) {
	if err := procDwmGetWindowAttribute.Find(); err != nil {
		return false, err
	}
	var v uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(h),
		dwmwaCloaked,
		uintptr(unsafe.Pointer(&v)),
		unsafe.Sizeof(v),
	)
	if hr != 0 {
		return false, hresult(uint32(hr))
	}
	return v != 0, nil
}

func (nativeAPI) windowThreadProcessID(h HWND) (uint32, uint32, error) {
	var pid uint32
	tid, _, e := procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	if tid == 0 {
		if errno, ok := e.(syscall.Errno); ok && errno != 0 {
			return 0, 0, errno
		}
		return 0, 0, nil
	}
	return uint32(tid), pid, nil
}

func (nativeAPI) openProcess(pid uint32) (uintptr, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (nativeAPI) processImageName(process uintptr) (string, error) {
	size := uint32(maxImagePath)
	buf := make([]uint16, size)
	if err := windows.QueryFullProcessImageName(windows.Handle(process), 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func (nativeAPI) closeHandle(process uintptr) error {
	return windows.CloseHandle(windows.Handle(process))
}
