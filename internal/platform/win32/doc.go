// Package win32 provides the Windows backend over live HWND handles.
//
// A Window is only a handle. Every accessor queries the live window, so a
// window that closed after enumeration reports an error instead of stale
// data. Native calls go through the api interface; the real implementation
// lives in the _windows.go files.
package win32
