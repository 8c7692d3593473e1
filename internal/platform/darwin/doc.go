// Package darwin provides the macOS backend on top of CoreGraphics'
// CGWindowListCopyWindowInfo.
//
// Each window dictionary is decoded exactly once, at enumeration time, into
// a WindowInfo. Accessors answer from that snapshot and never race the live
// window. Native calls require CGo; without it the package registers no
// provider and the platform reports itself unsupported.
package darwin
