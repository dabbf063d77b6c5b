package host

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/NahejL/electron/pkg/toolkit"
)

// Window is a host-owned top-level window. The bridge borrows windows
// as modal parents; it never owns them, and only requires the native
// handle valid for the duration of a selectFile entry point.
type Window struct {
	id        string
	handle    toolkit.NativeWindow
	destroyed atomic.Bool
}

// NewWindow wraps a native window handle as a host window.
func NewWindow(handle toolkit.NativeWindow) *Window {
	return &Window{
		id:     uuid.NewString(),
		handle: handle,
	}
}

// ID returns the window's host identity.
func (w *Window) ID() string {
	return w.id
}

// NativeWindowHandle returns the native handle, and false once the
// window has been destroyed or if the handle was never valid.
func (w *Window) NativeWindowHandle() (toolkit.NativeWindow, bool) {
	if w.destroyed.Load() || w.handle == 0 {
		return 0, false
	}
	return w.handle, true
}

// Destroy marks the window dead. Subsequent handle lookups fail.
func (w *Window) Destroy() {
	w.destroyed.Store(true)
}

// WindowObject wraps a window as a host object so scripts can pass it
// as the modal parent argument.
func WindowObject(w *Window) *Object {
	obj := NewObject()
	obj.SetInternal(w)
	return obj
}

// FilePathFromValue converts a host string value to a toolkit path,
// leniently: non-string values yield the empty path.
func FilePathFromValue(v Value) toolkit.FilePath {
	return toolkit.FilePath(v.Str())
}
