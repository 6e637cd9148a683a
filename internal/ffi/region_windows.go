//go:build windows

package ffi

import "golang.org/x/sys/windows"

var (
	gdi32             = windows.NewLazySystemDLL("gdi32.dll")
	procCreateRectRgn = gdi32.NewProc("CreateRectRgn")
	procDeleteObject  = gdi32.NewProc("DeleteObject")
)

// createRectRegion builds a rectangular clip region object.
func createRectRegion(left, top, right, bottom int32) uintptr {
	hrgn, _, _ := procCreateRectRgn.Call(
		uintptr(left), uintptr(top), uintptr(right), uintptr(bottom),
	)
	return hrgn
}

// destroyRegion releases a region object. The host copies the region
// when the clip is set, so the object is safe to release immediately.
func destroyRegion(hrgn uintptr) {
	if hrgn != 0 {
		procDeleteObject.Call(hrgn)
	}
}
