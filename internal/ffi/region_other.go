//go:build !windows

package ffi

// Region objects are a Windows GDI concept. Non-Windows hosts accept a
// null region, which clears the clip.
func createRectRegion(left, top, right, bottom int32) uintptr {
	return 0
}

func destroyRegion(hrgn uintptr) {}
