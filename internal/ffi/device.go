package ffi

import (
	"runtime"
	"unsafe"
)

// Binary raster operations for SetRop2.
const (
	R2Black       int32 = 1
	R2NotMergePen int32 = 2
	R2MaskNotPen  int32 = 3
	R2NotCopyPen  int32 = 4
	R2MaskPenNot  int32 = 5
	R2Not         int32 = 6
	R2XorPen      int32 = 7
	R2NotMaskPen  int32 = 8
	R2MaskPen     int32 = 9
	R2NotXorPen   int32 = 10
	R2Nop         int32 = 11
	R2MergeNotPen int32 = 12
	R2CopyPen     int32 = 13
	R2MergePenNot int32 = 14
	R2MergePen    int32 = 15
	R2White       int32 = 16
)

// Polygon fill modes.
const (
	FillAlternate int32 = 1
	FillWinding   int32 = 2
)

// Background modes for text output.
const (
	BkTransparent int32 = 1
	BkOpaque      int32 = 2
)

// ClearDevice erases the drawing surface with the background color.
func ClearDevice() {
	fnClearDevice()
}

// SetClipRect restricts drawing to the given rectangle. Passing an
// empty rectangle is the host's contract, not guarded here.
func SetClipRect(left, top, right, bottom int32) {
	hrgn := createRectRegion(left, top, right, bottom)
	fnSetClipRgn(hrgn)
	destroyRegion(hrgn)
}

// ClearClipRect removes the clip region.
func ClearClipRect() {
	fnClearClipRgn()
}

// SetOrigin moves the logical coordinate origin.
func SetOrigin(x, y int32) {
	fnSetOrigin(x, y)
}

// AspectRatio reports the logical-to-device scale on each axis.
func AspectRatio() (x, y float32) {
	fnGetAspectRatio(
		uintptr(unsafe.Pointer(&x)),
		uintptr(unsafe.Pointer(&y)),
	)
	runtime.KeepAlive(&x)
	runtime.KeepAlive(&y)
	return x, y
}

// SetAspectRatio sets the logical-to-device scale on each axis.
func SetAspectRatio(x, y float32) {
	fnSetAspectRatio(x, y)
}

// Rop2 reports the current binary raster operation.
func Rop2() int32 {
	return fnGetRop2()
}

// SetRop2 selects how pen pixels combine with the surface.
func SetRop2(mode int32) {
	fnSetRop2(mode)
}

// PolyFillMode reports the current polygon fill rule.
func PolyFillMode() int32 {
	return fnGetPolyFillMode()
}

// SetPolyFillMode selects the polygon fill rule.
func SetPolyFillMode(mode int32) {
	fnSetPolyFillMode(mode)
}

// BkMode reports the text background mode.
func BkMode() int32 {
	return fnGetBkMode()
}

// SetBkMode selects opaque or transparent text background.
func SetBkMode(mode int32) {
	fnSetBkMode(mode)
}

// GraphDefaults resets every drawing-state value to its initial
// setting.
func GraphDefaults() {
	fnGraphDefaults()
}
