package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Binary raster operations for SetRop2.
const (
	R2Black       = ffi.R2Black
	R2NotMergePen = ffi.R2NotMergePen
	R2MaskNotPen  = ffi.R2MaskNotPen
	R2NotCopyPen  = ffi.R2NotCopyPen
	R2MaskPenNot  = ffi.R2MaskPenNot
	R2Not         = ffi.R2Not
	R2XorPen      = ffi.R2XorPen
	R2NotMaskPen  = ffi.R2NotMaskPen
	R2MaskPen     = ffi.R2MaskPen
	R2NotXorPen   = ffi.R2NotXorPen
	R2Nop         = ffi.R2Nop
	R2MergeNotPen = ffi.R2MergeNotPen
	R2CopyPen     = ffi.R2CopyPen
	R2MergePenNot = ffi.R2MergePenNot
	R2MergePen    = ffi.R2MergePen
	R2White       = ffi.R2White
)

// Polygon fill modes.
const (
	FillAlternate = ffi.FillAlternate
	FillWinding   = ffi.FillWinding
)

// Background modes for text output.
const (
	BkTransparent = ffi.BkTransparent
	BkOpaque      = ffi.BkOpaque
)

// ClearDevice erases the drawing surface with the background color.
func (w *Window) ClearDevice() {
	ffi.ClearDevice()
}

// SetClipRect restricts drawing to the rectangle.
func (w *Window) SetClipRect(left, top, right, bottom int32) {
	ffi.SetClipRect(left, top, right, bottom)
}

// ClearClipRect removes the clip region.
func (w *Window) ClearClipRect() {
	ffi.ClearClipRect()
}

// SetOrigin moves the logical coordinate origin.
func (w *Window) SetOrigin(x, y int32) {
	ffi.SetOrigin(x, y)
}

// AspectRatio reports the logical-to-device scale on each axis.
func (w *Window) AspectRatio() (x, y float32) {
	return ffi.AspectRatio()
}

// SetAspectRatio sets the logical-to-device scale on each axis.
func (w *Window) SetAspectRatio(x, y float32) {
	ffi.SetAspectRatio(x, y)
}

// Rop2 reports the current binary raster operation.
func (w *Window) Rop2() int32 {
	return ffi.Rop2()
}

// SetRop2 selects how pen pixels combine with the surface.
func (w *Window) SetRop2(mode int32) {
	ffi.SetRop2(mode)
}

// PolyFillMode reports the current polygon fill rule.
func (w *Window) PolyFillMode() int32 {
	return ffi.PolyFillMode()
}

// SetPolyFillMode selects the polygon fill rule.
func (w *Window) SetPolyFillMode(mode int32) {
	ffi.SetPolyFillMode(mode)
}

// BkMode reports the text background mode.
func (w *Window) BkMode() int32 {
	return ffi.BkMode()
}

// SetBkMode selects opaque or transparent text background.
func (w *Window) SetBkMode(mode int32) {
	ffi.SetBkMode(mode)
}

// GraphDefaults resets every drawing-state value to its initial
// setting.
func (w *Window) GraphDefaults() {
	ffi.GraphDefaults()
}
