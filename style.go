package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Pen styles for SetLineStyle.
const (
	PenSolid      = ffi.PenSolid
	PenDash       = ffi.PenDash
	PenDot        = ffi.PenDot
	PenDashDot    = ffi.PenDashDot
	PenDashDotDot = ffi.PenDashDotDot
	PenNull       = ffi.PenNull
	PenUserStyle  = ffi.PenUserStyle

	PenEndcapRound  = ffi.PenEndcapRound
	PenEndcapSquare = ffi.PenEndcapSquare
	PenEndcapFlat   = ffi.PenEndcapFlat

	PenJoinRound = ffi.PenJoinRound
	PenJoinBevel = ffi.PenJoinBevel
	PenJoinMiter = ffi.PenJoinMiter
)

// Brush styles for SetFillStyle.
const (
	BrushSolid      = ffi.BrushSolid
	BrushNull       = ffi.BrushNull
	BrushHatched    = ffi.BrushHatched
	BrushPattern    = ffi.BrushPattern
	BrushDIBPattern = ffi.BrushDIBPattern
)

// Hatch patterns for BrushHatched.
const (
	HatchHorizontal = ffi.HatchHorizontal
	HatchVertical   = ffi.HatchVertical
	HatchFDiagonal  = ffi.HatchFDiagonal
	HatchBDiagonal  = ffi.HatchBDiagonal
	HatchCross      = ffi.HatchCross
	HatchDiagCross  = ffi.HatchDiagCross
)

// SetLineStyle sets pen style, thickness and, for PenUserStyle, the
// dash-length sequence.
func (w *Window) SetLineStyle(style, thickness int32, userStyle []uint32) {
	ffi.SetLineStyle(style, thickness, userStyle)
}

// LineStyle reports the current pen style, thickness and user dash
// sequence.
func (w *Window) LineStyle() (style uint32, thickness int32, userStyle []uint32) {
	return ffi.LineStyle()
}

// SetFillStyle sets brush style and hatch.
func (w *Window) SetFillStyle(style, hatch int32) {
	ffi.SetFillStyle(style, hatch)
}

// FillStyle reports the current brush style, hatch and pattern
// object.
func (w *Window) FillStyle() (style, hatch int32, pattern uintptr) {
	return ffi.FillStyle()
}

// SetFillStylePattern sets an 8x8 monochrome fill pattern.
func (w *Window) SetFillStylePattern(pattern *[8]byte) {
	ffi.SetFillStylePattern(pattern)
}
