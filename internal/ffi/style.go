package ffi

import (
	"runtime"
	"unsafe"
)

// Pen styles for SetLineStyle. The low nibble picks the dash pattern;
// endcap and join flags are ORed in.
const (
	PenSolid      int32 = 0
	PenDash       int32 = 1
	PenDot        int32 = 2
	PenDashDot    int32 = 3
	PenDashDotDot int32 = 4
	PenNull       int32 = 5
	PenUserStyle  int32 = 7

	PenEndcapRound  int32 = 0x000
	PenEndcapSquare int32 = 0x100
	PenEndcapFlat   int32 = 0x200

	PenJoinRound int32 = 0x0000
	PenJoinBevel int32 = 0x1000
	PenJoinMiter int32 = 0x2000
)

// Brush styles for SetFillStyle.
const (
	BrushSolid      int32 = 0
	BrushNull       int32 = 1
	BrushHatched    int32 = 2
	BrushPattern    int32 = 3
	BrushDIBPattern int32 = 5
)

// Hatch patterns for BrushHatched.
const (
	HatchHorizontal int32 = 0
	HatchVertical   int32 = 1
	HatchFDiagonal  int32 = 2
	HatchBDiagonal  int32 = 3
	HatchCross      int32 = 4
	HatchDiagCross  int32 = 5
)

// SetLineStyle sets pen style, thickness and, for PenUserStyle, the
// dash-length sequence.
func SetLineStyle(style, thickness int32, userStyle []uint32) {
	var p uintptr
	if len(userStyle) > 0 {
		p = uintptr(unsafe.Pointer(&userStyle[0]))
	}
	fnSetLineStyle(style, thickness, p, uint32(len(userStyle)))
	runtime.KeepAlive(userStyle)
}

// LineStyle reports the current pen style, thickness and user dash
// sequence.
func LineStyle() (style uint32, thickness int32, userStyle []uint32) {
	n := fnGetLineStyleLen()
	var p uintptr
	if n > 0 {
		userStyle = make([]uint32, n)
		p = uintptr(unsafe.Pointer(&userStyle[0]))
	}
	var count uint32
	fnGetLineStyle(
		uintptr(unsafe.Pointer(&style)),
		uintptr(unsafe.Pointer(&thickness)),
		p,
		uintptr(unsafe.Pointer(&count)),
	)
	runtime.KeepAlive(&style)
	runtime.KeepAlive(&thickness)
	runtime.KeepAlive(&count)
	runtime.KeepAlive(userStyle)
	if int(count) < len(userStyle) {
		userStyle = userStyle[:count]
	}
	return style, thickness, userStyle
}

// SetFillStyle sets brush style and hatch. BrushPattern and
// BrushDIBPattern take the pattern object through SetFillStylePattern.
func SetFillStyle(style, hatch int32) {
	fnSetFillStyle(style, hatch, 0)
}

// FillStyle reports the current brush style, hatch and pattern object.
func FillStyle() (style, hatch int32, pattern uintptr) {
	fnGetFillStyle(
		uintptr(unsafe.Pointer(&style)),
		uintptr(unsafe.Pointer(&hatch)),
		uintptr(unsafe.Pointer(&pattern)),
	)
	runtime.KeepAlive(&style)
	runtime.KeepAlive(&hatch)
	runtime.KeepAlive(&pattern)
	return style, hatch, pattern
}

// SetFillStylePattern sets an 8x8 monochrome fill pattern. pattern
// holds one byte per row, most significant bit leftmost.
func SetFillStylePattern(pattern *[8]byte) {
	if pattern == nil {
		return
	}
	fnSetFillStylePattern(uintptr(unsafe.Pointer(pattern)))
	runtime.KeepAlive(pattern)
}
