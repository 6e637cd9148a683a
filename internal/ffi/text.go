package ffi

import (
	"runtime"
	"unsafe"
)

// Rect matches the host's rectangle layout.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Formatting flags for DrawText.
const (
	DTTop             uint32 = 0x0000
	DTLeft            uint32 = 0x0000
	DTCenter          uint32 = 0x0001
	DTRight           uint32 = 0x0002
	DTVCenter         uint32 = 0x0004
	DTBottom          uint32 = 0x0008
	DTWordBreak       uint32 = 0x0010
	DTSingleLine      uint32 = 0x0020
	DTExpandTabs      uint32 = 0x0040
	DTNoClip          uint32 = 0x0100
	DTExternalLeading uint32 = 0x0200
	DTCalcRect        uint32 = 0x0400
	DTNoPrefix        uint32 = 0x0800
	DTEditControl     uint32 = 0x2000
	DTPathEllipsis    uint32 = 0x4000
	DTEndEllipsis     uint32 = 0x8000
	DTWordEllipsis    uint32 = 0x40000
)

// Font weights for LogFont.
const (
	WeightDontCare int32 = 0
	WeightThin     int32 = 100
	WeightLight    int32 = 300
	WeightNormal   int32 = 400
	WeightMedium   int32 = 500
	WeightSemiBold int32 = 600
	WeightBold     int32 = 700
	WeightBlack    int32 = 900
)

// faceNameUnits is the fixed face-name capacity of the host's font
// record, terminator included.
const faceNameUnits = 32

// logFontC matches the C struct layout of the host's font record.
type logFontC struct {
	Height         int32
	Width          int32
	Escapement     int32
	Orientation    int32
	Weight         int32
	Italic         byte
	Underline      byte
	StrikeOut      byte
	CharSet        byte
	OutPrecision   byte
	ClipPrecision  byte
	Quality        byte
	PitchAndFamily byte
	FaceName       [faceNameUnits]uint16
}

// LogFont is the decoded font record. Face names longer than the
// host's fixed capacity are truncated on the way in.
type LogFont struct {
	Height         int32
	Width          int32
	Escapement     int32
	Orientation    int32
	Weight         int32
	Italic         bool
	Underline      bool
	StrikeOut      bool
	CharSet        byte
	OutPrecision   byte
	ClipPrecision  byte
	Quality        byte
	PitchAndFamily byte
	FaceName       string
}

func b2i(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (f *LogFont) toC() logFontC {
	c := logFontC{
		Height:         f.Height,
		Width:          f.Width,
		Escapement:     f.Escapement,
		Orientation:    f.Orientation,
		Weight:         f.Weight,
		Italic:         b2i(f.Italic),
		Underline:      b2i(f.Underline),
		StrikeOut:      b2i(f.StrikeOut),
		CharSet:        f.CharSet,
		OutPrecision:   f.OutPrecision,
		ClipPrecision:  f.ClipPrecision,
		Quality:        f.Quality,
		PitchAndFamily: f.PitchAndFamily,
	}
	copyWideTruncated(c.FaceName[:], f.FaceName)
	return c
}

func logFontFromC(c *logFontC) LogFont {
	return LogFont{
		Height:         c.Height,
		Width:          c.Width,
		Escapement:     c.Escapement,
		Orientation:    c.Orientation,
		Weight:         c.Weight,
		Italic:         c.Italic != 0,
		Underline:      c.Underline != 0,
		StrikeOut:      c.StrikeOut != 0,
		CharSet:        c.CharSet,
		OutPrecision:   c.OutPrecision,
		ClipPrecision:  c.ClipPrecision,
		Quality:        c.Quality,
		PitchAndFamily: c.PitchAndFamily,
		FaceName:       goStringFromWide(c.FaceName[:]),
	}
}

// OutTextXY writes text at the given position with the current text
// style.
func OutTextXY(x, y int32, s string) {
	w := wideString(s)
	fnOutTextXY(x, y, widePtr(w))
	runtime.KeepAlive(w)
}

// OutTextXYChar writes a single character at the given position.
func OutTextXYChar(x, y int32, ch uint16) {
	fnOutTextXYChar(x, y, ch)
}

// TextWidth measures the rendered width of s in pixels.
func TextWidth(s string) int32 {
	w := wideString(s)
	n := fnTextWidth(widePtr(w))
	runtime.KeepAlive(w)
	return n
}

// TextWidthChar measures one character.
func TextWidthChar(ch uint16) int32 {
	return fnTextWidthChar(ch)
}

// TextHeight measures the rendered height of s in pixels.
func TextHeight(s string) int32 {
	w := wideString(s)
	n := fnTextHeight(widePtr(w))
	runtime.KeepAlive(w)
	return n
}

// TextHeightChar measures one character.
func TextHeightChar(ch uint16) int32 {
	return fnTextHeightChar(ch)
}

// DrawText renders s inside rect per the formatting flags and returns
// the rendered height. With DTCalcRect the host adjusts rect instead
// of drawing.
func DrawText(s string, rect *Rect, format uint32) int32 {
	w := wideString(s)
	n := fnDrawText(widePtr(w), uintptr(unsafe.Pointer(rect)), format)
	runtime.KeepAlive(w)
	runtime.KeepAlive(rect)
	return n
}

// DrawTextChar renders one character inside rect.
func DrawTextChar(ch uint16, rect *Rect, format uint32) int32 {
	n := fnDrawTextChar(ch, uintptr(unsafe.Pointer(rect)), format)
	runtime.KeepAlive(rect)
	return n
}

// SetTextStyle sets font height, width and face name. A zero width
// keeps the aspect, an empty face keeps the current one.
func SetTextStyle(height, width int32, face string) {
	w := wideString(face)
	fnSetTextStyle(height, width, widePtr(w))
	runtime.KeepAlive(w)
}

// SetTextStyleFull additionally sets rotation, weight and decoration.
func SetTextStyleFull(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool) {
	w := wideString(face)
	fnSetTextStyleFull(height, width, widePtr(w),
		escapement, orientation, weight,
		int32(b2i(italic)), int32(b2i(underline)), int32(b2i(strikeOut)))
	runtime.KeepAlive(w)
}

// SetTextStyleFullEx exposes the remaining raster-font selection
// bytes on top of SetTextStyleFull.
func SetTextStyleFullEx(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool, charSet, outPrecision, clipPrecision, quality, pitchAndFamily byte) {
	w := wideString(face)
	fnSetTextStyleFullEx(height, width, widePtr(w),
		escapement, orientation, weight,
		int32(b2i(italic)), int32(b2i(underline)), int32(b2i(strikeOut)),
		charSet, outPrecision, clipPrecision, quality, pitchAndFamily)
	runtime.KeepAlive(w)
}

// SetTextStyleFont sets the complete font record.
func SetTextStyleFont(f *LogFont) {
	c := f.toC()
	fnSetTextStyleFont(uintptr(unsafe.Pointer(&c)))
	runtime.KeepAlive(&c)
}

// TextStyle reports the current font record.
func TextStyle() LogFont {
	var c logFontC
	fnGetTextStyle(uintptr(unsafe.Pointer(&c)))
	runtime.KeepAlive(&c)
	return logFontFromC(&c)
}
