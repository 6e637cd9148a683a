package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Rect matches the host's rectangle layout.
// This is a re-export of ffi.Rect for consumer convenience.
type Rect = ffi.Rect

// LogFont is the decoded font record.
// This is a re-export of ffi.LogFont for consumer convenience.
type LogFont = ffi.LogFont

// Formatting flags for DrawText.
const (
	DTTop             = ffi.DTTop
	DTLeft            = ffi.DTLeft
	DTCenter          = ffi.DTCenter
	DTRight           = ffi.DTRight
	DTVCenter         = ffi.DTVCenter
	DTBottom          = ffi.DTBottom
	DTWordBreak       = ffi.DTWordBreak
	DTSingleLine      = ffi.DTSingleLine
	DTExpandTabs      = ffi.DTExpandTabs
	DTNoClip          = ffi.DTNoClip
	DTExternalLeading = ffi.DTExternalLeading
	DTCalcRect        = ffi.DTCalcRect
	DTNoPrefix        = ffi.DTNoPrefix
	DTEditControl     = ffi.DTEditControl
	DTPathEllipsis    = ffi.DTPathEllipsis
	DTEndEllipsis     = ffi.DTEndEllipsis
	DTWordEllipsis    = ffi.DTWordEllipsis
)

// Font weights for LogFont.
const (
	WeightDontCare = ffi.WeightDontCare
	WeightThin     = ffi.WeightThin
	WeightLight    = ffi.WeightLight
	WeightNormal   = ffi.WeightNormal
	WeightMedium   = ffi.WeightMedium
	WeightSemiBold = ffi.WeightSemiBold
	WeightBold     = ffi.WeightBold
	WeightBlack    = ffi.WeightBlack
)

// OutTextXY writes text at the given position with the current text
// style.
func (w *Window) OutTextXY(x, y int32, s string) {
	ffi.OutTextXY(x, y, s)
}

// OutTextXYChar writes a single UTF-16 code unit at the given
// position.
func (w *Window) OutTextXYChar(x, y int32, ch uint16) {
	ffi.OutTextXYChar(x, y, ch)
}

// TextWidthChar measures one UTF-16 code unit.
func (w *Window) TextWidthChar(ch uint16) int32 {
	return ffi.TextWidthChar(ch)
}

// TextHeightChar measures one UTF-16 code unit.
func (w *Window) TextHeightChar(ch uint16) int32 {
	return ffi.TextHeightChar(ch)
}

// DrawTextChar renders one UTF-16 code unit inside rect.
func (w *Window) DrawTextChar(ch uint16, rect *Rect, format uint32) int32 {
	return ffi.DrawTextChar(ch, rect, format)
}

// TextWidth measures the rendered width of s in pixels.
func (w *Window) TextWidth(s string) int32 {
	return ffi.TextWidth(s)
}

// TextHeight measures the rendered height of s in pixels.
func (w *Window) TextHeight(s string) int32 {
	return ffi.TextHeight(s)
}

// DrawText renders s inside rect per the formatting flags and
// returns the rendered height. With DTCalcRect the host adjusts rect
// instead of drawing.
func (w *Window) DrawText(s string, rect *Rect, format uint32) int32 {
	return ffi.DrawText(s, rect, format)
}

// SetTextStyle sets font height, width and face name. A zero width
// keeps the aspect, an empty face keeps the current one.
func (w *Window) SetTextStyle(height, width int32, face string) {
	ffi.SetTextStyle(height, width, face)
}

// SetTextStyleFull additionally sets rotation, weight and
// decoration.
func (w *Window) SetTextStyleFull(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool) {
	ffi.SetTextStyleFull(height, width, face, escapement, orientation, weight, italic, underline, strikeOut)
}

// SetTextStyleFullEx exposes the remaining raster-font selection
// bytes on top of SetTextStyleFull.
func (w *Window) SetTextStyleFullEx(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool, charSet, outPrecision, clipPrecision, quality, pitchAndFamily byte) {
	ffi.SetTextStyleFullEx(height, width, face, escapement, orientation, weight, italic, underline, strikeOut, charSet, outPrecision, clipPrecision, quality, pitchAndFamily)
}

// SetTextStyleFont sets the complete font record.
func (w *Window) SetTextStyleFont(f *LogFont) {
	ffi.SetTextStyleFont(f)
}

// TextStyle reports the current font record.
func (w *Window) TextStyle() LogFont {
	return ffi.TextStyle()
}
