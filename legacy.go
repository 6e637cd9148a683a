package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// The methods in this file mirror the graphics.h-era surface kept
// for old programs. They share drawing state with the modern calls;
// new code should prefer the modern names.

// MouseMsg is the decoded legacy mouse record.
// This is a re-export of ffi.MouseMsg for consumer convenience.
type MouseMsg = ffi.MouseMsg

// Legacy fill styles.
const (
	NullFill  = ffi.NullFill
	SolidFill = ffi.SolidFill
)

// SetFont sets font height, width and face name through the legacy
// entry point.
func (w *Window) SetFont(height, width int32, face string) {
	ffi.SetFont(height, width, face)
}

// SetFontFull additionally sets rotation, weight and decoration.
func (w *Window) SetFontFull(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool) {
	ffi.SetFontFull(height, width, face, escapement, orientation, weight, italic, underline, strikeOut)
}

// SetFontFullEx exposes the remaining raster-font selection bytes.
func (w *Window) SetFontFullEx(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool, charSet, outPrecision, clipPrecision, quality, pitchAndFamily byte) {
	ffi.SetFontFullEx(height, width, face, escapement, orientation, weight, italic, underline, strikeOut, charSet, outPrecision, clipPrecision, quality, pitchAndFamily)
}

// SetFontLogFont sets the complete font record.
func (w *Window) SetFontLogFont(f *LogFont) {
	ffi.SetFontLogFont(f)
}

// Font reports the current font record.
func (w *Window) Font() LogFont {
	return ffi.Font()
}

// Bar draws a filled rectangle with the current fill, no border.
func (w *Window) Bar(left, top, right, bottom int32) {
	ffi.Bar(left, top, right, bottom)
}

// Bar3D draws a filled rectangle with a 3-D edge.
func (w *Window) Bar3D(left, top, right, bottom, depth int32, topFlag bool) {
	ffi.Bar3D(left, top, right, bottom, depth, topFlag)
}

// DrawPoly draws an outlined polygon from flat x,y coordinate pairs.
func (w *Window) DrawPoly(points []int32) {
	ffi.DrawPoly(points)
}

// FillPoly draws a filled polygon from flat x,y coordinate pairs.
func (w *Window) FillPoly(points []int32) {
	ffi.FillPoly(points)
}

// MaxX reports the largest valid x coordinate.
func (w *Window) MaxX() int32 {
	return ffi.MaxX()
}

// MaxY reports the largest valid y coordinate.
func (w *Window) MaxY() int32 {
	return ffi.MaxY()
}

// DrawColor reports the shared legacy drawing color.
func (w *Window) DrawColor() Color {
	return ffi.DrawColor()
}

// SetDrawColor sets the legacy drawing color, which also updates the
// pen and text colors.
func (w *Window) SetDrawColor(c Color) {
	ffi.SetDrawColor(c)
}

// SetWriteMode sets the binary raster operation through the legacy
// entry point.
func (w *Window) SetWriteMode(mode int32) {
	ffi.SetWriteMode(mode)
}

// X reports the pen x position.
func (w *Window) X() int32 {
	return ffi.X()
}

// Y reports the pen y position.
func (w *Window) Y() int32 {
	return ffi.Y()
}

// MoveTo places the pen without drawing.
func (w *Window) MoveTo(x, y int32) {
	ffi.MoveTo(x, y)
}

// MoveRel moves the pen relative to its position without drawing.
func (w *Window) MoveRel(dx, dy int32) {
	ffi.MoveRel(dx, dy)
}

// LineTo draws from the pen position to the point and moves the pen.
func (w *Window) LineTo(x, y int32) {
	ffi.LineTo(x, y)
}

// LineRel draws relative to the pen position and moves the pen.
func (w *Window) LineRel(dx, dy int32) {
	ffi.LineRel(dx, dy)
}

// OutText writes text at the pen position.
func (w *Window) OutText(s string) {
	ffi.OutText(s)
}

// OutTextChar writes one UTF-16 code unit at the pen position.
func (w *Window) OutTextChar(ch uint16) {
	ffi.OutTextChar(ch)
}

// MouseHit reports whether the legacy mouse queue holds a message.
func (w *Window) MouseHit() bool {
	return ffi.MouseHit()
}

// GetMouseMsg fetches the next legacy mouse message, blocking until
// one arrives.
func (w *Window) GetMouseMsg() (MouseMsg, error) {
	return ffi.GetMouseMsg()
}

// PeekMouseMsg returns the next legacy mouse message without
// blocking. With remove set the message is dequeued.
func (w *Window) PeekMouseMsg(remove bool) (MouseMsg, bool, error) {
	return ffi.PeekMouseMsg(remove)
}

// FlushMouseMsgBuffer discards all queued legacy mouse messages.
func (w *Window) FlushMouseMsgBuffer() {
	ffi.FlushMouseMsgBuffer()
}
