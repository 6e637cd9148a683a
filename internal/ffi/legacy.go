package ffi

import (
	"runtime"
	"unsafe"
)

// The functions in this file mirror the graphics.h-era surface the
// host keeps for old programs. They share drawing state with the
// modern calls; new code should prefer the modern names.

// Legacy fill styles.
const (
	NullFill  int32 = 0
	SolidFill int32 = 1
)

// SetFont sets font height, width and face name through the legacy
// entry point.
func SetFont(height, width int32, face string) {
	w := wideString(face)
	fnSetFont(height, width, widePtr(w))
	runtime.KeepAlive(w)
}

// SetFontFull additionally sets rotation, weight and decoration.
func SetFontFull(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool) {
	w := wideString(face)
	fnSetFontFull(height, width, widePtr(w),
		escapement, orientation, weight,
		int32(b2i(italic)), int32(b2i(underline)), int32(b2i(strikeOut)))
	runtime.KeepAlive(w)
}

// SetFontFullEx exposes the remaining raster-font selection bytes.
func SetFontFullEx(height, width int32, face string, escapement, orientation, weight int32, italic, underline, strikeOut bool, charSet, outPrecision, clipPrecision, quality, pitchAndFamily byte) {
	w := wideString(face)
	fnSetFontFullEx(height, width, widePtr(w),
		escapement, orientation, weight,
		int32(b2i(italic)), int32(b2i(underline)), int32(b2i(strikeOut)),
		charSet, outPrecision, clipPrecision, quality, pitchAndFamily)
	runtime.KeepAlive(w)
}

// SetFontLogFont sets the complete font record.
func SetFontLogFont(f *LogFont) {
	c := f.toC()
	fnSetFontFont(uintptr(unsafe.Pointer(&c)))
	runtime.KeepAlive(&c)
}

// Font reports the current font record.
func Font() LogFont {
	var c logFontC
	fnGetFont(uintptr(unsafe.Pointer(&c)))
	runtime.KeepAlive(&c)
	return logFontFromC(&c)
}

// Bar draws a filled rectangle with the current fill, no border.
func Bar(left, top, right, bottom int32) {
	fnBar(left, top, right, bottom)
}

// Bar3D draws a filled rectangle with a 3-D edge of the given depth.
func Bar3D(left, top, right, bottom, depth int32, topFlag bool) {
	fnBar3D(left, top, right, bottom, depth, int32(b2i(topFlag)))
}

// DrawPoly draws an outlined polygon from flat x,y coordinate pairs.
func DrawPoly(points []int32) {
	if len(points) < 2 {
		return
	}
	fnDrawPoly(int32(len(points)/2), uintptr(unsafe.Pointer(&points[0])))
	runtime.KeepAlive(points)
}

// FillPoly draws a filled polygon from flat x,y coordinate pairs.
func FillPoly(points []int32) {
	if len(points) < 2 {
		return
	}
	fnFillPoly(int32(len(points)/2), uintptr(unsafe.Pointer(&points[0])))
	runtime.KeepAlive(points)
}

// MaxX reports the largest valid x coordinate.
func MaxX() int32 {
	return fnGetMaxX()
}

// MaxY reports the largest valid y coordinate.
func MaxY() int32 {
	return fnGetMaxY()
}

// DrawColor reports the shared legacy drawing color.
func DrawColor() Color {
	return Color(fnGetColor())
}

// SetDrawColor sets the legacy drawing color, which also updates the
// pen and text colors.
func SetDrawColor(c Color) {
	fnSetColor(uint32(c))
}

// SetWriteMode sets the binary raster operation through the legacy
// entry point.
func SetWriteMode(mode int32) {
	fnSetWriteMode(mode)
}

// X reports the pen x position.
func X() int32 {
	return fnGetX()
}

// Y reports the pen y position.
func Y() int32 {
	return fnGetY()
}

// MoveTo places the pen without drawing.
func MoveTo(x, y int32) {
	fnMoveTo(x, y)
}

// MoveRel moves the pen relative to its position without drawing.
func MoveRel(dx, dy int32) {
	fnMoveRel(dx, dy)
}

// LineTo draws from the pen position to the point and moves the pen.
func LineTo(x, y int32) {
	fnLineTo(x, y)
}

// LineRel draws relative to the pen position and moves the pen.
func LineRel(dx, dy int32) {
	fnLineRel(dx, dy)
}

// OutText writes text at the pen position.
func OutText(s string) {
	w := wideString(s)
	fnOutText(widePtr(w))
	runtime.KeepAlive(w)
}

// OutTextChar writes one character at the pen position.
func OutTextChar(ch uint16) {
	fnOutTextChar(ch)
}

// MouseMsgC matches the C struct layout of the legacy mouse record.
type MouseMsgC struct {
	UMsg      uint32
	MkCtrl    byte
	MkShift   byte
	MkLButton byte
	MkMButton byte
	MkRButton byte
	_         byte // padding
	X         int16
	Y         int16
	Wheel     int16
}

// MouseMsg is the decoded legacy mouse record.
type MouseMsg struct {
	ID      MessageID
	Ctrl    bool
	Shift   bool
	LButton bool
	MButton bool
	RButton bool
	X       int16
	Y       int16
	Wheel   int16
}

func decodeMouseMsg(c *MouseMsgC) MouseMsg {
	return MouseMsg{
		ID:      MessageID(c.UMsg),
		Ctrl:    c.MkCtrl != 0,
		Shift:   c.MkShift != 0,
		LButton: c.MkLButton != 0,
		MButton: c.MkMButton != 0,
		RButton: c.MkRButton != 0,
		X:       c.X,
		Y:       c.Y,
		Wheel:   c.Wheel,
	}
}

// MouseHit reports whether the legacy mouse queue holds a message.
func MouseHit() bool {
	return fnMouseHit() != 0
}

// GetMouseMsg fetches the next legacy mouse message, blocking until
// one arrives.
func GetMouseMsg() (MouseMsg, error) {
	if err := ensureLoaded(); err != nil {
		return MouseMsg{}, err
	}
	var c MouseMsgC
	fnGetMouseMsg(uintptr(unsafe.Pointer(&c)))
	runtime.KeepAlive(&c)
	return decodeMouseMsg(&c), nil
}

// PeekMouseMsg returns the next legacy mouse message without
// blocking. With remove set the message is dequeued.
func PeekMouseMsg(remove bool) (MouseMsg, bool, error) {
	if err := ensureLoaded(); err != nil {
		return MouseMsg{}, false, err
	}
	var c MouseMsgC
	found := fnPeekMouseMsg(uintptr(unsafe.Pointer(&c)), int32(b2i(remove)))
	runtime.KeepAlive(&c)
	if found == 0 {
		return MouseMsg{}, false, nil
	}
	return decodeMouseMsg(&c), true, nil
}

// FlushMouseMsgBuffer discards all queued legacy mouse messages.
func FlushMouseMsgBuffer() {
	fnFlushMouseMsgBuf()
}
