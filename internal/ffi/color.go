package ffi

import (
	"runtime"
	"unsafe"
)

// Color is a packed red-green-blue value, red in the low byte.
type Color uint32

// RGB packs components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

// R, G and B unpack one component each.
func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }

// The host's named palette.
const (
	Black        Color = 0x000000
	Blue         Color = 0xAA0000
	Green        Color = 0x00AA00
	Cyan         Color = 0xAAAA00
	Red          Color = 0x0000AA
	Magenta      Color = 0xAA00AA
	Brown        Color = 0x0055AA
	LightGray    Color = 0xAAAAAA
	DarkGray     Color = 0x555555
	LightBlue    Color = 0xFF5555
	LightGreen   Color = 0x55FF55
	LightCyan    Color = 0xFFFF55
	LightRed     Color = 0x5555FF
	LightMagenta Color = 0xFF55FF
	Yellow       Color = 0x55FFFF
	White        Color = 0xFFFFFF
)

// LineColor reports the current pen color.
func LineColor() Color {
	return Color(fnGetLineColor())
}

// SetLineColor sets the pen color.
func SetLineColor(c Color) {
	fnSetLineColor(uint32(c))
}

// TextColor reports the current text color.
func TextColor() Color {
	return Color(fnGetTextColor())
}

// SetTextColor sets the text color.
func SetTextColor(c Color) {
	fnSetTextColor(uint32(c))
}

// FillColor reports the current brush color.
func FillColor() Color {
	return Color(fnGetFillColor())
}

// SetFillColor sets the brush color.
func SetFillColor(c Color) {
	fnSetFillColor(uint32(c))
}

// BkColor reports the current background color.
func BkColor() Color {
	return Color(fnGetBkColor())
}

// SetBkColor sets the background color.
func SetBkColor(c Color) {
	fnSetBkColor(uint32(c))
}

// ToGray converts to the luminance-matched gray.
func (c Color) ToGray() Color {
	return Color(fnRGBToGray(uint32(c)))
}

// ToHSL converts to hue, saturation and lightness.
func (c Color) ToHSL() (h, s, l float32) {
	fnRGBToHSL(uint32(c),
		uintptr(unsafe.Pointer(&h)),
		uintptr(unsafe.Pointer(&s)),
		uintptr(unsafe.Pointer(&l)),
	)
	runtime.KeepAlive(&h)
	runtime.KeepAlive(&s)
	runtime.KeepAlive(&l)
	return h, s, l
}

// ToHSV converts to hue, saturation and value.
func (c Color) ToHSV() (h, s, v float32) {
	fnRGBToHSV(uint32(c),
		uintptr(unsafe.Pointer(&h)),
		uintptr(unsafe.Pointer(&s)),
		uintptr(unsafe.Pointer(&v)),
	)
	runtime.KeepAlive(&h)
	runtime.KeepAlive(&s)
	runtime.KeepAlive(&v)
	return h, s, v
}

// HSLToRGB converts hue, saturation and lightness to a Color.
func HSLToRGB(h, s, l float32) Color {
	return Color(fnHSLToRGB(h, s, l))
}

// HSVToRGB converts hue, saturation and value to a Color.
func HSVToRGB(h, s, v float32) Color {
	return Color(fnHSVToRGB(h, s, v))
}
