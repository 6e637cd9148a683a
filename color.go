package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Color is a packed red-green-blue value, red in the low byte.
// This is a re-export of ffi.Color for consumer convenience.
type Color = ffi.Color

// RGB packs components into a Color.
func RGB(r, g, b uint8) Color {
	return ffi.RGB(r, g, b)
}

// The host's named palette.
const (
	Black        = ffi.Black
	Blue         = ffi.Blue
	Green        = ffi.Green
	Cyan         = ffi.Cyan
	Red          = ffi.Red
	Magenta      = ffi.Magenta
	Brown        = ffi.Brown
	LightGray    = ffi.LightGray
	DarkGray     = ffi.DarkGray
	LightBlue    = ffi.LightBlue
	LightGreen   = ffi.LightGreen
	LightCyan    = ffi.LightCyan
	LightRed     = ffi.LightRed
	LightMagenta = ffi.LightMagenta
	Yellow       = ffi.Yellow
	White        = ffi.White
)

// HSLToRGB converts hue, saturation and lightness to a Color.
func HSLToRGB(h, s, l float32) Color {
	return ffi.HSLToRGB(h, s, l)
}

// HSVToRGB converts hue, saturation and value to a Color.
func HSVToRGB(h, s, v float32) Color {
	return ffi.HSVToRGB(h, s, v)
}

// LineColor reports the current pen color.
func (w *Window) LineColor() Color {
	return ffi.LineColor()
}

// SetLineColor sets the pen color.
func (w *Window) SetLineColor(c Color) {
	ffi.SetLineColor(c)
}

// TextColor reports the current text color.
func (w *Window) TextColor() Color {
	return ffi.TextColor()
}

// SetTextColor sets the text color.
func (w *Window) SetTextColor(c Color) {
	ffi.SetTextColor(c)
}

// FillColor reports the current brush color.
func (w *Window) FillColor() Color {
	return ffi.FillColor()
}

// SetFillColor sets the brush color.
func (w *Window) SetFillColor(c Color) {
	ffi.SetFillColor(c)
}

// BkColor reports the current background color.
func (w *Window) BkColor() Color {
	return ffi.BkColor()
}

// SetBkColor sets the background color.
func (w *Window) SetBkColor(c Color) {
	ffi.SetBkColor(c)
}
