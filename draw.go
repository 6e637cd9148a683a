package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Point matches the host's point layout.
// This is a re-export of ffi.Point for consumer convenience.
type Point = ffi.Point

// Flood-fill modes.
const (
	FloodFillBorder  = ffi.FloodFillBorder
	FloodFillSurface = ffi.FloodFillSurface
)

// Pixel reads the color at one pixel.
func (w *Window) Pixel(x, y int32) Color {
	return ffi.Pixel(x, y)
}

// PutPixel writes one pixel.
func (w *Window) PutPixel(x, y int32, c Color) {
	ffi.PutPixel(x, y, c)
}

// Line draws a line between two points with the current pen.
func (w *Window) Line(x1, y1, x2, y2 int32) {
	ffi.Line(x1, y1, x2, y2)
}

// Rectangle draws an outlined rectangle.
func (w *Window) Rectangle(left, top, right, bottom int32) {
	ffi.Rectangle(left, top, right, bottom)
}

// FillRectangle draws a rectangle outlined with the pen and filled
// with the brush.
func (w *Window) FillRectangle(left, top, right, bottom int32) {
	ffi.FillRectangle(left, top, right, bottom)
}

// SolidRectangle draws a borderless filled rectangle.
func (w *Window) SolidRectangle(left, top, right, bottom int32) {
	ffi.SolidRectangle(left, top, right, bottom)
}

// ClearRectangle erases a rectangle to the background color.
func (w *Window) ClearRectangle(left, top, right, bottom int32) {
	ffi.ClearRectangle(left, top, right, bottom)
}

// Circle draws an outlined circle.
func (w *Window) Circle(x, y, radius int32) {
	ffi.Circle(x, y, radius)
}

// FillCircle draws an outlined, filled circle.
func (w *Window) FillCircle(x, y, radius int32) {
	ffi.FillCircle(x, y, radius)
}

// SolidCircle draws a borderless filled circle.
func (w *Window) SolidCircle(x, y, radius int32) {
	ffi.SolidCircle(x, y, radius)
}

// ClearCircle erases a circle to the background color.
func (w *Window) ClearCircle(x, y, radius int32) {
	ffi.ClearCircle(x, y, radius)
}

// Ellipse draws an outlined ellipse inscribed in the rectangle.
func (w *Window) Ellipse(left, top, right, bottom int32) {
	ffi.Ellipse(left, top, right, bottom)
}

// FillEllipse draws an outlined, filled ellipse.
func (w *Window) FillEllipse(left, top, right, bottom int32) {
	ffi.FillEllipse(left, top, right, bottom)
}

// SolidEllipse draws a borderless filled ellipse.
func (w *Window) SolidEllipse(left, top, right, bottom int32) {
	ffi.SolidEllipse(left, top, right, bottom)
}

// ClearEllipse erases an ellipse to the background color.
func (w *Window) ClearEllipse(left, top, right, bottom int32) {
	ffi.ClearEllipse(left, top, right, bottom)
}

// RoundRect draws an outlined rounded rectangle.
func (w *Window) RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	ffi.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// FillRoundRect draws an outlined, filled rounded rectangle.
func (w *Window) FillRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	ffi.FillRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// SolidRoundRect draws a borderless filled rounded rectangle.
func (w *Window) SolidRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	ffi.SolidRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// ClearRoundRect erases a rounded rectangle to the background color.
func (w *Window) ClearRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	ffi.ClearRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// Arc draws an elliptic arc between two angles in radians.
func (w *Window) Arc(left, top, right, bottom int32, startAngle, endAngle float64) {
	ffi.Arc(left, top, right, bottom, startAngle, endAngle)
}

// Pie draws an outlined pie slice.
func (w *Window) Pie(left, top, right, bottom int32, startAngle, endAngle float64) {
	ffi.Pie(left, top, right, bottom, startAngle, endAngle)
}

// FillPie draws an outlined, filled pie slice.
func (w *Window) FillPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	ffi.FillPie(left, top, right, bottom, startAngle, endAngle)
}

// SolidPie draws a borderless filled pie slice.
func (w *Window) SolidPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	ffi.SolidPie(left, top, right, bottom, startAngle, endAngle)
}

// ClearPie erases a pie slice to the background color.
func (w *Window) ClearPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	ffi.ClearPie(left, top, right, bottom, startAngle, endAngle)
}

// Polyline draws connected line segments through the points.
func (w *Window) Polyline(points []Point) {
	ffi.Polyline(points)
}

// Polygon draws a closed outlined polygon.
func (w *Window) Polygon(points []Point) {
	ffi.Polygon(points)
}

// FillPolygon draws an outlined, filled polygon.
func (w *Window) FillPolygon(points []Point) {
	ffi.FillPolygon(points)
}

// SolidPolygon draws a borderless filled polygon.
func (w *Window) SolidPolygon(points []Point) {
	ffi.SolidPolygon(points)
}

// ClearPolygon erases a polygon to the background color.
func (w *Window) ClearPolygon(points []Point) {
	ffi.ClearPolygon(points)
}

// PolyBezier draws cubic Bezier curves; the point count must be one
// more than a multiple of three.
func (w *Window) PolyBezier(points []Point) {
	ffi.PolyBezier(points)
}

// FloodFill fills from a seed point.
func (w *Window) FloodFill(x, y int32, c Color, fillType int32) {
	ffi.FloodFill(x, y, c, fillType)
}
