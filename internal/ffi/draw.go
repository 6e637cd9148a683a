package ffi

import (
	"runtime"
	"unsafe"
)

// Point matches the host's point layout, two 32-bit coordinates.
type Point struct {
	X int32
	Y int32
}

// Flood-fill modes.
const (
	FloodFillBorder  int32 = 0
	FloodFillSurface int32 = 1
)

func pointsPtr(points []Point) uintptr {
	if len(points) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&points[0]))
}

// Pixel reads the color at one pixel.
func Pixel(x, y int32) Color {
	return Color(fnGetPixel(x, y))
}

// PutPixel writes one pixel.
func PutPixel(x, y int32, c Color) {
	fnPutPixel(x, y, uint32(c))
}

// Line draws a line between two points with the current pen.
func Line(x1, y1, x2, y2 int32) {
	fnLine(x1, y1, x2, y2)
}

// Rectangle draws an outlined rectangle.
func Rectangle(left, top, right, bottom int32) {
	fnRectangle(left, top, right, bottom)
}

// FillRectangle draws a rectangle outlined with the pen and filled
// with the brush.
func FillRectangle(left, top, right, bottom int32) {
	fnFillRectangle(left, top, right, bottom)
}

// SolidRectangle draws a borderless filled rectangle.
func SolidRectangle(left, top, right, bottom int32) {
	fnSolidRectangle(left, top, right, bottom)
}

// ClearRectangle erases a rectangle to the background color.
func ClearRectangle(left, top, right, bottom int32) {
	fnClearRectangle(left, top, right, bottom)
}

// Circle draws an outlined circle.
func Circle(x, y, radius int32) {
	fnCircle(x, y, radius)
}

// FillCircle draws an outlined, filled circle.
func FillCircle(x, y, radius int32) {
	fnFillCircle(x, y, radius)
}

// SolidCircle draws a borderless filled circle.
func SolidCircle(x, y, radius int32) {
	fnSolidCircle(x, y, radius)
}

// ClearCircle erases a circle to the background color.
func ClearCircle(x, y, radius int32) {
	fnClearCircle(x, y, radius)
}

// Ellipse draws an outlined ellipse inscribed in the rectangle.
func Ellipse(left, top, right, bottom int32) {
	fnEllipse(left, top, right, bottom)
}

// FillEllipse draws an outlined, filled ellipse.
func FillEllipse(left, top, right, bottom int32) {
	fnFillEllipse(left, top, right, bottom)
}

// SolidEllipse draws a borderless filled ellipse.
func SolidEllipse(left, top, right, bottom int32) {
	fnSolidEllipse(left, top, right, bottom)
}

// ClearEllipse erases an ellipse to the background color.
func ClearEllipse(left, top, right, bottom int32) {
	fnClearEllipse(left, top, right, bottom)
}

// RoundRect draws an outlined rounded rectangle; the ellipse size
// sets the corner curvature.
func RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	fnRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// FillRoundRect draws an outlined, filled rounded rectangle.
func FillRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	fnFillRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// SolidRoundRect draws a borderless filled rounded rectangle.
func SolidRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	fnSolidRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// ClearRoundRect erases a rounded rectangle to the background color.
func ClearRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int32) {
	fnClearRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight)
}

// Arc draws an elliptic arc between two angles in radians.
func Arc(left, top, right, bottom int32, startAngle, endAngle float64) {
	fnArc(left, top, right, bottom, startAngle, endAngle)
}

// Pie draws an outlined pie slice.
func Pie(left, top, right, bottom int32, startAngle, endAngle float64) {
	fnPie(left, top, right, bottom, startAngle, endAngle)
}

// FillPie draws an outlined, filled pie slice.
func FillPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	fnFillPie(left, top, right, bottom, startAngle, endAngle)
}

// SolidPie draws a borderless filled pie slice.
func SolidPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	fnSolidPie(left, top, right, bottom, startAngle, endAngle)
}

// ClearPie erases a pie slice to the background color.
func ClearPie(left, top, right, bottom int32, startAngle, endAngle float64) {
	fnClearPie(left, top, right, bottom, startAngle, endAngle)
}

// Polyline draws connected line segments through the points.
func Polyline(points []Point) {
	fnPolyline(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// Polygon draws a closed outlined polygon.
func Polygon(points []Point) {
	fnPolygon(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// FillPolygon draws an outlined, filled polygon.
func FillPolygon(points []Point) {
	fnFillPolygon(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// SolidPolygon draws a borderless filled polygon.
func SolidPolygon(points []Point) {
	fnSolidPolygon(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// ClearPolygon erases a polygon to the background color.
func ClearPolygon(points []Point) {
	fnClearPolygon(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// PolyBezier draws cubic Bezier curves; the point count must be one
// more than a multiple of three.
func PolyBezier(points []Point) {
	fnPolyBezier(pointsPtr(points), int32(len(points)))
	runtime.KeepAlive(points)
}

// FloodFill fills from a seed point. With FloodFillBorder, c is the
// border color to stop at; with FloodFillSurface, the color to
// replace.
func FloodFill(x, y int32, c Color, fillType int32) {
	fnFloodFill(x, y, uint32(c), fillType)
}
