// Package ffi binds the flat easyx_* surface of the host graphics
// library via purego. No CGo is involved: the host is loaded as a
// dynamic library at runtime and every entry point is registered into
// a package-level function variable.
//
// The host is the wide-character build of the flat surface: every
// string crossing the boundary is a NUL-terminated UTF-16LE code-unit
// sequence, every struct a fixed-layout value block. Conversion from
// Go strings happens here and only here (see strings.go).
package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/easyx-go/easyx/internal/flog"
)

var (
	libHandle   uintptr
	libOnce     sync.Once
	libErr      error
	initialized bool
)

// Host entry points, grouped the way the flat surface groups them.
// Pointer parameters cross as uintptr; callers pin the backing memory
// with runtime.KeepAlive.
var (
	// Window lifecycle
	fnInitGraph  func(width, height, flags int32) uintptr
	fnCloseGraph func()

	// Device state
	fnClearDevice     func()
	fnSetClipRgn      func(hrgn uintptr)
	fnClearClipRgn    func()
	fnSetOrigin       func(x, y int32)
	fnGetAspectRatio  func(pxasp, pyasp uintptr)
	fnSetAspectRatio  func(xasp, yasp float32)
	fnGetRop2         func() int32
	fnSetRop2         func(mode int32)
	fnGetPolyFillMode func() int32
	fnSetPolyFillMode func(mode int32)
	fnGraphDefaults   func()

	// Line and fill styles
	fnSetLineStyle        func(style, thickness int32, puserstyle uintptr, userstylecount uint32)
	fnGetLineStyle        func(pstyle, pthickness, puserstyle, puserstylecount uintptr)
	fnGetLineStyleLen     func() uint32
	fnSetFillStyle        func(style, hatch int32, ppattern uintptr)
	fnGetFillStyle        func(pstyle, phatch, pppattern uintptr)
	fnSetFillStylePattern func(ppattern8x8 uintptr)

	// Colors
	fnGetLineColor func() uint32
	fnSetLineColor func(color uint32)
	fnGetTextColor func() uint32
	fnSetTextColor func(color uint32)
	fnGetFillColor func() uint32
	fnSetFillColor func(color uint32)
	fnGetBkColor   func() uint32
	fnSetBkColor   func(color uint32)
	fnGetBkMode    func() int32
	fnSetBkMode    func(mode int32)

	// Color model conversions
	fnRGBToGray func(rgb uint32) uint32
	fnRGBToHSL  func(rgb uint32, h, s, l uintptr)
	fnRGBToHSV  func(rgb uint32, h, s, v uintptr)
	fnHSLToRGB  func(h, s, l float32) uint32
	fnHSVToRGB  func(h, s, v float32) uint32

	// Drawing primitives
	fnGetPixel       func(x, y int32) uint32
	fnPutPixel       func(x, y int32, color uint32)
	fnLine           func(x1, y1, x2, y2 int32)
	fnRectangle      func(left, top, right, bottom int32)
	fnFillRectangle  func(left, top, right, bottom int32)
	fnSolidRectangle func(left, top, right, bottom int32)
	fnClearRectangle func(left, top, right, bottom int32)
	fnCircle         func(x, y, radius int32)
	fnFillCircle     func(x, y, radius int32)
	fnSolidCircle    func(x, y, radius int32)
	fnClearCircle    func(x, y, radius int32)
	fnEllipse        func(left, top, right, bottom int32)
	fnFillEllipse    func(left, top, right, bottom int32)
	fnSolidEllipse   func(left, top, right, bottom int32)
	fnClearEllipse   func(left, top, right, bottom int32)
	fnRoundRect      func(left, top, right, bottom, ellipseWidth, ellipseHeight int32)
	fnFillRoundRect  func(left, top, right, bottom, ellipseWidth, ellipseHeight int32)
	fnSolidRoundRect func(left, top, right, bottom, ellipseWidth, ellipseHeight int32)
	fnClearRoundRect func(left, top, right, bottom, ellipseWidth, ellipseHeight int32)
	fnArc            func(left, top, right, bottom int32, stangle, endangle float64)
	fnPie            func(left, top, right, bottom int32, stangle, endangle float64)
	fnFillPie        func(left, top, right, bottom int32, stangle, endangle float64)
	fnSolidPie       func(left, top, right, bottom int32, stangle, endangle float64)
	fnClearPie       func(left, top, right, bottom int32, stangle, endangle float64)
	fnPolyline       func(points uintptr, num int32)
	fnPolygon        func(points uintptr, num int32)
	fnFillPolygon    func(points uintptr, num int32)
	fnSolidPolygon   func(points uintptr, num int32)
	fnClearPolygon   func(points uintptr, num int32)
	fnPolyBezier     func(points uintptr, num int32)
	fnFloodFill      func(x, y int32, color uint32, fillType int32)

	// Text
	fnOutTextXY          func(x, y int32, str uintptr)
	fnOutTextXYChar      func(x, y int32, ch uint16)
	fnTextWidth          func(str uintptr) int32
	fnTextWidthChar      func(ch uint16) int32
	fnTextHeight         func(str uintptr) int32
	fnTextHeightChar     func(ch uint16) int32
	fnDrawText           func(str uintptr, pRect uintptr, format uint32) int32
	fnDrawTextChar       func(ch uint16, pRect uintptr, format uint32) int32
	fnSetTextStyle       func(height, width int32, face uintptr)
	fnSetTextStyleFull   func(height, width int32, face uintptr, escapement, orientation, weight, italic, underline, strikeOut int32)
	fnSetTextStyleFullEx func(height, width int32, face uintptr, escapement, orientation, weight, italic, underline, strikeOut int32, charSet, outPrecision, clipPrecision, quality, pitchAndFamily uint8)
	fnSetTextStyleFont   func(pLogFont uintptr)
	fnGetTextStyle       func(pLogFont uintptr)

	// Images
	fnCreateImage       func(width, height int32) uintptr
	fnDestroyImage      func(img uintptr)
	fnCopyImage         func(dst, src uintptr)
	fnImageGetWidth     func(img uintptr) int32
	fnImageGetHeight    func(img uintptr) int32
	fnImageResize       func(img uintptr, width, height int32)
	fnLoadImageFile     func(dst, path uintptr, width, height, resize int32) int32
	fnLoadImageResource func(dst, resType, resName uintptr, width, height, resize int32) int32
	fnSaveImage         func(path, img uintptr)
	fnGetImage          func(dst uintptr, srcX, srcY, srcWidth, srcHeight int32)
	fnPutImage          func(dstX, dstY int32, src uintptr, rop uint32)
	fnPutImagePart      func(dstX, dstY, dstWidth, dstHeight int32, src uintptr, srcX, srcY int32, rop uint32)
	fnRotateImage       func(dst, src uintptr, radian float64, bkColor uint32, autoSize, highQuality int32)
	fnResizeDevice      func(img uintptr, width, height int32)
	fnGetImageBuffer    func(img uintptr) uintptr
	fnGetWorkingImage   func() uintptr
	fnSetWorkingImage   func(img uintptr)
	fnGetImageHDC       func(img uintptr) uintptr

	// Batching, timing, introspection
	fnGetWidth           func() int32
	fnGetHeight          func() int32
	fnBeginBatchDraw     func()
	fnFlushBatchDraw     func()
	fnFlushBatchDrawRect func(left, top, right, bottom int32)
	fnEndBatchDraw       func()
	fnEndBatchDrawRect   func(left, top, right, bottom int32)
	fnDelay              func(ms int32)
	fnGetVersion         func() uintptr
	fnGetHWnd            func() uintptr

	// Legacy graphics.h surface
	fnSetFont       func(height, width int32, face uintptr)
	fnSetFontFull   func(height, width int32, face uintptr, escapement, orientation, weight, italic, underline, strikeOut int32)
	fnSetFontFullEx func(height, width int32, face uintptr, escapement, orientation, weight, italic, underline, strikeOut int32, charSet, outPrecision, clipPrecision, quality, pitchAndFamily uint8)
	fnSetFontFont   func(pLogFont uintptr)
	fnGetFont       func(pLogFont uintptr)
	fnBar           func(left, top, right, bottom int32)
	fnBar3D         func(left, top, right, bottom, depth, topFlag int32)
	fnDrawPoly      func(numPoints int32, polyPoints uintptr)
	fnFillPoly      func(numPoints int32, polyPoints uintptr)
	fnGetMaxX       func() int32
	fnGetMaxY       func() int32
	fnGetColor      func() uint32
	fnSetColor      func(color uint32)
	fnSetWriteMode  func(mode int32)
	fnGetX          func() int32
	fnGetY          func() int32
	fnMoveTo        func(x, y int32)
	fnMoveRel       func(dx, dy int32)
	fnLineTo        func(x, y int32)
	fnLineRel       func(dx, dy int32)
	fnOutText       func(str uintptr)
	fnOutTextChar   func(ch uint16)

	// Legacy mouse queue
	fnMouseHit         func() int32
	fnGetMouseMsg      func(pMsg uintptr)
	fnPeekMouseMsg     func(pMsg uintptr, removeMsg int32) int32
	fnFlushMouseMsgBuf func()

	// Message queue
	fnGetMessage     func(pMsg uintptr, filter uint8)
	fnPeekMessage    func(pMsg uintptr, filter uint8, removeMsg int32) int32
	fnFlushMessage   func(filter uint8)
	fnSetCapture     func()
	fnReleaseCapture func()

	// Modal input dialog
	fnInputBox func(buf uintptr, maxCount int32, prompt, title, def uintptr, width, height, onlyOK int32) int32
)

// libraryPath resolves the host library location. EASYX_LIBRARY_PATH
// wins; otherwise a handful of conventional locations are probed.
func libraryPath() string {
	if path := os.Getenv("EASYX_LIBRARY_PATH"); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "windows":
		libName = "easyx.dll"
	case "darwin":
		libName = "libeasyx.dylib"
	default:
		libName = "libeasyx.so"
	}

	searchPaths := []string{
		libName,
		filepath.Join(".", libName),
		filepath.Join("lib", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	// Let the system loader find it.
	return libName
}

// initLibrary loads the host library and registers every entry point.
func initLibrary() error {
	libOnce.Do(func() {
		path := libraryPath()
		flog.Debug("loading host library", "path", path, "os", runtime.GOOS, "arch", runtime.GOARCH)

		libHandle, libErr = openLibrary(path)
		if libErr != nil {
			libErr = fmt.Errorf("load host library %s: %w", path, libErr)
			flog.Error("host library load failed", "err", libErr)
			return
		}

		registerWindowFunctions()
		registerDeviceFunctions()
		registerStyleFunctions()
		registerColorFunctions()
		registerDrawFunctions()
		registerTextFunctions()
		registerImageFunctions()
		registerBatchFunctions()
		registerLegacyFunctions()
		registerMessageFunctions()

		initialized = true
		flog.Debug("host library ready")
	})

	return libErr
}

// register binds one host entry point into its function variable.
func register(fptr interface{}, name string) {
	purego.RegisterLibFunc(fptr, libHandle, name)
}

func registerWindowFunctions() {
	register(&fnInitGraph, "easyx_initgraph")
	register(&fnCloseGraph, "easyx_closegraph")
}

func registerDeviceFunctions() {
	register(&fnClearDevice, "easyx_cleardevice")
	register(&fnSetClipRgn, "easyx_setcliprgn")
	register(&fnClearClipRgn, "easyx_clearcliprgn")
	register(&fnSetOrigin, "easyx_setorigin")
	register(&fnGetAspectRatio, "easyx_getaspectratio")
	register(&fnSetAspectRatio, "easyx_setaspectratio")
	register(&fnGetRop2, "easyx_getrop2")
	register(&fnSetRop2, "easyx_setrop2")
	register(&fnGetPolyFillMode, "easyx_getpolyfillmode")
	register(&fnSetPolyFillMode, "easyx_setpolyfillmode")
	register(&fnGraphDefaults, "easyx_graphdefaults")
}

func registerStyleFunctions() {
	register(&fnSetLineStyle, "easyx_setlinestyle")
	register(&fnGetLineStyle, "easyx_getlinestyle")
	register(&fnGetLineStyleLen, "easyx_getlinestyle_len")
	register(&fnSetFillStyle, "easyx_setfillstyle")
	register(&fnGetFillStyle, "easyx_getfillstyle")
	register(&fnSetFillStylePattern, "easyx_setfillstyle_pattern")
}

func registerColorFunctions() {
	register(&fnGetLineColor, "easyx_getlinecolor")
	register(&fnSetLineColor, "easyx_setlinecolor")
	register(&fnGetTextColor, "easyx_gettextcolor")
	register(&fnSetTextColor, "easyx_settextcolor")
	register(&fnGetFillColor, "easyx_getfillcolor")
	register(&fnSetFillColor, "easyx_setfillcolor")
	register(&fnGetBkColor, "easyx_getbkcolor")
	register(&fnSetBkColor, "easyx_setbkcolor")
	register(&fnGetBkMode, "easyx_getbkmode")
	register(&fnSetBkMode, "easyx_setbkmode")
	register(&fnRGBToGray, "easyx_rgb_to_gray")
	register(&fnRGBToHSL, "easyx_rgb_to_hsl")
	register(&fnRGBToHSV, "easyx_rgb_to_hsv")
	register(&fnHSLToRGB, "easyx_hsl_to_rgb")
	register(&fnHSVToRGB, "easyx_hsv_to_rgb")
}

func registerDrawFunctions() {
	register(&fnGetPixel, "easyx_getpixel")
	register(&fnPutPixel, "easyx_putpixel")
	register(&fnLine, "easyx_line")
	register(&fnRectangle, "easyx_rectangle")
	register(&fnFillRectangle, "easyx_fillrectangle")
	register(&fnSolidRectangle, "easyx_solidrectangle")
	register(&fnClearRectangle, "easyx_clearrectangle")
	register(&fnCircle, "easyx_circle")
	register(&fnFillCircle, "easyx_fillcircle")
	register(&fnSolidCircle, "easyx_solidcircle")
	register(&fnClearCircle, "easyx_clearcircle")
	register(&fnEllipse, "easyx_ellipse")
	register(&fnFillEllipse, "easyx_fillellipse")
	register(&fnSolidEllipse, "easyx_solidellipse")
	register(&fnClearEllipse, "easyx_clearellipse")
	register(&fnRoundRect, "easyx_roundrect")
	register(&fnFillRoundRect, "easyx_fillroundrect")
	register(&fnSolidRoundRect, "easyx_solidroundrect")
	register(&fnClearRoundRect, "easyx_clearroundrect")
	register(&fnArc, "easyx_arc")
	register(&fnPie, "easyx_pie")
	register(&fnFillPie, "easyx_fillpie")
	register(&fnSolidPie, "easyx_solidpie")
	register(&fnClearPie, "easyx_clearpie")
	register(&fnPolyline, "easyx_polyline")
	register(&fnPolygon, "easyx_polygon")
	register(&fnFillPolygon, "easyx_fillpolygon")
	register(&fnSolidPolygon, "easyx_solidpolygon")
	register(&fnClearPolygon, "easyx_clearpolygon")
	register(&fnPolyBezier, "easyx_polybezier")
	register(&fnFloodFill, "easyx_floodfill")
}

func registerTextFunctions() {
	register(&fnOutTextXY, "easyx_outtextxy")
	register(&fnOutTextXYChar, "easyx_outtextxy_char")
	register(&fnTextWidth, "easyx_textwidth")
	register(&fnTextWidthChar, "easyx_textwidth_char")
	register(&fnTextHeight, "easyx_textheight")
	register(&fnTextHeightChar, "easyx_textheight_char")
	register(&fnDrawText, "easyx_drawtext")
	register(&fnDrawTextChar, "easyx_drawtext_char")
	register(&fnSetTextStyle, "easyx_settextstyle")
	register(&fnSetTextStyleFull, "easyx_settextstyle_full")
	register(&fnSetTextStyleFullEx, "easyx_settextstyle_full_ex")
	register(&fnSetTextStyleFont, "easyx_settextstyle_logfont")
	register(&fnGetTextStyle, "easyx_gettextstyle")
	register(&fnInputBox, "easyx_inputbox")
}

func registerImageFunctions() {
	register(&fnCreateImage, "easyx_create_image")
	register(&fnDestroyImage, "easyx_destroy_image")
	register(&fnCopyImage, "easyx_copy_image")
	register(&fnImageGetWidth, "easyx_image_getwidth")
	register(&fnImageGetHeight, "easyx_image_getheight")
	register(&fnImageResize, "easyx_image_resize")
	register(&fnLoadImageFile, "easyx_loadimage_file")
	register(&fnLoadImageResource, "easyx_loadimage_resource")
	register(&fnSaveImage, "easyx_saveimage")
	register(&fnGetImage, "easyx_getimage")
	register(&fnPutImage, "easyx_putimage")
	register(&fnPutImagePart, "easyx_putimage_part")
	register(&fnRotateImage, "easyx_rotateimage")
	register(&fnResizeDevice, "easyx_resize_device")
	register(&fnGetImageBuffer, "easyx_getimagebuffer")
	register(&fnGetWorkingImage, "easyx_getworkingimage")
	register(&fnSetWorkingImage, "easyx_setworkingimage")
	register(&fnGetImageHDC, "easyx_getimagehdc")
}

func registerBatchFunctions() {
	register(&fnGetWidth, "easyx_getwidth")
	register(&fnGetHeight, "easyx_getheight")
	register(&fnBeginBatchDraw, "easyx_beginbatchdraw")
	register(&fnFlushBatchDraw, "easyx_flushbatchdraw")
	register(&fnFlushBatchDrawRect, "easyx_flushbatchdraw_rect")
	register(&fnEndBatchDraw, "easyx_endbatchdraw")
	register(&fnEndBatchDrawRect, "easyx_endbatchdraw_rect")
	register(&fnDelay, "easyx_delay")
	register(&fnGetVersion, "easyx_geteasyxver")
	register(&fnGetHWnd, "easyx_gethwnd")
}

func registerLegacyFunctions() {
	register(&fnSetFont, "easyx_setfont")
	register(&fnSetFontFull, "easyx_setfont_full")
	register(&fnSetFontFullEx, "easyx_setfont_full_ex")
	register(&fnSetFontFont, "easyx_setfont_logfont")
	register(&fnGetFont, "easyx_getfont")
	register(&fnBar, "easyx_bar")
	register(&fnBar3D, "easyx_bar3d")
	register(&fnDrawPoly, "easyx_drawpoly")
	register(&fnFillPoly, "easyx_fillpoly")
	register(&fnGetMaxX, "easyx_getmaxx")
	register(&fnGetMaxY, "easyx_getmaxy")
	register(&fnGetColor, "easyx_getcolor")
	register(&fnSetColor, "easyx_setcolor")
	register(&fnSetWriteMode, "easyx_setwritemode")
	register(&fnGetX, "easyx_getx")
	register(&fnGetY, "easyx_gety")
	register(&fnMoveTo, "easyx_moveto")
	register(&fnMoveRel, "easyx_moverel")
	register(&fnLineTo, "easyx_lineto")
	register(&fnLineRel, "easyx_linerel")
	register(&fnOutText, "easyx_outtext")
	register(&fnOutTextChar, "easyx_outtext_char")
	register(&fnMouseHit, "easyx_mousehit")
	register(&fnGetMouseMsg, "easyx_getmousemsg")
	register(&fnPeekMouseMsg, "easyx_peekmousemsg")
	register(&fnFlushMouseMsgBuf, "easyx_flushmousemsgbuffer")
}

func registerMessageFunctions() {
	register(&fnGetMessage, "easyx_getmessage")
	register(&fnPeekMessage, "easyx_peekmessage")
	register(&fnFlushMessage, "easyx_flushmessage")
	register(&fnSetCapture, "easyx_setcapture")
	register(&fnReleaseCapture, "easyx_releasecapture")
}

// Initialized reports whether the host library has been loaded.
func Initialized() bool {
	return initialized
}

// ensureLoaded is the guard every forwarding wrapper runs first.
func ensureLoaded() error {
	if initialized {
		return nil
	}
	return initLibrary()
}
