package easyx

import (
	"os"

	"github.com/easyx-go/easyx/internal/ffi"
	"github.com/easyx-go/easyx/internal/flog"
)

// InitFlag selects window creation behavior; flags compose with |.
type InitFlag int32

const (
	// ShowConsole keeps the console window visible.
	ShowConsole InitFlag = 1
	// NoClose disables the window close button.
	NoClose InitFlag = 2
	// NoMinimize disables the window minimize button.
	NoMinimize InitFlag = 4
	// DblClks enables double-click mouse messages.
	DblClks InitFlag = 8
)

// Window is the drawing context. The host library holds one window
// and one set of drawing state per process, so at most one Window is
// open at a time; a second Init replaces the first window.
//
// The host is not reentrant. Calls on a Window must come from one
// goroutine, or be serialized by the caller.
type Window struct {
	handle uintptr
	closed bool
}

// Init creates the drawing window and loads the host library on
// first use.
func Init(width, height int32) (*Window, error) {
	return InitFlags(width, height, 0)
}

// InitFlags creates the drawing window with behavior flags.
func InitFlags(width, height int32, flags InitFlag) (*Window, error) {
	h, err := ffi.InitGraph(width, height, int32(flags))
	if err != nil {
		return nil, err
	}
	flog.Debug("window created", "width", width, "height", height, "flags", int32(flags))
	return &Window{handle: h}, nil
}

// InitConfig creates the drawing window from a Config, applying its
// library path and log level first.
func InitConfig(config Config) (*Window, error) {
	if config.Library.Path != "" {
		os.Setenv("EASYX_LIBRARY_PATH", config.Library.Path)
	}
	if config.Log.Level != "" {
		flog.SetLevel(config.Log.Level)
	}
	return InitFlags(config.Window.Width, config.Window.Height, config.Window.Flags())
}

// Run creates a window, hands it to fn and closes it when fn
// returns. The error from fn is passed through.
func Run(width, height int32, fn func(*Window) error) error {
	return RunFlags(width, height, 0, fn)
}

// RunFlags is Run with window behavior flags.
func RunFlags(width, height int32, flags InitFlag, fn func(*Window) error) error {
	w, err := InitFlags(width, height, flags)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}

// Close destroys the window. Further calls on the Window are invalid
// except repeated Close, which is a no-op.
func (w *Window) Close() {
	if w == nil || w.closed {
		return
	}
	ffi.CloseGraph()
	w.closed = true
	flog.Debug("window closed")
}

// HWnd returns the native window handle for platform interop.
func (w *Window) HWnd() uintptr {
	return w.handle
}

// Width reports the drawing surface width in pixels.
func (w *Window) Width() int32 {
	return ffi.Width()
}

// Height reports the drawing surface height in pixels.
func (w *Window) Height() int32 {
	return ffi.Height()
}

// Version returns the host library version string.
func Version() string {
	return ffi.Version()
}

// Delay waits ms milliseconds while keeping the window responsive.
func (w *Window) Delay(ms int32) {
	ffi.Delay(ms)
}

// BeginBatchDraw defers presentation until FlushBatchDraw or
// EndBatchDraw, which avoids flicker in animation loops.
func (w *Window) BeginBatchDraw() {
	ffi.BeginBatchDraw()
}

// FlushBatchDraw presents everything drawn since the batch began.
func (w *Window) FlushBatchDraw() {
	ffi.FlushBatchDraw()
}

// FlushBatchDrawRect presents one sub-rectangle.
func (w *Window) FlushBatchDrawRect(left, top, right, bottom int32) {
	ffi.FlushBatchDrawRect(left, top, right, bottom)
}

// EndBatchDraw presents pending drawing and leaves batch mode.
func (w *Window) EndBatchDraw() {
	ffi.EndBatchDraw()
}

// EndBatchDrawRect presents one sub-rectangle and leaves batch mode.
func (w *Window) EndBatchDrawRect(left, top, right, bottom int32) {
	ffi.EndBatchDrawRect(left, top, right, bottom)
}
