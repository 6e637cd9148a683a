package ffi

// Window creation flags.
const (
	InitDefault     int32 = 0
	InitShowConsole int32 = 1
	InitNoClose     int32 = 2
	InitNoMinimize  int32 = 4
	InitDblClks     int32 = 8
)

// InitGraph creates the drawing window and returns its native handle.
func InitGraph(width, height, flags int32) (uintptr, error) {
	if err := ensureLoaded(); err != nil {
		return 0, err
	}
	return fnInitGraph(width, height, flags), nil
}

// CloseGraph destroys the drawing window.
func CloseGraph() {
	if !initialized {
		return
	}
	fnCloseGraph()
}

// Width reports the drawing surface width in pixels.
func Width() int32 {
	return fnGetWidth()
}

// Height reports the drawing surface height in pixels.
func Height() int32 {
	return fnGetHeight()
}

// HWnd returns the native window handle.
func HWnd() uintptr {
	return fnGetHWnd()
}

// Delay suspends for ms milliseconds with the host's frame-friendly
// wait.
func Delay(ms int32) {
	fnDelay(ms)
}

// versionUnits bounds the scan of the host's static version buffer.
const versionUnits = 32

// Version returns the host library version string.
func Version() string {
	if err := ensureLoaded(); err != nil {
		return ""
	}
	return goStringFromPtr(fnGetVersion(), versionUnits)
}

// BeginBatchDraw defers presentation until a flush or end call.
func BeginBatchDraw() {
	fnBeginBatchDraw()
}

// FlushBatchDraw presents everything drawn since the batch began.
func FlushBatchDraw() {
	fnFlushBatchDraw()
}

// FlushBatchDrawRect presents only the given sub-rectangle.
func FlushBatchDrawRect(left, top, right, bottom int32) {
	fnFlushBatchDrawRect(left, top, right, bottom)
}

// EndBatchDraw presents pending drawing and leaves batch mode.
func EndBatchDraw() {
	fnEndBatchDraw()
}

// EndBatchDrawRect presents the given sub-rectangle and leaves batch
// mode.
func EndBatchDrawRect(left, top, right, bottom int32) {
	fnEndBatchDrawRect(left, top, right, bottom)
}
