package ffi

import "runtime"

// InputBox shows a modal text-entry dialog and returns the entered
// text. maxLen bounds the result in code units, terminator included;
// longer input is truncated by the host. ok is false when the dialog
// was cancelled. Zero width and height pick the host's default dialog
// size; onlyOK hides the cancel button.
func InputBox(prompt, title, def string, maxLen, width, height int32, onlyOK bool) (text string, ok bool, err error) {
	if err := ensureLoaded(); err != nil {
		return "", false, err
	}
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]uint16, maxLen)
	wp := wideString(prompt)
	wt := wideString(title)
	wd := wideString(def)
	res := fnInputBox(widePtr(buf), maxLen, widePtr(wp), widePtr(wt), widePtr(wd), width, height, int32(b2i(onlyOK)))
	runtime.KeepAlive(wp)
	runtime.KeepAlive(wt)
	runtime.KeepAlive(wd)
	runtime.KeepAlive(buf)
	if res == 0 {
		return "", false, nil
	}
	return goStringFromWide(buf), true, nil
}
