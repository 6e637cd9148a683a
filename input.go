package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// InputBoxOptions configures the modal text-entry dialog. The zero
// value gives the host's default size with an OK and a cancel button
// and room for 255 characters.
type InputBoxOptions struct {
	Title   string
	Default string
	MaxLen  int32
	Width   int32
	Height  int32
	OnlyOK  bool
}

// InputBox shows a modal text-entry dialog and returns the entered
// text. ok is false when the dialog was cancelled.
func (w *Window) InputBox(prompt string, opts InputBoxOptions) (text string, ok bool, err error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 256
	}
	return ffi.InputBox(prompt, opts.Title, opts.Default, maxLen, opts.Width, opts.Height, opts.OnlyOK)
}
