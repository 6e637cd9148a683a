package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Message is the decoded form of one input event.
// This is a re-export of ffi.Message for consumer convenience.
type Message = ffi.Message

// MessageKind identifies which payload variant of a Message is set.
type MessageKind = ffi.MessageKind

// MessageFilter is a bitmask of message classes.
type MessageFilter = ffi.MessageFilter

// MessageID is the host's native message number.
type MessageID = ffi.MessageID

// Payload variants.
type (
	MouseMessage  = ffi.MouseMessage
	KeyMessage    = ffi.KeyMessage
	CharMessage   = ffi.CharMessage
	WindowMessage = ffi.WindowMessage
)

// Filter classes.
const (
	FilterMouse  = ffi.FilterMouse
	FilterKey    = ffi.FilterKey
	FilterChar   = ffi.FilterChar
	FilterWindow = ffi.FilterWindow
	FilterAll    = ffi.FilterAll
)

// Payload kinds.
const (
	KindMouse  = ffi.KindMouse
	KindKey    = ffi.KindKey
	KindChar   = ffi.KindChar
	KindWindow = ffi.KindWindow
)

// Message numbers.
const (
	MsgMove     = ffi.MsgMove
	MsgSize     = ffi.MsgSize
	MsgActivate = ffi.MsgActivate

	MsgKeyDown = ffi.MsgKeyDown
	MsgKeyUp   = ffi.MsgKeyUp
	MsgChar    = ffi.MsgChar

	MsgMouseMove     = ffi.MsgMouseMove
	MsgLButtonDown   = ffi.MsgLButtonDown
	MsgLButtonUp     = ffi.MsgLButtonUp
	MsgLButtonDblClk = ffi.MsgLButtonDblClk
	MsgRButtonDown   = ffi.MsgRButtonDown
	MsgRButtonUp     = ffi.MsgRButtonUp
	MsgRButtonDblClk = ffi.MsgRButtonDblClk
	MsgMButtonDown   = ffi.MsgMButtonDown
	MsgMButtonUp     = ffi.MsgMButtonUp
	MsgMButtonDblClk = ffi.MsgMButtonDblClk
	MsgMouseWheel    = ffi.MsgMouseWheel
)

// GetMessage fetches the next event matching filter, blocking the
// calling goroutine until one arrives. There is no timeout and no
// cancellation; an event loop that must stop should use PeekMessage.
func (w *Window) GetMessage(filter MessageFilter) (Message, error) {
	return ffi.GetMessage(filter)
}

// PeekMessage returns the next matching event without blocking. The
// second result is false when no matching event is queued. With
// remove set, the returned event is dequeued; otherwise a later call
// sees it again.
func (w *Window) PeekMessage(filter MessageFilter, remove bool) (Message, bool, error) {
	return ffi.PeekMessage(filter, remove)
}

// FlushMessage discards queued events matching filter, preserving
// the order of the rest.
func (w *Window) FlushMessage(filter MessageFilter) error {
	return ffi.FlushMessage(filter)
}

// SetCapture directs mouse input to the window even when the pointer
// leaves it.
func (w *Window) SetCapture() error {
	return ffi.SetCapture()
}

// ReleaseCapture undoes SetCapture.
func (w *Window) ReleaseCapture() error {
	return ffi.ReleaseCapture()
}
