package ffi

import (
	"encoding/binary"
	"runtime"
	"unsafe"
)

// MessageFilter is a bitmask of message classes for fetch, peek and
// flush. Each class occupies one bit so filters compose with |.
type MessageFilter uint8

const (
	FilterMouse  MessageFilter = 1 << 0
	FilterKey    MessageFilter = 1 << 1
	FilterChar   MessageFilter = 1 << 2
	FilterWindow MessageFilter = 1 << 3
	FilterAll    MessageFilter = 0xFF
)

// MessageID is the host's native message number.
type MessageID uint16

const (
	MsgMove     MessageID = 0x0003
	MsgSize     MessageID = 0x0005
	MsgActivate MessageID = 0x0006

	MsgKeyDown MessageID = 0x0100
	MsgKeyUp   MessageID = 0x0101
	MsgChar    MessageID = 0x0102

	MsgMouseMove     MessageID = 0x0200
	MsgLButtonDown   MessageID = 0x0201
	MsgLButtonUp     MessageID = 0x0202
	MsgLButtonDblClk MessageID = 0x0203
	MsgRButtonDown   MessageID = 0x0204
	MsgRButtonUp     MessageID = 0x0205
	MsgRButtonDblClk MessageID = 0x0206
	MsgMButtonDown   MessageID = 0x0207
	MsgMButtonUp     MessageID = 0x0208
	MsgMButtonDblClk MessageID = 0x0209
	MsgMouseWheel    MessageID = 0x020A
)

// MessageKind identifies which payload variant of a Message is set.
// Kind values equal the corresponding filter bit, so membership in a
// filter is kind&filter != 0.
type MessageKind uint8

const (
	KindMouse  = MessageKind(FilterMouse)
	KindKey    = MessageKind(FilterKey)
	KindChar   = MessageKind(FilterChar)
	KindWindow = MessageKind(FilterWindow)
)

// MouseMessage carries pointer position, button and modifier state.
type MouseMessage struct {
	Ctrl    bool
	Shift   bool
	LButton bool
	MButton bool
	RButton bool
	X       int16
	Y       int16
	Wheel   int16
}

// KeyMessage carries one key transition.
type KeyMessage struct {
	VKCode   uint8
	ScanCode uint8
	Extended bool
	PrevDown bool
}

// CharMessage carries one translated character code unit.
type CharMessage struct {
	Char uint16
}

// WindowMessage carries the two native-width parameters of a window
// message; their meaning depends on the message ID.
type WindowMessage struct {
	WParam uintptr
	LParam uintptr
}

// Message is the decoded form of one host event. Exactly one of the
// four payload fields is non-nil, selected by Kind.
type Message struct {
	ID     MessageID
	Kind   MessageKind
	Mouse  *MouseMessage
	Key    *KeyMessage
	Char   *CharMessage
	Window *WindowMessage
}

// ExMessageC matches the C struct layout of the host's event record.
// The payload region overlays the message-specific variant; the WParam
// member forces 8-byte alignment, so the union starts at offset 8.
type ExMessageC struct {
	Message uint16
	_       [6]byte // padding
	Data    [16]byte
}

// Mouse payload: five flag bits in the first byte, then three shorts.
const (
	mouseFlagCtrl    = 1 << 0
	mouseFlagShift   = 1 << 1
	mouseFlagLButton = 1 << 2
	mouseFlagMButton = 1 << 3
	mouseFlagRButton = 1 << 4

	keyFlagExtended = 1 << 0
	keyFlagPrevDown = 1 << 1
)

// decodeMessage unpacks a raw host event into the variant type. A
// message number outside the known set keeps its raw parameters as a
// window payload so nothing is dropped.
func decodeMessage(c *ExMessageC) Message {
	m := Message{ID: MessageID(c.Message)}

	switch m.ID {
	case MsgMouseMove, MsgMouseWheel,
		MsgLButtonDown, MsgLButtonUp, MsgLButtonDblClk,
		MsgMButtonDown, MsgMButtonUp, MsgMButtonDblClk,
		MsgRButtonDown, MsgRButtonUp, MsgRButtonDblClk:
		flags := c.Data[0]
		m.Kind = KindMouse
		m.Mouse = &MouseMessage{
			Ctrl:    flags&mouseFlagCtrl != 0,
			Shift:   flags&mouseFlagShift != 0,
			LButton: flags&mouseFlagLButton != 0,
			MButton: flags&mouseFlagMButton != 0,
			RButton: flags&mouseFlagRButton != 0,
			X:       int16(binary.LittleEndian.Uint16(c.Data[2:4])),
			Y:       int16(binary.LittleEndian.Uint16(c.Data[4:6])),
			Wheel:   int16(binary.LittleEndian.Uint16(c.Data[6:8])),
		}

	case MsgKeyDown, MsgKeyUp:
		flags := c.Data[2]
		m.Kind = KindKey
		m.Key = &KeyMessage{
			VKCode:   c.Data[0],
			ScanCode: c.Data[1],
			Extended: flags&keyFlagExtended != 0,
			PrevDown: flags&keyFlagPrevDown != 0,
		}

	case MsgChar:
		m.Kind = KindChar
		m.Char = &CharMessage{Char: binary.LittleEndian.Uint16(c.Data[0:2])}

	default:
		m.Kind = KindWindow
		m.Window = &WindowMessage{
			WParam: uintptr(binary.LittleEndian.Uint64(c.Data[0:8])),
			LParam: uintptr(binary.LittleEndian.Uint64(c.Data[8:16])),
		}
	}

	return m
}

// GetMessage fetches the next event matching filter, blocking the
// calling goroutine until one arrives. There is no timeout.
func GetMessage(filter MessageFilter) (Message, error) {
	if err := ensureLoaded(); err != nil {
		return Message{}, err
	}
	var c ExMessageC
	fnGetMessage(uintptr(unsafe.Pointer(&c)), uint8(filter))
	runtime.KeepAlive(&c)
	return decodeMessage(&c), nil
}

// PeekMessage returns the next matching event without blocking. The
// second result is false when the queue holds no matching event. With
// remove set, the returned event is dequeued; otherwise it stays.
func PeekMessage(filter MessageFilter, remove bool) (Message, bool, error) {
	if err := ensureLoaded(); err != nil {
		return Message{}, false, err
	}
	var c ExMessageC
	removeFlag := int32(0)
	if remove {
		removeFlag = 1
	}
	found := fnPeekMessage(uintptr(unsafe.Pointer(&c)), uint8(filter), removeFlag)
	runtime.KeepAlive(&c)
	if found == 0 {
		return Message{}, false, nil
	}
	return decodeMessage(&c), true, nil
}

// FlushMessage discards queued events matching filter.
func FlushMessage(filter MessageFilter) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	fnFlushMessage(uint8(filter))
	return nil
}

// SetCapture directs subsequent mouse input to the window even when
// the pointer leaves it.
func SetCapture() error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	fnSetCapture()
	return nil
}

// ReleaseCapture undoes SetCapture.
func ReleaseCapture() error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	fnReleaseCapture()
	return nil
}
