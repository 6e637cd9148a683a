package ffi

import (
	"testing"
	"unsafe"
)

func installFakeMouseQueue(t *testing.T, msgs ...MouseMsgC) *[]MouseMsgC {
	t.Helper()
	queue := append([]MouseMsgC(nil), msgs...)

	prevInit := initialized
	prevHit := fnMouseHit
	prevGet := fnGetMouseMsg
	prevPeek := fnPeekMouseMsg
	prevFlush := fnFlushMouseMsgBuf
	initialized = true
	fnMouseHit = func() int32 {
		if len(queue) > 0 {
			return 1
		}
		return 0
	}
	fnGetMouseMsg = func(p uintptr) {
		*(*MouseMsgC)(unsafe.Pointer(p)) = queue[0]
		queue = queue[1:]
	}
	fnPeekMouseMsg = func(p uintptr, removeMsg int32) int32 {
		if len(queue) == 0 {
			return 0
		}
		*(*MouseMsgC)(unsafe.Pointer(p)) = queue[0]
		if removeMsg != 0 {
			queue = queue[1:]
		}
		return 1
	}
	fnFlushMouseMsgBuf = func() {
		queue = nil
	}
	t.Cleanup(func() {
		initialized = prevInit
		fnMouseHit = prevHit
		fnGetMouseMsg = prevGet
		fnPeekMouseMsg = prevPeek
		fnFlushMouseMsgBuf = prevFlush
	})
	return &queue
}

func TestLegacyMouseQueue(t *testing.T) {
	installFakeMouseQueue(t,
		MouseMsgC{UMsg: uint32(MsgLButtonDown), MkCtrl: 1, MkLButton: 1, X: 30, Y: 40, Wheel: 0},
		MouseMsgC{UMsg: uint32(MsgMouseMove), X: 31, Y: 41},
	)

	if !MouseHit() {
		t.Fatal("MouseHit = false with queued messages")
	}

	m, ok, err := PeekMouseMsg(false)
	if err != nil || !ok {
		t.Fatalf("peek: ok=%v err=%v", ok, err)
	}
	if m.ID != MsgLButtonDown || !m.Ctrl || !m.LButton || m.X != 30 || m.Y != 40 {
		t.Errorf("peeked = %+v", m)
	}

	got, err := GetMouseMsg()
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Errorf("fetch after non-removing peek = %+v, want %+v", got, m)
	}

	next, err := GetMouseMsg()
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != MsgMouseMove || next.X != 31 {
		t.Errorf("second fetch = %+v", next)
	}

	if MouseHit() {
		t.Error("MouseHit = true after draining")
	}
}

func TestFlushMouseMsgBuffer(t *testing.T) {
	queue := installFakeMouseQueue(t,
		MouseMsgC{UMsg: uint32(MsgMouseMove)},
		MouseMsgC{UMsg: uint32(MsgMouseWheel)},
	)

	FlushMouseMsgBuffer()
	if len(*queue) != 0 {
		t.Errorf("queue length = %d after flush", len(*queue))
	}
	if _, ok, _ := PeekMouseMsg(false); ok {
		t.Error("message still visible after flush")
	}
}
