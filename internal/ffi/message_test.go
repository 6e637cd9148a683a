package ffi

import (
	"encoding/binary"
	"testing"
	"time"
)

func mouseEventC(id MessageID, flags byte, x, y, wheel int16) ExMessageC {
	var c ExMessageC
	c.Message = uint16(id)
	c.Data[0] = flags
	binary.LittleEndian.PutUint16(c.Data[2:4], uint16(x))
	binary.LittleEndian.PutUint16(c.Data[4:6], uint16(y))
	binary.LittleEndian.PutUint16(c.Data[6:8], uint16(wheel))
	return c
}

func keyEventC(id MessageID, vk, scan, flags byte) ExMessageC {
	var c ExMessageC
	c.Message = uint16(id)
	c.Data[0] = vk
	c.Data[1] = scan
	c.Data[2] = flags
	return c
}

func charEventC(ch uint16) ExMessageC {
	var c ExMessageC
	c.Message = uint16(MsgChar)
	binary.LittleEndian.PutUint16(c.Data[0:2], ch)
	return c
}

func windowEventC(id MessageID, wParam, lParam uint64) ExMessageC {
	var c ExMessageC
	c.Message = uint16(id)
	binary.LittleEndian.PutUint64(c.Data[0:8], wParam)
	binary.LittleEndian.PutUint64(c.Data[8:16], lParam)
	return c
}

func TestDecodeMouseMessage(t *testing.T) {
	c := mouseEventC(MsgLButtonDown,
		mouseFlagCtrl|mouseFlagLButton, 120, -45, 240)

	m := decodeMessage(&c)
	if m.Kind != KindMouse || m.Mouse == nil {
		t.Fatalf("Kind = %v, Mouse = %v", m.Kind, m.Mouse)
	}
	if m.ID != MsgLButtonDown {
		t.Errorf("ID = %#04x, want %#04x", m.ID, MsgLButtonDown)
	}
	mm := m.Mouse
	if !mm.Ctrl || mm.Shift || !mm.LButton || mm.MButton || mm.RButton {
		t.Errorf("flags = %+v", mm)
	}
	if mm.X != 120 || mm.Y != -45 || mm.Wheel != 240 {
		t.Errorf("position = (%d, %d, %d), want (120, -45, 240)", mm.X, mm.Y, mm.Wheel)
	}
}

func TestDecodeKeyMessage(t *testing.T) {
	c := keyEventC(MsgKeyDown, 0x41, 0x1E, keyFlagExtended)

	m := decodeMessage(&c)
	if m.Kind != KindKey || m.Key == nil {
		t.Fatalf("Kind = %v, Key = %v", m.Kind, m.Key)
	}
	k := m.Key
	if k.VKCode != 0x41 || k.ScanCode != 0x1E {
		t.Errorf("codes = (%#02x, %#02x), want (0x41, 0x1E)", k.VKCode, k.ScanCode)
	}
	if !k.Extended || k.PrevDown {
		t.Errorf("flags = %+v", k)
	}
}

func TestDecodeCharMessage(t *testing.T) {
	c := charEventC('中')

	m := decodeMessage(&c)
	if m.Kind != KindChar || m.Char == nil {
		t.Fatalf("Kind = %v, Char = %v", m.Kind, m.Char)
	}
	if m.Char.Char != '中' {
		t.Errorf("Char = %#04x, want %#04x", m.Char.Char, '中')
	}
}

func TestDecodeWindowMessage(t *testing.T) {
	c := windowEventC(MsgSize, 2, 0x00500064)

	m := decodeMessage(&c)
	if m.Kind != KindWindow || m.Window == nil {
		t.Fatalf("Kind = %v, Window = %v", m.Kind, m.Window)
	}
	if m.Window.WParam != 2 || m.Window.LParam != 0x00500064 {
		t.Errorf("params = (%#x, %#x)", m.Window.WParam, m.Window.LParam)
	}
}

func TestDecodeUnknownKeepsRawParams(t *testing.T) {
	c := windowEventC(0x0400, 7, 9)

	m := decodeMessage(&c)
	if m.Kind != KindWindow || m.Window == nil {
		t.Fatalf("unknown message should decode as window, got %v", m.Kind)
	}
	if m.ID != 0x0400 || m.Window.WParam != 7 || m.Window.LParam != 9 {
		t.Errorf("decoded = %+v", m)
	}
}

func TestPeekWithoutRemoveLeavesQueue(t *testing.T) {
	q := installFakeQueue(t, mouseEventC(MsgMouseMove, 0, 10, 20, 0))

	first, ok, err := PeekMessage(FilterAll, false)
	if err != nil || !ok {
		t.Fatalf("first peek: ok=%v err=%v", ok, err)
	}
	second, ok, err := PeekMessage(FilterAll, false)
	if err != nil || !ok {
		t.Fatalf("second peek: ok=%v err=%v", ok, err)
	}
	if *first.Mouse != *second.Mouse || first.ID != second.ID {
		t.Errorf("peek changed queue head: %+v then %+v", first, second)
	}
	if q.len() != 1 {
		t.Errorf("queue length = %d, want 1", q.len())
	}
}

func TestPeekWithRemoveDequeues(t *testing.T) {
	q := installFakeQueue(t, charEventC('a'))

	_, ok, err := PeekMessage(FilterAll, true)
	if err != nil || !ok {
		t.Fatalf("peek: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := PeekMessage(FilterAll, false); ok {
		t.Error("event still present after removing peek")
	}
	if q.len() != 0 {
		t.Errorf("queue length = %d, want 0", q.len())
	}
}

func TestPeekHonorsFilter(t *testing.T) {
	installFakeQueue(t,
		mouseEventC(MsgMouseMove, 0, 1, 2, 0),
		charEventC('x'),
	)

	m, ok, err := PeekMessage(FilterChar, false)
	if err != nil || !ok {
		t.Fatalf("peek: ok=%v err=%v", ok, err)
	}
	if m.Kind != KindChar {
		t.Errorf("Kind = %v, want char", m.Kind)
	}
	if _, ok, _ := PeekMessage(FilterWindow, false); ok {
		t.Error("peek matched an absent class")
	}
}

func TestFlushRemovesOnlyFilteredClasses(t *testing.T) {
	installFakeQueue(t,
		mouseEventC(MsgMouseMove, 0, 1, 1, 0),
		charEventC('a'),
		mouseEventC(MsgLButtonDown, mouseFlagLButton, 2, 2, 0),
		charEventC('b'),
	)

	if err := FlushMessage(FilterMouse); err != nil {
		t.Fatal(err)
	}

	// Remaining chars keep their relative order.
	for _, want := range []uint16{'a', 'b'} {
		m, ok, err := PeekMessage(FilterAll, true)
		if err != nil || !ok {
			t.Fatalf("peek after flush: ok=%v err=%v", ok, err)
		}
		if m.Kind != KindChar || m.Char.Char != want {
			t.Errorf("got %+v, want char %q", m, want)
		}
	}
	if _, ok, _ := PeekMessage(FilterAll, false); ok {
		t.Error("queue not empty after draining")
	}
}

func TestGetMessageBlocksUntilMatch(t *testing.T) {
	q := installFakeQueue(t)

	got := make(chan Message, 1)
	go func() {
		m, err := GetMessage(FilterKey)
		if err != nil {
			t.Error(err)
		}
		got <- m
	}()

	select {
	case m := <-got:
		t.Fatalf("fetch returned with empty queue: %+v", m)
	case <-time.After(20 * time.Millisecond):
	}

	// A non-matching event must not wake the fetch.
	q.push(charEventC('z'))
	select {
	case m := <-got:
		t.Fatalf("fetch matched wrong class: %+v", m)
	case <-time.After(20 * time.Millisecond):
	}

	q.push(keyEventC(MsgKeyUp, 0x20, 0x39, 0))
	select {
	case m := <-got:
		if m.Kind != KindKey || m.Key.VKCode != 0x20 {
			t.Errorf("got %+v, want key 0x20", m)
		}
	case <-time.After(time.Second):
		t.Fatal("fetch did not return after matching event arrived")
	}

	// The non-matching char is still queued.
	if m, ok, _ := PeekMessage(FilterAll, false); !ok || m.Kind != KindChar {
		t.Errorf("char event lost: ok=%v m=%+v", ok, m)
	}
}
