package ffi

import (
	"testing"
	"unsafe"
)

// The raw structs must match the host's C layouts byte for byte.
func TestCStructSizes(t *testing.T) {
	cases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"ExMessageC", unsafe.Sizeof(ExMessageC{}), 24},
		{"MouseMsgC", unsafe.Sizeof(MouseMsgC{}), 16},
		{"logFontC", unsafe.Sizeof(logFontC{}), 92},
		{"Point", unsafe.Sizeof(Point{}), 8},
		{"Rect", unsafe.Sizeof(Rect{}), 16},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("sizeof(%s) = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestMouseMsgFieldOffsets(t *testing.T) {
	var m MouseMsgC
	base := uintptr(unsafe.Pointer(&m))
	if off := uintptr(unsafe.Pointer(&m.X)) - base; off != 10 {
		t.Errorf("offsetof(X) = %d, want 10", off)
	}
	if off := uintptr(unsafe.Pointer(&m.Wheel)) - base; off != 14 {
		t.Errorf("offsetof(Wheel) = %d, want 14", off)
	}
}

func TestLogFontFaceNameOffset(t *testing.T) {
	var f logFontC
	base := uintptr(unsafe.Pointer(&f))
	if off := uintptr(unsafe.Pointer(&f.FaceName)) - base; off != 28 {
		t.Errorf("offsetof(FaceName) = %d, want 28", off)
	}
}
