package ffi

import (
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// The host is the wide-character build: every string parameter crosses
// as a NUL-terminated little-endian UTF-16 code-unit sequence. A string
// that cannot be encoded becomes the empty string rather than an error,
// matching the host's own treatment of unconvertible text.

func utf16Codec() encoding.Encoding {
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

// wideString encodes s as UTF-16LE code units with a trailing NUL.
// The result always holds at least the terminator.
func wideString(s string) []uint16 {
	if s == "" {
		return []uint16{0}
	}
	b, err := utf16Codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []uint16{0}
	}
	out := make([]uint16, len(b)/2+1)
	for i := 0; i+1 < len(b); i += 2 {
		out[i/2] = uint16(b[i]) | uint16(b[i+1])<<8
	}
	return out
}

// widePtr returns the address of the first code unit. Callers keep the
// slice alive across the host call with runtime.KeepAlive.
func widePtr(w []uint16) uintptr {
	if len(w) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&w[0]))
}

// goStringFromWide decodes units up to the first NUL or the end of the
// slice, whichever comes first.
func goStringFromWide(units []uint16) string {
	n := 0
	for n < len(units) && units[n] != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	b := make([]byte, n*2)
	for i, u := range units[:n] {
		b[i*2] = byte(u)
		b[i*2+1] = byte(u >> 8)
	}
	out, err := utf16Codec().NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// goStringFromPtr decodes a host-owned wide buffer of at most maxUnits
// code units. A nil pointer yields the empty string.
func goStringFromPtr(ptr uintptr, maxUnits int) string {
	if ptr == 0 || maxUnits <= 0 {
		return ""
	}
	units := unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), maxUnits)
	return goStringFromWide(units)
}

// copyWideTruncated writes s into dst, truncating to capacity. dst is
// always NUL-terminated afterwards.
func copyWideTruncated(dst []uint16, s string) {
	if len(dst) == 0 {
		return
	}
	n := copy(dst, wideString(s))
	if n == len(dst) {
		dst[len(dst)-1] = 0
	}
}
