package ffi

import "testing"

func TestWideStringRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "hello"},
		{"latin", "héllo wörld"},
		{"cjk", "你好，世界"},
		{"astral", "a😀b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := wideString(tc.in)
			if len(w) == 0 {
				t.Fatal("wideString returned empty slice")
			}
			if w[len(w)-1] != 0 {
				t.Fatalf("missing NUL terminator: %v", w)
			}
			got := goStringFromWide(w)
			if got != tc.in {
				t.Errorf("round trip = %q, want %q", got, tc.in)
			}
		})
	}
}

func TestWideStringAstralUsesSurrogatePair(t *testing.T) {
	w := wideString("😀")
	// surrogate pair plus terminator
	if len(w) != 3 {
		t.Fatalf("len = %d, want 3", len(w))
	}
	if w[0] != 0xD83D || w[1] != 0xDE00 {
		t.Errorf("units = %04X %04X, want D83D DE00", w[0], w[1])
	}
}

func TestGoStringFromWideStopsAtNUL(t *testing.T) {
	units := []uint16{'a', 'b', 0, 'c', 'd'}
	if got := goStringFromWide(units); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestGoStringFromWideUnterminated(t *testing.T) {
	units := []uint16{'x', 'y', 'z'}
	if got := goStringFromWide(units); got != "xyz" {
		t.Errorf("got %q, want %q", got, "xyz")
	}
}

func TestCopyWideTruncated(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		dst := make([]uint16, 8)
		copyWideTruncated(dst, "abc")
		if got := goStringFromWide(dst); got != "abc" {
			t.Errorf("got %q, want %q", got, "abc")
		}
	})

	t.Run("truncates", func(t *testing.T) {
		dst := make([]uint16, 4)
		copyWideTruncated(dst, "abcdef")
		if dst[len(dst)-1] != 0 {
			t.Fatalf("missing terminator: %v", dst)
		}
		if got := goStringFromWide(dst); got != "abc" {
			t.Errorf("got %q, want %q", got, "abc")
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		copyWideTruncated(nil, "abc")
	})
}

func TestWidePtr(t *testing.T) {
	if widePtr(nil) != 0 {
		t.Error("nil slice should map to null pointer")
	}
	w := wideString("x")
	if widePtr(w) == 0 {
		t.Error("non-empty slice should map to non-null pointer")
	}
}
