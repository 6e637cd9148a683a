package ffi

import "testing"

func TestRGBPacking(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 0xFF, 0xFF, 0xFF, White},
		{"red", 0xAA, 0, 0, Red},
		{"blue", 0, 0, 0xAA, Blue},
		{"yellow", 0xFF, 0xFF, 0x55, Yellow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := RGB(tc.r, tc.g, tc.b)
			if c != tc.want {
				t.Fatalf("RGB(%d, %d, %d) = %#06x, want %#06x", tc.r, tc.g, tc.b, uint32(c), uint32(tc.want))
			}
			if c.R() != tc.r || c.G() != tc.g || c.B() != tc.b {
				t.Errorf("unpacked = (%d, %d, %d)", c.R(), c.G(), c.B())
			}
		})
	}
}
