package ffi

import (
	"strings"
	"testing"
)

func TestLogFontRoundTrip(t *testing.T) {
	in := LogFont{
		Height:    24,
		Width:     0,
		Weight:    WeightBold,
		Italic:    true,
		StrikeOut: false,
		CharSet:   1,
		FaceName:  "Consolas",
	}

	c := in.toC()
	out := logFontFromC(&c)
	if out != in {
		t.Errorf("round trip changed record:\n in  %+v\n out %+v", in, out)
	}
}

func TestLogFontFaceNameTruncation(t *testing.T) {
	long := strings.Repeat("x", faceNameUnits+10)
	f := LogFont{FaceName: long}

	c := f.toC()
	if c.FaceName[faceNameUnits-1] != 0 {
		t.Fatal("face name not NUL-terminated at capacity")
	}
	got := logFontFromC(&c).FaceName
	if want := long[:faceNameUnits-1]; got != want {
		t.Errorf("face name = %q (len %d), want %q", got, len(got), want)
	}
}
