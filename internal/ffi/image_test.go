package ffi

import "testing"

func TestImageLifecycle(t *testing.T) {
	f := installFakeImages(t)

	img, err := CreateImage(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := img.Width(), img.Height(); w != 100 || h != 100 {
		t.Errorf("size = %dx%d, want 100x100", w, h)
	}

	buf := img.Buffer()
	if len(buf) != 100*100 {
		t.Fatalf("buffer length = %d, want %d", len(buf), 100*100)
	}
	buf[0] = 0x00FF00FF

	// Resize reallocates storage; earlier buffer slices are invalid
	// and must be re-fetched.
	if err := img.Resize(50, 200); err != nil {
		t.Fatal(err)
	}
	if w, h := img.Width(), img.Height(); w != 50 || h != 200 {
		t.Errorf("size after resize = %dx%d, want 50x200", w, h)
	}
	if got := len(img.Buffer()); got != 50*200 {
		t.Errorf("buffer length after resize = %d, want %d", got, 50*200)
	}

	img.Destroy()
	if f.destroyed != 1 {
		t.Errorf("destroy count = %d, want 1", f.destroyed)
	}
	if img.Width() != 0 || img.Height() != 0 {
		t.Error("destroyed image still reports dimensions")
	}
	if img.Buffer() != nil {
		t.Error("destroyed image still exposes a buffer")
	}

	// A second destroy is a no-op, not a second release.
	img.Destroy()
	if f.destroyed != 1 {
		t.Errorf("destroy count after repeat = %d, want 1", f.destroyed)
	}
}

func TestImageOperationsAfterDestroy(t *testing.T) {
	installFakeImages(t)

	img, err := CreateImage(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	img.Destroy()

	if err := img.Resize(20, 20); err != ErrImageDestroyed {
		t.Errorf("Resize error = %v, want ErrImageDestroyed", err)
	}
	if err := img.CopyFrom(img); err != ErrImageDestroyed {
		t.Errorf("CopyFrom error = %v, want ErrImageDestroyed", err)
	}
	if img.Handle() != 0 {
		t.Error("destroyed image keeps a live handle")
	}
}

func TestBufferIsZeroCopy(t *testing.T) {
	installFakeImages(t)

	img, err := CreateImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Destroy()

	img.Buffer()[5] = 0xDEADBEEF
	if got := img.Buffer()[5]; got != 0xDEADBEEF {
		t.Errorf("pixel = %#x, want 0xDEADBEEF", got)
	}
}
