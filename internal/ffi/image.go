package ffi

import (
	"errors"
	"runtime"
	"unsafe"
)

// Ternary raster operations for image blits.
const (
	RopSrcCopy    uint32 = 0x00CC0020
	RopSrcPaint   uint32 = 0x00EE0086
	RopSrcAnd     uint32 = 0x008800C6
	RopSrcInvert  uint32 = 0x00660046
	RopSrcErase   uint32 = 0x00440328
	RopNotSrcCopy uint32 = 0x00330008
	RopMergePaint uint32 = 0x00BB0226
	RopPatCopy    uint32 = 0x00F00021
	RopPatPaint   uint32 = 0x00FB0A09
	RopPatInvert  uint32 = 0x005A0049
	RopDstInvert  uint32 = 0x00550009
	RopBlackness  uint32 = 0x00000042
	RopWhiteness  uint32 = 0x00FF0062
)

var (
	// ErrLoadImage reports a failed file or resource decode. The
	// target image is left as it was.
	ErrLoadImage = errors.New("ffi: image load failed")

	// ErrImageDestroyed reports a call on an image whose storage was
	// already released.
	ErrImageDestroyed = errors.New("ffi: image already destroyed")
)

// Image wraps a host-owned pixel buffer plus metadata. The zero value
// is not usable; construct through CreateImage or LoadImage. Every
// image must be released exactly once with Destroy; the host performs
// no use-after-destroy checking beyond the guard here.
type Image struct {
	handle uintptr
}

// CreateImage allocates a blank image of the given size.
func CreateImage(width, height int32) (*Image, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	h := fnCreateImage(width, height)
	if h == 0 {
		return nil, errors.New("ffi: image allocation failed")
	}
	return &Image{handle: h}, nil
}

// LoadImage allocates an image and fills it from an image file. With
// nonzero width or height the decoded picture is scaled; with resize
// the image dimensions follow the picture.
func LoadImage(path string, width, height int32, resize bool) (*Image, error) {
	img, err := CreateImage(1, 1)
	if err != nil {
		return nil, err
	}
	if err := img.LoadFile(path, width, height, resize); err != nil {
		img.Destroy()
		return nil, err
	}
	return img, nil
}

// Handle exposes the raw host pointer for forwarding calls.
func (img *Image) Handle() uintptr {
	if img == nil {
		return 0
	}
	return img.handle
}

// Destroy releases the host storage. Further calls on the image
// return ErrImageDestroyed where a result allows it.
func (img *Image) Destroy() {
	if img == nil || img.handle == 0 {
		return
	}
	fnDestroyImage(img.handle)
	img.handle = 0
}

// LoadFile replaces the image content from an image file. On failure
// the image is left unchanged.
func (img *Image) LoadFile(path string, width, height int32, resize bool) error {
	if img.handle == 0 {
		return ErrImageDestroyed
	}
	w := wideString(path)
	ok := fnLoadImageFile(img.handle, widePtr(w), width, height, int32(b2i(resize)))
	runtime.KeepAlive(w)
	if ok == 0 {
		return ErrLoadImage
	}
	return nil
}

// LoadResource replaces the image content from an embedded resource.
func (img *Image) LoadResource(resType, resName string, width, height int32, resize bool) error {
	if img.handle == 0 {
		return ErrImageDestroyed
	}
	wt := wideString(resType)
	wn := wideString(resName)
	ok := fnLoadImageResource(img.handle, widePtr(wt), widePtr(wn), width, height, int32(b2i(resize)))
	runtime.KeepAlive(wt)
	runtime.KeepAlive(wn)
	if ok == 0 {
		return ErrLoadImage
	}
	return nil
}

// Save writes the image to a file; the format follows the extension.
func (img *Image) Save(path string) error {
	if img.handle == 0 {
		return ErrImageDestroyed
	}
	w := wideString(path)
	fnSaveImage(widePtr(w), img.handle)
	runtime.KeepAlive(w)
	return nil
}

// Width reports the image width in pixels.
func (img *Image) Width() int32 {
	if img.handle == 0 {
		return 0
	}
	return fnImageGetWidth(img.handle)
}

// Height reports the image height in pixels.
func (img *Image) Height() int32 {
	if img.handle == 0 {
		return 0
	}
	return fnImageGetHeight(img.handle)
}

// Resize changes the image dimensions in place. Any buffer slice
// obtained earlier is invalid afterwards.
func (img *Image) Resize(width, height int32) error {
	if img.handle == 0 {
		return ErrImageDestroyed
	}
	fnImageResize(img.handle, width, height)
	return nil
}

// CopyFrom replaces the image content with a copy of src.
func (img *Image) CopyFrom(src *Image) error {
	if img.handle == 0 || src == nil || src.handle == 0 {
		return ErrImageDestroyed
	}
	fnCopyImage(img.handle, src.handle)
	return nil
}

// Buffer exposes the packed pixel storage, row-major with one uint32
// per pixel, without copying. The slice is invalidated by Resize and
// by Destroy.
func (img *Image) Buffer() []uint32 {
	if img.handle == 0 {
		return nil
	}
	p := fnGetImageBuffer(img.handle)
	if p == 0 {
		return nil
	}
	n := int(img.Width()) * int(img.Height())
	return unsafe.Slice((*uint32)(unsafe.Pointer(p)), n)
}

// HDC exposes the image's device-context handle for native interop.
func (img *Image) HDC() uintptr {
	if img.handle == 0 {
		return 0
	}
	return fnGetImageHDC(img.handle)
}

// Rotate fills the image with src rotated by radian. Uncovered areas
// take bkColor; with autoSize the image grows to fit.
func (img *Image) Rotate(src *Image, radian float64, bkColor Color, autoSize, highQuality bool) error {
	if img.handle == 0 || src == nil || src.handle == 0 {
		return ErrImageDestroyed
	}
	fnRotateImage(img.handle, src.handle, radian, uint32(bkColor), int32(b2i(autoSize)), int32(b2i(highQuality)))
	return nil
}

// GetImage captures a region of the current working surface into the
// image.
func (img *Image) GetImage(srcX, srcY, srcWidth, srcHeight int32) error {
	if img.handle == 0 {
		return ErrImageDestroyed
	}
	fnGetImage(img.handle, srcX, srcY, srcWidth, srcHeight)
	return nil
}

// PutImage blits the whole image onto the working surface with the
// given raster operation.
func PutImage(dstX, dstY int32, src *Image, rop uint32) {
	if src == nil || src.handle == 0 {
		return
	}
	fnPutImage(dstX, dstY, src.handle, rop)
}

// PutImagePart blits a sub-rectangle of src.
func PutImagePart(dstX, dstY, dstWidth, dstHeight int32, src *Image, srcX, srcY int32, rop uint32) {
	if src == nil || src.handle == 0 {
		return
	}
	fnPutImagePart(dstX, dstY, dstWidth, dstHeight, src.handle, srcX, srcY, rop)
}

// ResizeDevice resizes the drawing surface. A nil image targets the
// window surface.
func ResizeDevice(img *Image, width, height int32) {
	var h uintptr
	if img != nil {
		h = img.handle
	}
	fnResizeDevice(h, width, height)
}

// WorkingImage reports the surface drawing currently targets. A nil
// result means the window surface.
func WorkingImage() *Image {
	h := fnGetWorkingImage()
	if h == 0 {
		return nil
	}
	return &Image{handle: h}
}

// SetWorkingImage redirects drawing to img, or back to the window
// surface when img is nil. Ownership does not transfer.
func SetWorkingImage(img *Image) {
	var h uintptr
	if img != nil {
		h = img.handle
	}
	fnSetWorkingImage(h)
}
