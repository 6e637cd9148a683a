package easyx

import "github.com/easyx-go/easyx/internal/ffi"

// Image wraps a host-owned pixel buffer. Each image must be released
// exactly once with Destroy; the caller sequences destruction.
// This is a re-export of ffi.Image for consumer convenience.
type Image = ffi.Image

// Ternary raster operations for image blits.
const (
	RopSrcCopy    = ffi.RopSrcCopy
	RopSrcPaint   = ffi.RopSrcPaint
	RopSrcAnd     = ffi.RopSrcAnd
	RopSrcInvert  = ffi.RopSrcInvert
	RopSrcErase   = ffi.RopSrcErase
	RopNotSrcCopy = ffi.RopNotSrcCopy
	RopMergePaint = ffi.RopMergePaint
	RopPatCopy    = ffi.RopPatCopy
	RopPatPaint   = ffi.RopPatPaint
	RopPatInvert  = ffi.RopPatInvert
	RopDstInvert  = ffi.RopDstInvert
	RopBlackness  = ffi.RopBlackness
	RopWhiteness  = ffi.RopWhiteness
)

var (
	// ErrLoadImage reports a failed file or resource decode.
	ErrLoadImage = ffi.ErrLoadImage

	// ErrImageDestroyed reports a call on an image whose storage was
	// already released.
	ErrImageDestroyed = ffi.ErrImageDestroyed
)

// NewImage allocates a blank image of the given size.
func NewImage(width, height int32) (*Image, error) {
	return ffi.CreateImage(width, height)
}

// LoadImage allocates an image and fills it from an image file.
func LoadImage(path string, width, height int32, resize bool) (*Image, error) {
	return ffi.LoadImage(path, width, height, resize)
}

// GetImage captures a region of the drawing surface into img.
func (w *Window) GetImage(img *Image, srcX, srcY, srcWidth, srcHeight int32) error {
	return img.GetImage(srcX, srcY, srcWidth, srcHeight)
}

// PutImage blits the whole image onto the drawing surface.
func (w *Window) PutImage(dstX, dstY int32, src *Image, rop uint32) {
	ffi.PutImage(dstX, dstY, src, rop)
}

// PutImagePart blits a sub-rectangle of src.
func (w *Window) PutImagePart(dstX, dstY, dstWidth, dstHeight int32, src *Image, srcX, srcY int32, rop uint32) {
	ffi.PutImagePart(dstX, dstY, dstWidth, dstHeight, src, srcX, srcY, rop)
}

// Resize resizes the window drawing surface.
func (w *Window) Resize(width, height int32) {
	ffi.ResizeDevice(nil, width, height)
}

// WorkingImage reports the surface drawing currently targets. A nil
// result means the window surface. Ownership does not transfer.
func (w *Window) WorkingImage() *Image {
	return ffi.WorkingImage()
}

// SetWorkingImage redirects drawing to img, or back to the window
// surface when img is nil. Ownership does not transfer.
func (w *Window) SetWorkingImage(img *Image) {
	ffi.SetWorkingImage(img)
}
