// Package image provides the pixel surfaces used by the transition engine.
//
// Every surface is 8-bit straight-alpha RGBA, 4 bytes per pixel, laid out row
// by row with an explicit stride. ImageBuf is the bounds-checked 2D view over
// such memory: callers walk rows through RowSpan instead of doing pitch
// arithmetic themselves, and every accessor clips instead of reading out of
// bounds.
package image

import (
	"errors"
	"image/color"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a 2D view over RGBA8 pixel memory.
//
// ImageBuf stores pixel data in a contiguous byte slice with a stride that
// may exceed width*4. Sub-images share memory with their parent.
//
// Thread safety: ImageBuf is not synchronized. The transition engine owns
// its frame buffers exclusively while a transition runs.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a zeroed (transparent black) image buffer.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// MustNew is like NewImageBuf but panics on invalid dimensions.
// Intended for fixed sizes known to be valid.
func MustNew(width, height int) *ImageBuf {
	b, err := NewImageBuf(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
// Stride must be at least width*4.
func FromRaw(data []byte, width, height, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*BytesPerPixel {
		return nil, ErrInvalidStride
	}
	required := (height-1)*stride + width*BytesPerPixel
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Clone creates a deep, tightly packed copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	c := MustNew(b.width, b.height)
	for y := range b.height {
		copy(c.Row(y), b.Row(y))
	}
	return c
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Bounds returns the full image rectangle, anchored at the origin.
func (b *ImageBuf) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// Row returns the width*4 bytes of row y, or nil if y is out of bounds.
func (b *ImageBuf) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// RowSpan returns the bytes of n pixels of row y starting at column x.
// The span is clipped to the image; nil is returned when nothing remains.
func (b *ImageBuf) RowSpan(y, x, n int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	if x < 0 {
		n += x
		x = 0
	}
	if x+n > b.width {
		n = b.width - x
	}
	if n <= 0 {
		return nil
	}
	start := y*b.stride + x*BytesPerPixel
	return b.data[start : start+n*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[off : off+4]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the color at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	p := b.data[off : off+4]
	p[0], p[1], p[2], p[3] = r, g, bl, a
	return nil
}

// Clear sets all pixels to zero (transparent black).
func (b *ImageBuf) Clear() {
	for y := range b.height {
		clear(b.Row(y))
	}
}

// Fill sets all pixels to the given color.
func (b *ImageBuf) Fill(c color.NRGBA) {
	b.FillRect(b.Bounds(), c)
}

// FillRect sets the pixels of r (clipped to the image) to the given color.
func (b *ImageBuf) FillRect(r Rect, c color.NRGBA) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	first := b.RowSpan(r.Y, r.X, r.Width)
	for i := 0; i < len(first); i += BytesPerPixel {
		first[i], first[i+1], first[i+2], first[i+3] = c.R, c.G, c.B, c.A
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		copy(b.RowSpan(y, r.X, r.Width), first)
	}
}

// SubImage returns a view into a rectangular region of the image.
// The region is clipped to the image; nil is returned if nothing remains.
// The returned ImageBuf shares the underlying data with the original.
func (b *ImageBuf) SubImage(r Rect) *ImageBuf {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return nil
	}
	offset := r.Y*b.stride + r.X*BytesPerPixel
	end := (r.Bottom()-1)*b.stride + r.Right()*BytesPerPixel
	return &ImageBuf{
		data:   b.data[offset:end],
		width:  r.Width,
		height: r.Height,
		stride: b.stride,
	}
}

// CopyRect copies the srcRect region of src to (dstX, dstY) in b.
//
// Both rectangles are clipped: the destination to b, the source to src, and
// the copied size shrinks to whatever survives both. Zero-area results are
// a no-op. Overlapping copies within the same buffer are handled by walking
// rows in the safe direction.
func (b *ImageBuf) CopyRect(src *ImageBuf, srcRect Rect, dstX, dstY int) {
	if src == nil {
		return
	}
	sr, dx, dy := ClipCopy(b.Bounds(), src.Bounds(), srcRect, dstX, dstY)
	if sr.Empty() {
		return
	}
	if src == b && dy > sr.Y {
		for y := sr.Height - 1; y >= 0; y-- {
			copy(b.RowSpan(dy+y, dx, sr.Width), src.RowSpan(sr.Y+y, sr.X, sr.Width))
		}
		return
	}
	for y := 0; y < sr.Height; y++ {
		copy(b.RowSpan(dy+y, dx, sr.Width), src.RowSpan(sr.Y+y, sr.X, sr.Width))
	}
}

// ClipCopy clips a copy of srcRect (from a surface with bounds srcBounds)
// to (dstX, dstY) on a surface with bounds dstBounds. It returns the surviving
// source rectangle and its destination origin. An empty result means nothing
// is copied.
func ClipCopy(dstBounds, srcBounds, srcRect Rect, dstX, dstY int) (Rect, int, int) {
	// Clip the source against its own surface, shifting the destination along.
	clipped := srcRect.Intersect(srcBounds)
	if clipped.Empty() {
		return Rect{}, 0, 0
	}
	dstX += clipped.X - srcRect.X
	dstY += clipped.Y - srcRect.Y

	dst := Rect{X: dstX, Y: dstY, Width: clipped.Width, Height: clipped.Height}
	vis := dst.Intersect(dstBounds)
	if vis.Empty() {
		return Rect{}, 0, 0
	}
	clipped.X += vis.X - dst.X
	clipped.Y += vis.Y - dst.Y
	clipped.Width = vis.Width
	clipped.Height = vis.Height
	return clipped, vis.X, vis.Y
}

// Equal reports whether both buffers have the same size and pixels.
func (b *ImageBuf) Equal(o *ImageBuf) bool {
	if o == nil || b.width != o.width || b.height != o.height {
		return false
	}
	return b.EqualRect(o, b.Bounds())
}

// EqualRect reports whether the pixels of r are identical in both buffers.
// r is clipped to both images.
func (b *ImageBuf) EqualRect(o *ImageBuf, r Rect) bool {
	if o == nil {
		return false
	}
	r = r.Intersect(b.Bounds()).Intersect(o.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		p, q := b.RowSpan(y, r.X, r.Width), o.RowSpan(y, r.X, r.Width)
		for i := range p {
			if p[i] != q[i] {
				return false
			}
		}
	}
	return true
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
