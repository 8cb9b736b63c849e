package kernel

import "github.com/gogpu/gg-transit/internal/image"

// Rect helpers apply a primitive row by row over image regions. Regions are
// clipped to every surface involved; an empty clip is a no-op.

// sameRect clips r to the bounds of every buffer.
func sameRect(r image.Rect, bufs ...*image.ImageBuf) image.Rect {
	for _, b := range bufs {
		r = r.Intersect(b.Bounds())
	}
	return r
}

// MeanRect stores the mean of a and b over r into dst.
// All three buffers are addressed with the same coordinates.
func MeanRect(k Kernels, dst, a, b *image.ImageBuf, r image.Rect) {
	r = sameRect(r, dst, a, b)
	for y := r.Y; y < r.Bottom(); y++ {
		k.Mean(dst.RowSpan(y, r.X, r.Width), a.RowSpan(y, r.X, r.Width), b.RowSpan(y, r.X, r.Width))
	}
}

// AddRect adds srcRect of src onto dst at (dstX, dstY) with saturation.
func AddRect(k Kernels, dst, src *image.ImageBuf, srcRect image.Rect, dstX, dstY int) {
	sr, dx, dy := image.ClipCopy(dst.Bounds(), src.Bounds(), srcRect, dstX, dstY)
	for y := 0; y < sr.Height; y++ {
		k.AddTo(dst.RowSpan(dy+y, dx, sr.Width), src.RowSpan(sr.Y+y, sr.X, sr.Width))
	}
}

// SubRect subtracts srcRect of src from dst at (dstX, dstY) with saturation.
func SubRect(k Kernels, dst, src *image.ImageBuf, srcRect image.Rect, dstX, dstY int) {
	sr, dx, dy := image.ClipCopy(dst.Bounds(), src.Bounds(), srcRect, dstX, dstY)
	for y := 0; y < sr.Height; y++ {
		k.SubFrom(dst.RowSpan(dy+y, dx, sr.Width), src.RowSpan(sr.Y+y, sr.X, sr.Width))
	}
}

// Plane is a one-byte-per-pixel alpha plane addressed like the image it
// was taken from.
type Plane struct {
	Data   []byte
	Stride int
}

// Row returns n bytes of row y starting at column x.
func (p Plane) Row(y, x, n int) []byte {
	o := y*p.Stride + x
	return p.Data[o : o+n]
}

// AlphaPlane extracts the alpha channel of b.
func AlphaPlane(b *image.ImageBuf) Plane {
	w, h := b.Width(), b.Height()
	p := Plane{Data: make([]byte, w*h), Stride: w}
	for y := range h {
		row := b.Row(y)
		out := p.Data[y*w : (y+1)*w]
		for x := range out {
			out[x] = row[x*4+3]
		}
	}
	return p
}

// BlendRect blends srcRect of src onto dst at (dstX, dstY) by alpha/255.
// A non-nil plane (addressed in src coordinates) scales alpha per pixel.
func BlendRect(k Kernels, dst, src *image.ImageBuf, plane *Plane, srcRect image.Rect, dstX, dstY int, alpha uint8) {
	sr, dx, dy := image.ClipCopy(dst.Bounds(), src.Bounds(), srcRect, dstX, dstY)
	for y := 0; y < sr.Height; y++ {
		var row []byte
		if plane != nil {
			row = plane.Row(sr.Y+y, sr.X, sr.Width)
		}
		k.Blend(dst.RowSpan(dy+y, dx, sr.Width), src.RowSpan(sr.Y+y, sr.X, sr.Width), row, alpha)
	}
}

// MaskBlendRect mask-blends s1 toward s2 over r into dst. A mask smaller
// than the region is tiled from its top-left corner.
func MaskBlendRect(k Kernels, dst, s1, s2, mask *image.ImageBuf, r image.Rect, threshold uint32) {
	r = sameRect(r, dst, s1, s2)
	if r.Empty() {
		return
	}
	mw, mh := mask.Width(), mask.Height()
	var tile []byte
	if r.Right() > mw {
		tile = make([]byte, r.Width*image.BytesPerPixel)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		mrow := mask.Row(y % mh)
		if tile != nil {
			for x := 0; x < r.Width; x++ {
				o := ((r.X + x) % mw) * image.BytesPerPixel
				copy(tile[x*4:x*4+4], mrow[o:o+4])
			}
			mrow = tile
		} else {
			mrow = mrow[r.X*image.BytesPerPixel : r.Right()*image.BytesPerPixel]
		}
		k.MaskBlend(dst.RowSpan(y, r.X, r.Width), s1.RowSpan(y, r.X, r.Width), s2.RowSpan(y, r.X, r.Width), mrow, threshold)
	}
}

// MaskBlendConstRect blends s1 toward s2 over r into dst at a uniform level.
func MaskBlendConstRect(k Kernels, dst, s1, s2 *image.ImageBuf, r image.Rect, threshold uint32) {
	r = sameRect(r, dst, s1, s2)
	for y := r.Y; y < r.Bottom(); y++ {
		k.MaskBlendConst(dst.RowSpan(y, r.X, r.Width), s1.RowSpan(y, r.X, r.Width), s2.RowSpan(y, r.X, r.Width), threshold)
	}
}
