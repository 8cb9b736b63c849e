package kernel

import "github.com/gogpu/gg-transit/internal/image"

// Downscale4x writes a quarter-size copy of srcRect to (dstX, dstY) in dst.
// Each output channel is the truncated average of a 4x4 source block.
// Partial blocks at the right and bottom edges are dropped.
func Downscale4x(dst, src *image.ImageBuf, srcRect image.Rect, dstX, dstY int) {
	srcRect = srcRect.Intersect(src.Bounds())
	w, h := srcRect.Width/4, srcRect.Height/4
	out := image.Rect{X: dstX, Y: dstY, Width: w, Height: h}.Intersect(dst.Bounds())
	for oy := out.Y; oy < out.Bottom(); oy++ {
		sy := srcRect.Y + (oy-dstY)*4
		drow := dst.RowSpan(oy, out.X, out.Width)
		for ox := 0; ox < out.Width; ox++ {
			sx := srcRect.X + (out.X-dstX+ox)*4
			var sum [4]uint32
			for j := 0; j < 4; j++ {
				s := src.RowSpan(sy+j, sx, 4)
				for i := 0; i < 16; i++ {
					sum[i&3] += uint32(s[i])
				}
			}
			for c := 0; c < 4; c++ {
				drow[ox*4+c] = byte(sum[c] >> 4)
			}
		}
	}
}

// Halve returns a half-size copy of src. Each output pixel is the mean of
// the horizontal means of two source rows, computed with k.Mean. A trailing
// odd row or column is dropped.
func Halve(k Kernels, src *image.ImageBuf) (*image.ImageBuf, error) {
	w, h := src.Width()/2, src.Height()/2
	dst, err := image.NewImageBuf(w, h)
	if err != nil {
		return nil, err
	}
	even := make([]byte, w*4)
	odd := make([]byte, w*4)
	top := make([]byte, w*4)
	for y := range h {
		for i, r := range [2]int{2 * y, 2*y + 1} {
			row := src.Row(r)
			for x := range w {
				copy(even[x*4:x*4+4], row[x*8:x*8+4])
				copy(odd[x*4:x*4+4], row[x*8+4:x*8+8])
			}
			if i == 0 {
				k.Mean(top, even, odd)
			} else {
				k.Mean(even, even, odd)
			}
		}
		k.Mean(dst.Row(y), top, even)
	}
	return dst, nil
}
