package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale returns a copy of src resized to width x height.
// Upscaling uses nearest neighbour to keep hard pixel edges; downscaling
// uses an approximate bilinear filter.
func Scale(src *ImageBuf, width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width == src.width && height == src.height {
		return src.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	var scaler draw.Interpolator = draw.ApproxBiLinear
	if width >= src.width && height >= src.height {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), src.ToStdImage(), image.Rect(0, 0, src.width, src.height), draw.Src, nil)
	return FromStdImage(dst), nil
}

// ScaleRatio resizes src by num/den in both dimensions, never below 1x1.
// A ratio of 1 returns src itself.
func ScaleRatio(src *ImageBuf, num, den int) (*ImageBuf, error) {
	if num <= 0 || den <= 0 {
		return nil, ErrInvalidDimensions
	}
	if num == den {
		return src, nil
	}
	return Scale(src, max(src.width*num/den, 1), max(src.height*num/den, 1))
}

// FlipHorizontal mirrors b in place around its vertical axis.
func FlipHorizontal(b *ImageBuf) {
	for y := range b.height {
		row := b.Row(y)
		for l, r := 0, b.width-1; l < r; l, r = l+1, r-1 {
			lp, rp := row[l*4:l*4+4], row[r*4:r*4+4]
			for i := 0; i < 4; i++ {
				lp[i], rp[i] = rp[i], lp[i]
			}
		}
	}
}
