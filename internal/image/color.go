package image

import (
	"image"
	"image/color"
)

// nrgbaAt returns the straight-alpha color of img at (x, y).
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// Opaque is fully opaque black. Scenes clear to it before drawing, and
// shake effects fill the uncovered part of the screen with it.
var Opaque = color.NRGBA{A: 255}
