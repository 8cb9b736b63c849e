package transit

import "github.com/gogpu/gg-transit/internal/image"

// Rect is a pixel rectangle. Empty rectangles are valid no-ops everywhere.
type Rect = image.Rect

// ImageBuf is a straight-alpha RGBA8 surface.
type ImageBuf = image.ImageBuf

// NewImageBuf allocates a transparent surface.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	return image.NewImageBuf(width, height)
}
