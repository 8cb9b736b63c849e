package transit

import (
	"image/color"

	"github.com/gogpu/gg-transit/anim"
	"github.com/gogpu/gg-transit/internal/cache"
	"github.com/gogpu/gg-transit/internal/image"
	"github.com/gogpu/gg-transit/internal/kernel"
)

// Compositor draws sprite cels onto surfaces with the kernel table.
//
// Cel strips are treated as immutable: the alpha plane of a strip is
// extracted once and cached by pointer.
type Compositor struct {
	k      kernel.Kernels
	planes *cache.Cache[*ImageBuf, *kernel.Plane]
}

// NewCompositor returns a compositor using k, or the process-wide table
// when k is nil.
func NewCompositor(k kernel.Kernels) *Compositor {
	if k == nil {
		k = kernel.Default()
	}
	return &Compositor{k: k, planes: cache.New[*ImageBuf, *kernel.Plane](64)}
}

func (c *Compositor) plane(strip *ImageBuf) *kernel.Plane {
	return c.planes.GetOrCreate(strip, func() *kernel.Plane {
		p := kernel.AlphaPlane(strip)
		return &p
	})
}

// DrawSprite draws the current cel of sp with its top-left corner at
// at.X, at.Y in dst, limited to at and clip. Invisible and image-less sprites draw nothing.
func (c *Compositor) DrawSprite(dst *ImageBuf, sp *anim.Sprite, at, clip Rect) {
	strip := sp.Image()
	if strip == nil || !sp.Visible {
		return
	}
	r := at.Intersect(clip)
	if r.Empty() {
		return
	}
	cel := sp.CelRect()
	src := Rect{X: cel.X + r.X - at.X, Y: cel.Y + r.Y - at.Y, Width: r.Width, Height: r.Height}
	src = src.Intersect(cel)

	switch sp.Mode {
	case anim.BlendAdd:
		kernel.AddRect(c.k, dst, strip, src, r.X, r.Y)
	case anim.BlendSub:
		kernel.SubRect(c.k, dst, strip, src, r.X, r.Y)
	default:
		kernel.BlendRect(c.k, dst, strip, c.plane(strip), src, r.X, r.Y, sp.Alpha)
	}
}

// Forget drops the cached alpha plane of strip. Call it when a strip is
// modified in place.
func (c *Compositor) Forget(strip *ImageBuf) {
	c.planes.Delete(strip)
}

// Filter composites a solid color over r of dst with the given mode.
// BlendNormal mixes by the color's alpha; BlendAdd and BlendSub apply the
// color's channels with saturation.
func (c *Compositor) Filter(dst *ImageBuf, r Rect, col color.NRGBA, mode anim.BlendMode) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	row, err := image.NewImageBuf(r.Width, 1)
	if err != nil {
		return
	}
	row.Fill(col)
	src := Rect{Width: r.Width, Height: 1}
	for y := r.Y; y < r.Bottom(); y++ {
		switch mode {
		case anim.BlendAdd:
			kernel.AddRect(c.k, dst, row, src, r.X, y)
		case anim.BlendSub:
			kernel.SubRect(c.k, dst, row, src, r.X, y)
		default:
			kernel.BlendRect(c.k, dst, row, nil, src, r.X, y, col.A)
		}
	}
}

// Thumbnail returns a quarter-size copy of src, each pixel the average of
// a 4x4 block. Sources smaller than 4x4 are rejected.
func Thumbnail(src *ImageBuf) (*ImageBuf, error) {
	dst, err := image.NewImageBuf(src.Width()/4, src.Height()/4)
	if err != nil {
		return nil, err
	}
	kernel.Downscale4x(dst, src, src.Bounds(), 0, 0)
	return dst, nil
}
