package asset

import (
	"fmt"
	stdimage "image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gg-transit/internal/cache"
	"github.com/gogpu/gg-transit/internal/image"
	"github.com/gogpu/gg-transit/tag"
)

// DefaultFontSize is used when a text descriptor gives no size.
const DefaultFontSize = 26

// TextOptions controls DrawText.
type TextOptions struct {
	Size      int // pixel height of the em square
	Pitch     int // extra pixels after each glyph
	Color     color.NRGBA
	AntiAlias bool
}

// faceCache holds one face per pixel size. opentype faces are not safe
// for concurrent use, so drawing holds mu.
type faceCache struct {
	mu    sync.Mutex
	once  sync.Once
	font  *opentype.Font
	err   error
	faces *cache.Cache[int, font.Face]
}

func newFaceCache() *faceCache {
	return &faceCache{faces: cache.New[int, font.Face](8)}
}

func (fc *faceCache) face(size int) (font.Face, error) {
	fc.once.Do(func() {
		fc.font, fc.err = opentype.Parse(goregular.TTF)
		if fc.err != nil {
			fc.err = fmt.Errorf("asset: failed to parse font: %w", fc.err)
		}
	})
	if fc.err != nil {
		return nil, fc.err
	}
	if f, ok := fc.faces.Get(size); ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("asset: face size %d: %w", size, err)
	}
	fc.faces.Set(size, f)
	return f, nil
}

// DrawText renders a single line of text onto a transparent surface sized
// to fit it.
func (l *Loader) DrawText(s string, opts TextOptions) (*image.ImageBuf, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	size = size * l.num / l.den

	l.faces.mu.Lock()
	defer l.faces.mu.Unlock()

	face, err := l.faces.face(size)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	pitch := fixed.I(opts.Pitch * l.num / l.den)

	width := fixed.Int26_6(0)
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			width += face.Kern(prev, r) + pitch
		}
		adv, _ := face.GlyphAdvance(r)
		width += adv
		prev = r
	}
	w := max(width.Ceil(), 1)
	h := max((m.Ascent + m.Descent).Ceil(), 1)

	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  stdimage.NewUniform(opts.Color),
		Face: face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	prev = -1
	for _, r := range s {
		if prev >= 0 {
			d.Dot.X += face.Kern(prev, r) + pitch
		}
		d.DrawString(string(r))
		prev = r
	}

	if !opts.AntiAlias {
		for i := 3; i < len(dst.Pix); i += 4 {
			if dst.Pix[i] >= 128 {
				dst.Pix[i] = 255
			} else {
				dst.Pix[i] = 0
			}
		}
	}
	return image.FromStdImage(dst), nil
}

// textStrip renders one cel per descriptor colour. Cels share the width of
// the widest rendering; centred descriptors centre each cel horizontally.
func (l *Loader) textStrip(d *tag.Descriptor) (*image.ImageBuf, error) {
	size := d.FontHeight
	if size <= 0 {
		size = d.FontWidth
	}
	cels := make([]*image.ImageBuf, 0, len(d.Colors))
	celW, celH := 1, 1
	for _, c := range d.Colors {
		img, err := l.DrawText(d.File, TextOptions{Size: size, Pitch: d.Pitch, Color: c, AntiAlias: d.AntiAlias})
		if err != nil {
			return nil, err
		}
		cels = append(cels, img)
		celW = max(celW, img.Width())
		celH = max(celH, img.Height())
	}
	strip := image.MustNew(celW*len(cels), celH)
	for i, img := range cels {
		x := i * celW
		if d.Centered {
			x += (celW - img.Width()) / 2
		}
		strip.CopyRect(img, img.Bounds(), x, 0)
	}
	return strip, nil
}
