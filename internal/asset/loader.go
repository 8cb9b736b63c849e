package asset

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gogpu/gg-transit/internal/cache"
	"github.com/gogpu/gg-transit/internal/image"
	"github.com/gogpu/gg-transit/internal/kernel"
	"github.com/gogpu/gg-transit/tag"
)

// ErrNotFound is returned when an image file does not exist.
var ErrNotFound = errors.New("asset: image not found")

// Loader loads and prepares sprite images. It is safe for concurrent use.
type Loader struct {
	fsys     fs.FS
	k        kernel.Kernels
	num, den int
	canvasW  int
	canvasH  int
	images   *cache.Cache[string, *image.ImageBuf]
	faces    *faceCache
}

// Option configures a Loader.
type Option func(*Loader)

// WithKernels sets the compositing kernels used for halving 2x assets.
func WithKernels(k kernel.Kernels) Option {
	return func(l *Loader) { l.k = k }
}

// WithScreenRatio scales every loaded image by num/den.
func WithScreenRatio(num, den int) Option {
	return func(l *Loader) {
		if num > 0 && den > 0 {
			l.num, l.den = num, den
		}
	}
}

// WithCanvasSize sets the size of solid-colour cels.
func WithCanvasSize(w, h int) Option {
	return func(l *Loader) {
		if w > 0 && h > 0 {
			l.canvasW, l.canvasH = w, h
		}
	}
}

// WithCacheSize bounds the number of decoded images kept in memory.
func WithCacheSize(n int) Option {
	return func(l *Loader) { l.images = cache.New[string, *image.ImageBuf](n) }
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:    fsys,
		k:       kernel.Default(),
		num:     1,
		den:     1,
		canvasW: 640,
		canvasH: 480,
		images:  cache.New[string, *image.ImageBuf](64),
		faces:   newFaceCache(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadImage returns the image at path scaled to the screen ratio. The
// result is shared with the cache and must not be modified.
func (l *Loader) LoadImage(path string) (*image.ImageBuf, error) {
	if img, ok := l.images.Get(path); ok {
		return img, nil
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	img, err = image.ScaleRatio(img, l.num, l.den)
	if err != nil {
		return nil, fmt.Errorf("asset: scale %s: %w", path, err)
	}
	l.images.Set(path, img)
	logger().Debug("asset: loaded image", "path", path, "width", img.Width(), "height", img.Height())
	return img, nil
}

// Build produces the cel strip described by d.
func (l *Loader) Build(d *tag.Descriptor) (*image.ImageBuf, error) {
	switch d.Mode {
	case tag.ModeString:
		return l.textStrip(d)
	case tag.ModeDirect:
		return l.solidStrip(d), nil
	}

	src, err := l.LoadImage(d.File)
	if err != nil {
		return nil, err
	}
	img := src.Clone()
	if d.Flip {
		image.FlipHorizontal(img)
	}
	if d.Double {
		if img, err = kernel.Halve(l.k, img); err != nil {
			return nil, fmt.Errorf("asset: halve %s: %w", d.File, err)
		}
	}

	switch d.Mode {
	case tag.ModeTopLeft:
		r, g, b, _ := img.GetRGBA(0, 0)
		colorKey(img, r, g, b)
	case tag.ModeTopRight:
		r, g, b, _ := img.GetRGBA(img.Width()-1, 0)
		colorKey(img, r, g, b)
	case tag.ModeCopy:
		setOpaque(img)
	case tag.ModeAlpha:
		img = splitAlpha(img, d.Cels)
	case tag.ModeMask:
		mask, err := l.LoadImage(d.MaskFile)
		if err != nil {
			return nil, err
		}
		applyMask(img, mask)
	case tag.ModePalette:
		logger().Debug("asset: palette mode drawn as copy", "file", d.File)
		setOpaque(img)
	}
	return img, nil
}

func (l *Loader) solidStrip(d *tag.Descriptor) *image.ImageBuf {
	n := max(len(d.Colors), 1)
	strip := image.MustNew(l.canvasW*n, l.canvasH)
	for i, c := range d.Colors {
		strip.FillRect(image.Rect{X: i * l.canvasW, Width: l.canvasW, Height: l.canvasH}, c)
	}
	return strip
}

func colorKey(img *image.ImageBuf, r, g, b uint8) {
	for y := range img.Height() {
		row := img.Row(y)
		for i := 0; i < len(row); i += 4 {
			if row[i] == r && row[i+1] == g && row[i+2] == b {
				row[i+3] = 0
			} else {
				row[i+3] = 255
			}
		}
	}
}

func setOpaque(img *image.ImageBuf) {
	for y := range img.Height() {
		row := img.Row(y)
		for i := 3; i < len(row); i += 4 {
			row[i] = 255
		}
	}
}

func opaque(img *image.ImageBuf) bool {
	for y := range img.Height() {
		row := img.Row(y)
		for i := 3; i < len(row); i += 4 {
			if row[i] != 255 {
				return false
			}
		}
	}
	return true
}

// splitAlpha handles alpha-mode images without an alpha channel: every cel
// holds its colour on the left half and an inverted gray mask on the right.
func splitAlpha(img *image.ImageBuf, cels int) *image.ImageBuf {
	cels = max(cels, 1)
	celW := img.Width() / cels
	if !opaque(img) || celW < 2 || celW%2 != 0 {
		return img
	}
	half := celW / 2
	out := image.MustNew(half*cels, img.Height())
	for y := range img.Height() {
		in := img.Row(y)
		row := out.Row(y)
		for c := range cels {
			for x := range half {
				o := (c*half + x) * 4
				s := (c*celW + x) * 4
				m := (c*celW + half + x) * 4
				copy(row[o:o+3], in[s:s+3])
				row[o+3] = 255 - in[m]
			}
		}
	}
	return out
}

// applyMask sets alpha from the inverted red channel of a tiled mask.
func applyMask(img, mask *image.ImageBuf) {
	mw, mh := mask.Width(), mask.Height()
	for y := range img.Height() {
		row := img.Row(y)
		mrow := mask.Row(y % mh)
		for x := range img.Width() {
			row[x*4+3] = 255 - mrow[(x%mw)*4]
		}
	}
}
