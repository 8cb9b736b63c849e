package transit

import "github.com/gogpu/gg-transit/internal/kernel"

// maskFade blends source toward destination where the mask is darker than
// a threshold that rises with the counter. rate 2 sweeps the whole
// 0..510 threshold range so that every pixel also fades in fully.
type maskFade struct {
	mask *ImageBuf
	rate int
}

func (m maskFade) render(e *Engine, c, d int) {
	b := e.bufs
	threshold := uint32(256 * c * m.rate / d)
	kernel.MaskBlendRect(e.k, b.Accumulation, b.Source, b.Destination, m.mask, e.dirty.Bounds(), threshold)
}
