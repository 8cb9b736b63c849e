package transit

import "github.com/gogpu/gg-transit/internal/image"

// FrameBuffers are the engine's screen-sized surfaces. They are allocated
// once and never resized.
type FrameBuffers struct {
	// Source is the visible frame captured when a transition is armed.
	Source *ImageBuf
	// Destination is the frame the transition ends on.
	Destination *ImageBuf
	// Accumulation is the presented frame.
	Accumulation *ImageBuf
	// Backup caches a clean rendering of the target frame so that it need
	// not be re-rendered for the destination.
	Backup *ImageBuf

	pool *image.Pool
}

func newFrameBuffers(pool *image.Pool, width, height int) *FrameBuffers {
	get := func() *ImageBuf { return pool.Get(width, height) }
	return &FrameBuffers{
		Source:       get(),
		Destination:  get(),
		Accumulation: get(),
		Backup:       get(),
		pool:         pool,
	}
}

// release returns the surfaces to the pool they came from.
func (f *FrameBuffers) release() {
	for _, b := range []*ImageBuf{f.Source, f.Destination, f.Accumulation, f.Backup} {
		f.pool.Put(b)
	}
	*f = FrameBuffers{}
}

// Width returns the screen width.
func (f *FrameBuffers) Width() int { return f.Accumulation.Width() }

// Height returns the screen height.
func (f *FrameBuffers) Height() int { return f.Accumulation.Height() }
