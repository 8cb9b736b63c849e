package transit

import (
	"fmt"

	"github.com/gogpu/gg-transit/anim"
	"github.com/gogpu/gg-transit/internal/image"
)

// SpriteScene renders a background and the sprites of a scheduler in
// draw order. It implements Scene.
type SpriteScene struct {
	// Background is copied first; a nil background clears to opaque black.
	Background *ImageBuf
	Sched      *anim.Scheduler
	Comp       *Compositor
}

// NewSpriteScene returns a scene over sched using comp, or a default
// compositor when comp is nil.
func NewSpriteScene(bg *ImageBuf, sched *anim.Scheduler, comp *Compositor) *SpriteScene {
	if comp == nil {
		comp = NewCompositor(nil)
	}
	return &SpriteScene{Background: bg, Sched: sched, Comp: comp}
}

// Refresh redraws clip of dst.
func (s *SpriteScene) Refresh(dst *ImageBuf, clip Rect) {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	dst.FillRect(clip, image.Opaque)
	if s.Background != nil {
		dst.CopyRect(s.Background, clip, clip.X, clip.Y)
	}
	if s.Sched == nil {
		return
	}
	for _, sp := range s.Sched.DrawOrder() {
		s.Comp.DrawSprite(dst, sp, s.Sched.ScreenRect(sp), clip)
	}
}

// Redraw refreshes r of the accumulation buffer with the engine's scene
// and flushes it. It is meant as the scheduler's redraw callback between
// transitions and fails with ErrBusy while one runs.
func (e *Engine) Redraw(r Rect) error {
	if e.state != Idle {
		return ErrBusy
	}
	if e.opts.scene == nil {
		return nil
	}
	r = r.Intersect(e.bufs.Accumulation.Bounds())
	if r.Empty() {
		return nil
	}
	e.opts.scene.Refresh(e.bufs.Accumulation, r)
	if e.opts.presenter == nil {
		return nil
	}
	if err := e.opts.presenter.Flush(e.bufs.Accumulation, r); err != nil {
		return fmt.Errorf("transit: flush: %w", err)
	}
	return nil
}
