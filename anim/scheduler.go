package anim

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg-transit/internal/image"
)

// CursorKind selects one of the two click-wait cursors.
type CursorKind int

const (
	// CursorWait is shown while waiting for a click mid-page.
	CursorWait CursorKind = 0
	// CursorNewPage is shown while waiting for a click before a new page.
	CursorNewPage CursorKind = 1
)

// ClickState is the host's click-wait state; it selects the animated cursor.
type ClickState int

const (
	// ClickNone animates no cursor.
	ClickNone ClickState = iota
	// ClickWait animates CursorWait.
	ClickWait
	// ClickNewPage animates CursorNewPage.
	ClickNewPage
)

// RedrawFunc is called with a sprite whose cel changed and the screen
// rectangle that must be recomposed.
type RedrawFunc func(s *Sprite, r image.Rect)

// Scheduler drives the animation of every sprite slot.
//
// Sprites are visited in a fixed order: standing characters by ascending
// slot, primary sprites by descending slot, secondary sprites by descending
// slot, then the cursor selected by the click state.
//
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	layers [numLayers]map[int]*Sprite
	order  [numLayers][]int
	stale  bool

	click     ClickState
	textGosub bool
	originX   int
	originY   int

	redraw RedrawFunc
}

// NewScheduler creates an empty scheduler. redraw may be nil.
func NewScheduler(redraw RedrawFunc) *Scheduler {
	s := &Scheduler{redraw: redraw}
	for i := range s.layers {
		s.layers[i] = make(map[int]*Sprite)
	}
	return s
}

// SetRedraw replaces the redraw callback.
func (s *Scheduler) SetRedraw(redraw RedrawFunc) {
	s.redraw = redraw
}

// Add puts sp into its slot, replacing any previous sprite there.
func (s *Scheduler) Add(sp *Sprite) error {
	if sp.Layer < 0 || sp.Layer >= numLayers {
		return fmt.Errorf("anim: invalid layer %d", sp.Layer)
	}
	if sp.Layer == LayerCursor && sp.Index != int(CursorWait) && sp.Index != int(CursorNewPage) {
		return fmt.Errorf("anim: invalid cursor slot %d", sp.Index)
	}
	if _, ok := s.layers[sp.Layer][sp.Index]; !ok {
		s.stale = true
	}
	s.layers[sp.Layer][sp.Index] = sp
	return nil
}

// Remove clears a slot and reports whether it was occupied.
func (s *Scheduler) Remove(layer Layer, index int) bool {
	if layer < 0 || layer >= numLayers {
		return false
	}
	if _, ok := s.layers[layer][index]; !ok {
		return false
	}
	delete(s.layers[layer], index)
	s.stale = true
	return true
}

// Sprite returns the sprite in a slot, or nil.
func (s *Scheduler) Sprite(layer Layer, index int) *Sprite {
	if layer < 0 || layer >= numLayers {
		return nil
	}
	return s.layers[layer][index]
}

// Assign gives a slot a new image set, creating the sprite if needed. The
// animation restarts at cel 0. On error the slot keeps its prior state.
func (s *Scheduler) Assign(layer Layer, index int, strip *image.ImageBuf, n int, durations []int, loop LoopMode) (*Sprite, error) {
	sp := s.Sprite(layer, index)
	if sp == nil {
		sp = NewSprite(layer, index)
		if err := sp.SetCels(strip, n, durations, loop); err != nil {
			return nil, err
		}
		if err := s.Add(sp); err != nil {
			return nil, err
		}
		return sp, nil
	}
	if err := sp.SetCels(strip, n, durations, loop); err != nil {
		return nil, err
	}
	return sp, nil
}

// SetClickState selects which cursor, if any, is animated.
func (s *Scheduler) SetClickState(c ClickState) { s.click = c }

// ClickState returns the current click state.
func (s *Scheduler) ClickState() ClickState { return s.click }

// SetTextGosub disables cursor animation while a text subroutine handles
// click waits.
func (s *Scheduler) SetTextGosub(on bool) { s.textGosub = on }

// SetTextOrigin sets the screen position that relative cursors are drawn
// from, normally the current text cursor position.
func (s *Scheduler) SetTextOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// ActiveCursor returns the cursor animated in the current click state, or nil.
func (s *Scheduler) ActiveCursor() *Sprite {
	if s.textGosub {
		return nil
	}
	switch s.click {
	case ClickWait:
		return s.layers[LayerCursor][int(CursorWait)]
	case ClickNewPage:
		return s.layers[LayerCursor][int(CursorNewPage)]
	}
	return nil
}

// ScreenRect returns where sp is drawn on screen.
func (s *Scheduler) ScreenRect(sp *Sprite) image.Rect {
	r := sp.Rect()
	if sp.Layer == LayerCursor && !sp.Abs {
		r = r.Translate(s.originX, s.originY)
	}
	return r
}

func (s *Scheduler) reorder() {
	if !s.stale {
		return
	}
	for l := range s.layers {
		idx := make([]int, 0, len(s.layers[l]))
		for i := range s.layers[l] {
			idx = append(idx, i)
		}
		slices.Sort(idx)
		if Layer(l) != LayerTachi {
			slices.Reverse(idx)
		}
		s.order[l] = idx
	}
	s.stale = false
}

// each visits the scheduled sprites in scheduling order.
func (s *Scheduler) each(fn func(*Sprite)) {
	s.reorder()
	for _, l := range []Layer{LayerTachi, LayerSprite, LayerSprite2} {
		for _, i := range s.order[l] {
			fn(s.layers[l][i])
		}
	}
	if c := s.ActiveCursor(); c != nil {
		fn(c)
	}
}

// Sprites returns every scheduled sprite in scheduling order.
func (s *Scheduler) Sprites() []*Sprite {
	var out []*Sprite
	s.each(func(sp *Sprite) { out = append(out, sp) })
	return out
}

// DrawOrder returns the visible sprites back to front: standing
// characters, primary sprites, secondary sprites and the active cursor.
// Within a layer a lower slot is drawn on top.
func (s *Scheduler) DrawOrder() []*Sprite {
	s.reorder()
	var out []*Sprite
	for _, l := range []Layer{LayerTachi, LayerSprite, LayerSprite2} {
		idx := s.order[l]
		for k := range idx {
			i := idx[k]
			if l == LayerTachi {
				i = idx[len(idx)-1-k]
			}
			if sp := s.layers[l][i]; sp.Visible {
				out = append(out, sp)
			}
		}
	}
	if c := s.ActiveCursor(); c != nil && c.Visible {
		out = append(out, c)
	}
	return out
}

func active(sp *Sprite) bool {
	return sp.Visible && sp.Animatable()
}

// AdvanceAll advances every due sprite by one cel and returns the number of
// ticks until the next cel change anywhere, or 0 if nothing is animating.
//
// A sprite is due when its remaining time is zero or less. A due sprite
// contributes the duration of the cel it advanced to; others contribute
// their remaining time. Each advanced sprite is passed to the redraw
// callback with its screen rectangle.
func (s *Scheduler) AdvanceAll() int {
	minimum := -1
	s.each(func(sp *Sprite) {
		if !active(sp) {
			return
		}
		if sp.remaining <= 0 {
			if sp.Advance() && s.redraw != nil {
				s.redraw(sp, s.ScreenRect(sp))
			}
			if !sp.Animatable() {
				return
			}
		}
		if minimum < 0 || sp.remaining < minimum {
			minimum = sp.remaining
		}
	})
	if minimum < 0 {
		return 0
	}
	return minimum
}

// ChargeElapsed subtracts t ticks from every animating sprite.
func (s *Scheduler) ChargeElapsed(t int) {
	s.each(func(sp *Sprite) {
		if active(sp) {
			sp.remaining -= t
		}
	})
}

// StopCursor ends the click wait for kind and redraws the cursor's area one
// last time so it disappears from the screen.
func (s *Scheduler) StopCursor(kind CursorKind) {
	if s.textGosub {
		return
	}
	sp := s.layers[LayerCursor][int(kind)]
	if sp == nil || sp.Image() == nil {
		return
	}
	if (kind == CursorWait && s.click == ClickWait) || (kind == CursorNewPage && s.click == ClickNewPage) {
		s.click = ClickNone
	}
	if s.redraw != nil {
		s.redraw(sp, s.ScreenRect(sp))
	}
}
