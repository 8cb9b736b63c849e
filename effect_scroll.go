package transit

// scroll slides both frames in the same direction. The first pass moves
// the source off the screen, the second brings the matching strip of the
// destination in from the opposite edge.
type scroll struct{ dir direction }

func (s scroll) render(e *Engine, c, d int) {
	b := e.bufs
	w, h := b.Width(), b.Height()

	switch s.dir {
	case dirLeft:
		n := w * c / d
		e.blit(b.Source, 0, 0, Rect{X: n, Width: w - n, Height: h})
		e.blit(b.Destination, w-n-1, 0, Rect{Width: n, Height: h})
	case dirRight:
		n := w * c / d
		e.blit(b.Source, n, 0, Rect{Width: w - n, Height: h})
		e.blit(b.Destination, 0, 0, Rect{X: w - n - 1, Width: n, Height: h})
	case dirTop:
		n := h * c / d
		e.blit(b.Source, 0, 0, Rect{Y: n, Width: w, Height: h - n})
		e.blit(b.Destination, 0, h-n-1, Rect{Width: w, Height: n})
	case dirBottom:
		n := h * c / d
		e.blit(b.Source, 0, n, Rect{Width: w, Height: h - n})
		e.blit(b.Destination, 0, 0, Rect{Y: h - n - 1, Width: w, Height: n})
	}
}
