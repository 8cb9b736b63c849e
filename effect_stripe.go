package transit

// shutter reveals the destination in stripes that all grow at the same
// rate from one edge of their cell.
type shutter struct{ dir direction }

func (s shutter) render(e *Engine, c, d int) {
	b := e.bufs
	w, h := b.Width(), b.Height()
	sw := e.stripe
	n := sw * c / d

	switch s.dir {
	case dirLeft:
		for i := 0; i < w/sw; i++ {
			r := Rect{X: i * sw, Width: n, Height: h}
			e.blit(b.Destination, r.X, r.Y, r)
		}
	case dirRight:
		for i := 1; i <= w/sw; i++ {
			r := Rect{X: i*sw - n - 1, Width: n, Height: h}
			e.blit(b.Destination, r.X, r.Y, r)
		}
	case dirTop:
		for i := 0; i < h/sw; i++ {
			r := Rect{Y: i * sw, Width: w, Height: n}
			e.blit(b.Destination, r.X, r.Y, r)
		}
	case dirBottom:
		for i := 1; i <= h/sw; i++ {
			r := Rect{Y: i*sw - n - 1, Width: w, Height: n}
			e.blit(b.Destination, r.X, r.Y, r)
		}
	}
}

// curtain reveals the destination in stripes whose width falls off with
// their distance from the starting edge, sweeping diagonally. It runs at
// twice the shutter rate so the far stripes finish in time.
type curtain struct{ dir direction }

func (s curtain) render(e *Engine, c, d int) {
	b := e.bufs
	w, h := b.Width(), b.Height()
	cw := e.curtain
	n := cw * c * 2 / d

	span := h
	if s.dir.horizontal() {
		span = w
	}
	for i := 0; i <= span/cw; i++ {
		n2 := n - cw*cw*i/span
		if n2 < 0 {
			continue
		}
		var r Rect
		switch s.dir {
		case dirLeft:
			r = Rect{X: i * cw, Width: n2, Height: h}
		case dirRight:
			n2 = min(n2, cw)
			r = Rect{X: w - i*cw - n2, Width: n2, Height: h}
		case dirTop:
			r = Rect{Y: i * cw, Width: w, Height: n2}
		case dirBottom:
			n2 = min(n2, cw)
			r = Rect{Y: h - i*cw - n2, Width: w, Height: n2}
		}
		e.blit(b.Destination, r.X, r.Y, r)
	}
}
