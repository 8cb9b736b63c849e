package transit

import "math"

// sineQuake shakes the destination along one axis. The offset follows
// no full sine periods over the duration, its amplitude decaying linearly
// to zero.
type sineQuake struct {
	vertical bool
	no       int
}

func (q sineQuake) render(e *Engine, c, d int) {
	b := e.bufs
	off := int(math.Sin(math.Pi*2*float64(q.no*c)/float64(d)) *
		float64(e.amp*q.no*(d-c)) / float64(d))
	r := b.Accumulation.Bounds()
	if q.vertical {
		e.fillBlack()
		r.Y = off
	} else {
		r.X = off
	}
	e.blit(b.Destination, 0, 0, r)
}

// resolution limits a step to a quarter of one period so that every
// period is sampled at least four times.
func (q sineQuake) resolution(elapsed, d int) int {
	return min(elapsed, max(d/4/q.no, 1))
}

// randomQuake jitters the destination by up to 2*no pixels on both axes.
type randomQuake struct{ no int }

func (q randomQuake) render(e *Engine, _, _ int) {
	b := e.bufs
	r := b.Accumulation.Bounds()
	r.X = q.no * (e.rnd.Intn(3) - 1) * 2
	r.Y = q.no * (e.rnd.Intn(3) - 1) * 2
	e.fillBlack()
	e.blit(b.Destination, 0, 0, r)
}
