package transit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// resolveExtension maps a named extension onto its algorithm.
func resolveExtension(x Extension) variant {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(x.Name)), ".dll")
	args := parseParams(x.Params)
	switch name {
	case "cascade":
		return cascade{width: arg(args, 0)}
	case "trvswave":
		return trvsWave{amp: arg(args, 0), period: arg(args, 1)}
	}
	return unknownExtension{name: x.Name}
}

// parseParams splits a "a,b,c" or "a/b/c" parameter string into integers.
// Fields that are not integers read as 0.
func parseParams(s string) []int {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' })
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i], _ = strconv.Atoi(strings.TrimSpace(f))
	}
	return out
}

func arg(args []int, i int) int {
	if i < len(args) {
		return args[i]
	}
	return 0
}

// unknownExtension is the named fallback for extensions without an
// implementation.
type unknownExtension struct {
	name string
	crossFade
}

func (u unknownExtension) reason() string {
	if u.name == "" {
		return "extension effect without a name, substituting crossfade"
	}
	return fmt.Sprintf("extension effect %q not found, substituting crossfade", u.name)
}

// cascade drops columns of the destination in from the top. Each column
// starts a little later than its left neighbour and all of them land by
// the end of the transition.
type cascade struct{ width int }

func (x cascade) render(e *Engine, c, d int) {
	b := e.bufs
	w, h := b.Width(), b.Height()
	cw := x.width
	if cw <= 0 {
		cw = e.stripe
	}
	cols := (w + cw - 1) / cw
	for i := range cols {
		n := h*2*c/d - h*i/cols
		n = max(0, min(n, h))
		if n == 0 {
			continue
		}
		e.blit(b.Destination, i*cw, h-n, Rect{X: i * cw, Width: cw, Height: n})
	}
}

// trvsWave shifts every row of the destination sideways along a sine wave
// travelling down the screen. The amplitude decays to zero at the end.
type trvsWave struct {
	amp    int
	period int
}

func (x trvsWave) render(e *Engine, c, d int) {
	b := e.bufs
	w, h := b.Width(), b.Height()
	amp := x.amp
	if amp <= 0 {
		amp = 2 * e.amp
	}
	period := x.period
	if period <= 0 {
		period = max(h/4, 1)
	}
	decay := float64(amp) * float64(d-c) / float64(d)
	phase := float64(c) / float64(d)

	e.fillBlack()
	for y := range h {
		off := int(math.Sin(2*math.Pi*(float64(y)/float64(period)+phase)) * decay)
		e.blit(b.Destination, 0, y, Rect{X: off, Y: y, Width: w, Height: 1})
	}
}
