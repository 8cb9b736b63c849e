// Package present contains presentation targets for the transition engine.
// Each type implements transit.Presenter: Flush receives the visible frame
// and the rectangle that changed since the previous flush.
package present

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg-transit/internal/image"
)

// Presenter is the presentation collaborator: Flush receives the visible
// frame and its dirty rectangle. It matches transit.Presenter.
type Presenter interface {
	Flush(frame *image.ImageBuf, dirty image.Rect) error
}

var (
	_ Presenter = (*Discard)(nil)
	_ Presenter = (*PNGSequence)(nil)
	_ Presenter = (*Recorder)(nil)
)

// Discard ignores every flush. It counts them, which is handy in tests.
type Discard struct {
	Flushes int
}

// Flush implements transit.Presenter.
func (d *Discard) Flush(*image.ImageBuf, image.Rect) error {
	d.Flushes++
	return nil
}

// PNGSequence writes the whole frame as a numbered PNG on every flush.
type PNGSequence struct {
	Dir    string
	Prefix string

	n int
}

// Flush implements transit.Presenter.
func (p *PNGSequence) Flush(frame *image.ImageBuf, _ image.Rect) error {
	if p.n == 0 {
		if err := os.MkdirAll(p.Dir, 0o755); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
	path := filepath.Join(p.Dir, fmt.Sprintf("%s%05d.png", p.Prefix, p.n))
	p.n++
	if err := frame.SavePNG(path); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Frames returns how many PNGs were written.
func (p *PNGSequence) Frames() int { return p.n }
