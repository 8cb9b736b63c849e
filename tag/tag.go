// Package tag parses the compact sprite descriptors used by scripts to
// describe an image set, for example
//
//	:a/3,100,0;cursor.png      alpha image, 3 cels, 100 ticks each, looping
//	:c/2,<80,200>,1;btn.bmp    copy mode, per-cel durations, play once
//	:mmask.bmp;bg.bmp          image whose alpha comes from mask.bmp
//	:s/24,24,0;#ffffff#808080Go  text cels in two colours
//	:#ff0000                   a solid red cel
//
// A descriptor without the leading ':' is a plain file name.
package tag

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/gogpu/gg-transit/anim"
)

// Mode is the compositing mode of the described image.
type Mode int

const (
	// ModeTopLeft uses the top-left pixel as the transparent colour.
	ModeTopLeft Mode = iota
	// ModeTopRight uses the top-right pixel as the transparent colour.
	ModeTopRight
	// ModeAlpha uses the image's own alpha channel.
	ModeAlpha
	// ModeCopy draws the image opaque.
	ModeCopy
	// ModeMask takes alpha from a separate grayscale mask file.
	ModeMask
	// ModeDirect is a solid colour cel per listed colour.
	ModeDirect
	// ModePalette selects a palette entry.
	ModePalette
	// ModeString renders text, one cel per listed colour.
	ModeString
)

var modeNames = [...]string{"topleft", "topright", "alpha", "copy", "mask", "direct", "palette", "string"}

// String returns the mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Descriptor is a parsed sprite descriptor.
type Descriptor struct {
	Mode Mode

	// Double marks a 2x asset that is halved when loaded.
	Double bool
	// Flip mirrors the image horizontally.
	Flip bool

	MaskFile string
	Colors   []color.NRGBA
	Palette  int

	// Text options for ModeString.
	Centered   bool
	FontWidth  int
	FontHeight int
	Pitch      int
	AntiAlias  bool

	Cels      int
	Durations []int
	Loop      anim.LoopMode

	// File is the image path, or the text for ModeString.
	File string
}

// Animated reports whether the descriptor asks for more than one cel.
func (d *Descriptor) Animated() bool {
	return d.Cels > 1
}

// Parse errors.
var (
	ErrZeroCells    = errors.New("tag: zero cell count")
	ErrUnterminated = errors.New("tag: missing ';' terminator")
	ErrBadColor     = errors.New("tag: malformed #RRGGBB colour")
	ErrSyntax       = errors.New("tag: syntax error")
)

// ParseBytes parses a descriptor stored as UTF-8 or, failing that, as
// Shift-JIS.
func ParseBytes(b []byte) (*Descriptor, error) {
	if utf8.Valid(b) {
		return Parse(string(b))
	}
	s, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("tag: decode Shift-JIS: %w", err)
	}
	return Parse(string(s))
}

// Parse parses a descriptor.
func Parse(s string) (*Descriptor, error) {
	d := &Descriptor{Cels: 1, Durations: []int{0}, AntiAlias: true}
	if !strings.HasPrefix(s, ":") {
		d.File = s
		return d, nil
	}
	p := &parser{s: s, pos: 1}
	if err := p.descriptor(d); err != nil {
		return nil, fmt.Errorf("%w at offset %d in %q", err, p.pos, s)
	}
	return d, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.peek() == c && p.pos < len(p.s) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) int() (int, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, ErrSyntax
	}
	return n, nil
}

func (p *parser) color() (color.NRGBA, error) {
	if p.pos+6 > len(p.s) {
		return color.NRGBA{}, ErrBadColor
	}
	v, err := strconv.ParseUint(p.s[p.pos:p.pos+6], 16, 32)
	if err != nil {
		return color.NRGBA{}, ErrBadColor
	}
	p.pos += 6
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func (p *parser) descriptor(d *Descriptor) error {
	for {
		switch {
		case p.accept('b'):
			d.Double = true
			continue
		case p.accept('f'):
			d.Flip = true
			continue
		}
		break
	}

	switch c := p.peek(); c {
	case 'a':
		p.pos++
		d.Mode = ModeAlpha
	case 'l':
		p.pos++
		d.Mode = ModeTopLeft
	case 'r':
		p.pos++
		d.Mode = ModeTopRight
	case 'c':
		p.pos++
		d.Mode = ModeCopy
	case 'm':
		p.pos++
		d.Mode = ModeMask
		end := strings.IndexByte(p.s[p.pos:], ';')
		if end < 0 {
			return ErrUnterminated
		}
		d.MaskFile = p.s[p.pos : p.pos+end]
		p.pos += end + 1
	case '#':
		p.pos++
		d.Mode = ModeDirect
		col, err := p.color()
		if err != nil {
			return err
		}
		d.Colors = []color.NRGBA{col}
	case '!':
		p.pos++
		d.Mode = ModePalette
		n, err := p.int()
		if err != nil {
			return err
		}
		d.Palette = n
	case 's', 'S':
		p.pos++
		d.Mode = ModeString
		d.Centered = c == 'S'
		return p.text(d)
	}

	if p.accept('/') {
		if err := p.cells(d); err != nil {
			return err
		}
	}
	if d.Mode == ModeDirect && p.pos == len(p.s) {
		return nil
	}
	if !p.accept(';') {
		return ErrUnterminated
	}
	d.File = p.s[p.pos:]
	return nil
}

// cells parses "N,D,L" or "N,<d1,...,dN>,L" after the '/'.
func (p *parser) cells(d *Descriptor) error {
	n, err := p.int()
	if err != nil {
		return err
	}
	if n <= 0 {
		return ErrZeroCells
	}
	d.Cels = n
	if !p.accept(',') {
		return ErrSyntax
	}

	if p.accept('<') {
		var list []int
		for {
			v, err := p.int()
			if err != nil {
				return err
			}
			list = append(list, v)
			if p.accept('>') {
				break
			}
			if !p.accept(',') {
				return ErrSyntax
			}
		}
		if len(list) != n {
			return fmt.Errorf("%w: %d durations for %d cels", ErrSyntax, len(list), n)
		}
		d.Durations = list
	} else {
		v, err := p.int()
		if err != nil {
			return err
		}
		d.Durations = []int{v}
	}

	if !p.accept(',') {
		return ErrSyntax
	}
	c := p.peek()
	if c < '0' || c > '3' {
		return fmt.Errorf("%w: loop mode %q", ErrSyntax, c)
	}
	p.pos++
	d.Loop = anim.LoopMode(c - '0')
	return nil
}

// text parses the options and colours of a string descriptor. Everything
// after the last colour is the text.
func (p *parser) text(d *Descriptor) error {
	if p.accept('/') {
		vals := make([]int, 0, 4)
		for {
			v, err := p.int()
			if err != nil {
				return err
			}
			vals = append(vals, v)
			if p.accept(';') {
				break
			}
			if !p.accept(',') {
				return ErrUnterminated
			}
		}
		if len(vals) < 3 || len(vals) > 4 {
			return fmt.Errorf("%w: font spec needs 3 or 4 values", ErrSyntax)
		}
		d.FontWidth, d.FontHeight, d.Pitch = vals[0], vals[1], vals[2]
		if len(vals) == 4 {
			d.AntiAlias = vals[3] != 0
		}
	}
	for p.accept('#') {
		col, err := p.color()
		if err != nil {
			return err
		}
		d.Colors = append(d.Colors, col)
	}
	if len(d.Colors) == 0 {
		d.Colors = []color.NRGBA{{R: 255, G: 255, B: 255, A: 255}}
	}
	d.Cels = len(d.Colors)
	d.Durations = []int{0}
	d.Loop = anim.LoopNone
	d.File = p.s[p.pos:]
	return nil
}
