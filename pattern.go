package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/canvas/pixel"
)

// Repetition selects how a pattern tiles.
type Repetition uint8

// Pattern repetitions.
const (
	Repeat Repetition = iota
	RepeatX
	RepeatY
	NoRepeat
)

func (r Repetition) String() string {
	switch r {
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case NoRepeat:
		return "no-repeat"
	default:
		return "repeat"
	}
}

// ParseRepetition parses a canvas repetition keyword. The empty string
// means "repeat".
func ParseRepetition(s string) (Repetition, error) {
	switch s {
	case "", "repeat":
		return Repeat, nil
	case "repeat-x":
		return RepeatX, nil
	case "repeat-y":
		return RepeatY, nil
	case "no-repeat":
		return NoRepeat, nil
	}
	return Repeat, fmt.Errorf("%w: repetition %q", ErrSyntax, s)
}

// Pattern paints with a snapshot of an image tiled in user space.
type Pattern struct {
	tile *pixel.Buffer
	rep  Repetition
	inv  Matrix
	m    Matrix
}

func (*Pattern) styleMarker() {}

// NewPattern snapshots img. Later changes to img do not affect the pattern.
func NewPattern(img image.Image, repetition string) (*Pattern, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil pattern image", ErrUnsupportedSource)
	}
	rep, err := ParseRepetition(repetition)
	if err != nil {
		return nil, err
	}
	return &Pattern{tile: pixel.FromImage(img), rep: rep, m: Identity(), inv: Identity()}, nil
}

// Repetition returns how the pattern tiles.
func (p *Pattern) Repetition() Repetition { return p.rep }

// Transform returns the pattern matrix.
func (p *Pattern) Transform() Matrix { return p.m }

// SetTransform sets the matrix mapping pattern space to user space.
// Non-invertible or non-finite matrices are ignored.
func (p *Pattern) SetTransform(m Matrix) {
	if !m.IsFinite() {
		return
	}
	inv, ok := m.Invert()
	if !ok {
		return
	}
	p.m, p.inv = m, inv
}

// At returns the pattern colour at user-space point (x, y) and whether the
// pattern paints there.
func (p *Pattern) At(x, y float64) (RGBA, bool) {
	w, h := p.tile.Width, p.tile.Height
	if w == 0 || h == 0 {
		return Transparent, false
	}
	px, py := p.inv.Apply(x, y)
	ix, iy := floorInt(px), floorInt(py)
	if p.rep == Repeat || p.rep == RepeatX {
		ix = mod(ix, w)
	}
	if p.rep == Repeat || p.rep == RepeatY {
		iy = mod(iy, h)
	}
	if !p.tile.In(ix, iy) {
		return Transparent, false
	}
	return FromColor(p.tile.At(ix, iy)), true
}

func floorInt(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return 0
	case v < -limit:
		return -limit
	case v > limit:
		return limit
	}
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
