package canvas

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Style is a fill or stroke paint: an RGBA colour, a *Gradient or a
// *Pattern.
type Style interface {
	styleMarker()
}

// GradientKind distinguishes the gradient geometries.
type GradientKind uint8

// Gradient kinds.
const (
	LinearGradient GradientKind = iota
	RadialGradient
	ConicGradient
)

// ColorStop represents a colour at a position along a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Gradient is a linear, radial or conic gradient in user space. Colours
// between stops are interpolated without premultiplying alpha and extend
// with the first and last stop colours.
type Gradient struct {
	kind   GradientKind
	x0, y0 float64
	r0     float64
	x1, y1 float64
	r1     float64
	angle  float64
	stops  []ColorStop
}

func (*Gradient) styleMarker() {}

// NewLinearGradient creates a gradient along the line (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{kind: LinearGradient, x0: x0, y0: y0, x1: x1, y1: y1}
}

// NewRadialGradient creates a gradient between the circle (x0, y0, r0) and
// the circle (x1, y1, r1). Negative radii fail with ErrIndexSize.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	if r0 < 0 || r1 < 0 {
		return nil, fmt.Errorf("%w: gradient radii %v, %v", ErrIndexSize, r0, r1)
	}
	return &Gradient{kind: RadialGradient, x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}, nil
}

// NewConicGradient creates a gradient sweeping clockwise around (x, y),
// starting at startAngle radians.
func NewConicGradient(startAngle, x, y float64) *Gradient {
	return &Gradient{kind: ConicGradient, angle: startAngle, x0: x, y0: y}
}

// Kind returns the gradient geometry.
func (g *Gradient) Kind() GradientKind { return g.kind }

// AddColorStop parses color and adds it at offset, which must be in [0, 1].
func (g *Gradient) AddColorStop(offset float64, color string) error {
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	return g.AddColorStopRGBA(offset, c)
}

// AddColorStopRGBA adds a stop at offset, which must be in [0, 1]. Stops
// sharing an offset keep their insertion order, producing a hard edge.
func (g *Gradient) AddColorStopRGBA(offset float64, c RGBA) error {
	if !(offset >= 0 && offset <= 1) {
		return fmt.Errorf("%w: colour stop offset %v", ErrIndexSize, offset)
	}
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = slices.Insert(g.stops, i, ColorStop{Offset: offset, Color: c})
	return nil
}

// Stops returns a copy of the colour stops in offset order.
func (g *Gradient) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// At returns the gradient colour at user-space point (x, y) and whether
// the gradient paints there.
func (g *Gradient) At(x, y float64) (RGBA, bool) {
	if len(g.stops) == 0 {
		return Transparent, false
	}
	var t float64
	switch g.kind {
	case LinearGradient:
		dx, dy := g.x1-g.x0, g.y1-g.y0
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return Transparent, false
		}
		t = ((x-g.x0)*dx + (y-g.y0)*dy) / l2
	case RadialGradient:
		w, ok := g.radialOmega(x, y)
		if !ok {
			return Transparent, false
		}
		t = w
	case ConicGradient:
		a := math.Atan2(y-g.y0, x-g.x0) - g.angle
		t = a/(2*math.Pi) - math.Floor(a/(2*math.Pi))
	}
	return g.colorAt(t), true
}

// radialOmega solves for the largest ω with r(ω) >= 0 such that (x, y) lies
// on the circle interpolated between the start and end circles.
func (g *Gradient) radialOmega(x, y float64) (float64, bool) {
	cdx, cdy := g.x1-g.x0, g.y1-g.y0
	dr := g.r1 - g.r0
	if cdx == 0 && cdy == 0 && dr == 0 {
		return 0, false
	}
	pdx, pdy := x-g.x0, y-g.y0
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.r0*dr
	c := pdx*pdx + pdy*pdy - g.r0*g.r0

	valid := func(w float64) bool { return g.r0+w*dr >= 0 }
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		w := c / (2 * b)
		return w, valid(w)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	w1, w2 := (b+sq)/a, (b-sq)/a
	if w1 < w2 {
		w1, w2 = w2, w1
	}
	if valid(w1) {
		return w1, true
	}
	if valid(w2) {
		return w2, true
	}
	return 0, false
}

func (g *Gradient) colorAt(t float64) RGBA {
	stops := g.stops
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	switch {
	case i == 0:
		return stops[0].Color
	case i == len(stops):
		return stops[len(stops)-1].Color
	}
	a, b := stops[i-1], stops[i]
	f := (t - a.Offset) / (b.Offset - a.Offset)
	return RGBA{
		R: a.Color.R + (b.Color.R-a.Color.R)*f,
		G: a.Color.G + (b.Color.G-a.Color.G)*f,
		B: a.Color.B + (b.Color.B-a.Color.B)*f,
		A: a.Color.A + (b.Color.A-a.Color.A)*f,
	}
}
