package canvas

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas/internal/raster"
)

// Path is a reusable path, the counterpart of a Path2D object. Coordinates
// are recorded in the path's own space and transformed by the current
// transformation when the path is filled, stroked or used as a clip.
//
// The zero value is an empty path ready to use.
//
// A Surface also keeps a current path with the same methods; its points are
// transformed by the transformation in effect when each point is added.
type Path struct {
	p raster.Path

	// m maps incoming coordinates; unset means identity.
	m    Matrix
	hasM bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) xf() Matrix {
	if p.hasM {
		return p.m
	}
	return Identity()
}

func (p *Path) setMatrix(m Matrix) {
	p.m, p.hasM = m, !m.IsIdentity()
}

func (p *Path) pt(x, y float64) raster.Point {
	if !p.hasM {
		return raster.Point{X: x, Y: y}
	}
	dx, dy := p.m.Apply(x, y)
	return raster.Point{X: dx, Y: dy}
}

// Empty reports whether the path has no drawing segments.
func (p *Path) Empty() bool {
	return p.p.Empty()
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	c := &Path{m: p.m, hasM: p.hasM}
	c.p = *p.p.Clone()
	return c
}

func (p *Path) reset() {
	p.p.Reset()
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p.p.MoveTo(p.pt(x, y))
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p.p.LineTo(p.pt(x, y))
}

// QuadraticCurveTo adds a quadratic Bézier curve.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !finite(cpx, cpy, x, y) {
		return
	}
	p.p.QuadTo(p.pt(cpx, cpy), p.pt(x, y))
}

// BezierCurveTo adds a cubic Bézier curve.
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !finite(cp1x, cp1y, cp2x, cp2y, x, y) {
		return
	}
	p.p.CubicTo(p.pt(cp1x, cp1y), p.pt(cp2x, cp2y), p.pt(x, y))
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.p.Close()
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	p.p.MoveTo(p.pt(x, y))
	p.p.LineTo(p.pt(x+w, y))
	p.p.LineTo(p.pt(x+w, y+h))
	p.p.LineTo(p.pt(x, y+h))
	p.p.Close()
}

// Arc adds a circular arc centred on (x, y). Angles are in radians,
// measured clockwise from the positive x axis.
func (p *Path) Arc(x, y, r, start, end float64, counterclockwise bool) error {
	if !finite(x, y, r, start, end) {
		return nil
	}
	if r < 0 {
		return fmt.Errorf("%w: arc radius %v", ErrIndexSize, r)
	}
	p.ellipse(x, y, r, r, 0, start, end, counterclockwise)
	return nil
}

// Ellipse adds an elliptical arc centred on (x, y) with radii rx, ry,
// rotated by rotation radians.
func (p *Path) Ellipse(x, y, rx, ry, rotation, start, end float64, counterclockwise bool) error {
	if !finite(x, y, rx, ry, rotation, start, end) {
		return nil
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("%w: ellipse radii %v, %v", ErrIndexSize, rx, ry)
	}
	p.ellipse(x, y, rx, ry, rotation, start, end, counterclockwise)
	return nil
}

// ellipse approximates the arc with one cubic per quarter turn or less.
func (p *Path) ellipse(x, y, rx, ry, rotation, start, end float64, ccw bool) {
	sweep := arcSweep(start, end, ccw)
	u := p.xf().Multiply(Translate(x, y)).Multiply(Rotate(rotation)).Multiply(Scale(rx, ry))
	at := func(px, py float64) raster.Point {
		dx, dy := u.Apply(px, py)
		return raster.Point{X: dx, Y: dy}
	}

	first := at(math.Cos(start), math.Sin(start))
	if _, ok := p.p.Current(); ok {
		p.p.LineTo(first)
	} else {
		p.p.MoveTo(first)
	}
	if sweep == 0 {
		return
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3 * math.Tan(step/4)
	a := start
	for i := 0; i < n; i++ {
		b := a + step
		sa, ca := math.Sincos(a)
		sb, cb := math.Sincos(b)
		p.p.CubicTo(
			at(ca-k*sa, sa+k*ca),
			at(cb+k*sb, sb-k*cb),
			at(cb, sb),
		)
		a = b
	}
}

// arcSweep returns the signed angle an arc covers, following the canvas
// rules: a sweep of at least a full turn in the drawing direction is a full
// circle, anything else is reduced modulo 2π.
func arcSweep(start, end float64, ccw bool) float64 {
	const tau = 2 * math.Pi
	d := end - start
	if !ccw {
		if d >= tau {
			return tau
		}
		d = math.Mod(d, tau)
		if d < 0 {
			d += tau
		}
		return d
	}
	if -d >= tau {
		return -tau
	}
	d = math.Mod(d, tau)
	if d > 0 {
		d -= tau
	}
	return d
}

// ArcTo adds an arc of radius r tangent to the lines from the current point
// to (x1, y1) and from (x1, y1) to (x2, y2), joined to the current point by
// a straight line.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) error {
	if !finite(x1, y1, x2, y2, r) {
		return nil
	}
	if r < 0 {
		return fmt.Errorf("%w: arc radius %v", ErrIndexSize, r)
	}
	cur, ok := p.p.Current()
	if !ok {
		p.MoveTo(x1, y1)
		cur = p.pt(x1, y1)
	}
	inv, _ := p.xf().Invert()
	x0, y0 := inv.Apply(cur.X, cur.Y)

	v1x, v1y := x0-x1, y0-y1
	v2x, v2y := x2-x1, y2-y1
	l1, l2 := math.Hypot(v1x, v1y), math.Hypot(v2x, v2y)
	cross := v1x*v2y - v1y*v2x
	if l1 == 0 || l2 == 0 || r == 0 || math.Abs(cross) <= 1e-9*l1*l2 {
		p.LineTo(x1, y1)
		return nil
	}

	v1x, v1y = v1x/l1, v1y/l1
	v2x, v2y = v2x/l2, v2y/l2
	theta := math.Acos(max(-1, min(1, v1x*v2x+v1y*v2y)))
	tangent := r / math.Tan(theta/2)
	t1x, t1y := x1+v1x*tangent, y1+v1y*tangent
	t2x, t2y := x1+v2x*tangent, y1+v2y*tangent

	bx, by := v1x+v2x, v1y+v2y
	bl := math.Hypot(bx, by)
	dist := r / math.Sin(theta/2)
	cx, cy := x1+bx/bl*dist, y1+by/bl*dist

	a0 := math.Atan2(t1y-cy, t1x-cx)
	a1 := math.Atan2(t2y-cy, t2x-cx)
	d := math.Remainder(a1-a0, 2*math.Pi)
	p.ellipse(cx, cy, r, r, 0, a0, a1, d < 0)
	return nil
}

// RoundRect adds a rectangle with rounded corners. radii holds one to four
// corner radii in CSS order (top-left, top-right, bottom-right,
// bottom-left, with the usual shorthand expansion); no radii means square
// corners.
func (p *Path) RoundRect(x, y, w, h float64, radii ...float64) error {
	if !finite(x, y, w, h) || !finite(radii...) {
		return nil
	}
	if len(radii) > 4 {
		return fmt.Errorf("%w: %d corner radii", ErrIndexSize, len(radii))
	}
	for _, r := range radii {
		if r < 0 {
			return fmt.Errorf("%w: corner radius %v", ErrIndexSize, r)
		}
	}

	var tl, tr, br, bl float64
	switch len(radii) {
	case 1:
		tl, tr, br, bl = radii[0], radii[0], radii[0], radii[0]
	case 2:
		tl, tr, br, bl = radii[0], radii[1], radii[0], radii[1]
	case 3:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[1]
	case 4:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[3]
	}
	if w < 0 {
		x, w = x+w, -w
		tl, tr, br, bl = tr, tl, bl, br
	}
	if h < 0 {
		y, h = y+h, -h
		tl, tr, br, bl = bl, br, tr, tl
	}

	scale := 1.0
	for _, side := range [][3]float64{{w, tl, tr}, {w, bl, br}, {h, tl, bl}, {h, tr, br}} {
		if sum := side[1] + side[2]; sum > 0 {
			scale = min(scale, side[0]/sum)
		}
	}
	tl, tr, br, bl = tl*scale, tr*scale, br*scale, bl*scale

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	p.corner(x+w-tr, y+tr, tr, -math.Pi/2)
	p.LineTo(x+w, y+h-br)
	p.corner(x+w-br, y+h-br, br, 0)
	p.LineTo(x+bl, y+h)
	p.corner(x+bl, y+h-bl, bl, math.Pi/2)
	p.LineTo(x, y+tl)
	p.corner(x+tl, y+tl, tl, math.Pi)
	p.ClosePath()
	return nil
}

func (p *Path) corner(cx, cy, r, start float64) {
	if r > 0 {
		p.ellipse(cx, cy, r, r, 0, start, start+math.Pi/2, false)
	}
}

// AddPath appends q transformed by m.
func (p *Path) AddPath(q *Path, m Matrix) {
	if q == nil || !m.IsFinite() {
		return
	}
	appendTransformed(&p.p, &q.p, p.xf().Multiply(m))
}

// appendTransformed replays src into dst with every point mapped by m.
func appendTransformed(dst, src *raster.Path, m Matrix) {
	tp := func(pt raster.Point) raster.Point {
		x, y := m.Apply(pt.X, pt.Y)
		return raster.Point{X: x, Y: y}
	}
	for _, s := range src.Segments() {
		switch s.Op {
		case raster.OpMoveTo:
			dst.MoveTo(tp(s.Pts[0]))
		case raster.OpLineTo:
			dst.LineTo(tp(s.Pts[0]))
		case raster.OpQuadTo:
			dst.QuadTo(tp(s.Pts[0]), tp(s.Pts[1]))
		case raster.OpCubicTo:
			dst.CubicTo(tp(s.Pts[0]), tp(s.Pts[1]), tp(s.Pts[2]))
		case raster.OpClose:
			dst.Close()
		}
	}
}

// device returns the path in device space under m.
func (p *Path) device(m Matrix) *raster.Path {
	if m.IsIdentity() {
		return &p.p
	}
	var out raster.Path
	appendTransformed(&out, &p.p, m)
	return &out
}
