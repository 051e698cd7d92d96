// Package raster turns device-space paths into coverage masks.
//
// Paths are flattened into polylines, strokes are expanded into sets of
// small positively oriented polygons, and polygons are scan converted into
// 8-bit alpha masks. Non-zero fills use golang.org/x/image/vector's exact
// area accumulation; even-odd fills use a supersampled scanline filler.
package raster

import "math"

// Point is a device-space position.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Mul scales p by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Cross returns the z component of p×q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Dot returns p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Op identifies a path segment kind.
type Op uint8

// Path segment kinds.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Segment is one path command. Pts holds 1 point for MoveTo/LineTo, 2 for
// QuadTo (control, end), 3 for CubicTo (control1, control2, end) and none
// for Close.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// Path is a sequence of segments in device space.
// The zero value is an empty path ready to use.
type Path struct {
	segs  []Segment
	start Point
	cur   Point
	open  bool
}

// MoveTo begins a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.segs = append(p.segs, Segment{Op: OpMoveTo, Pts: [3]Point{pt}})
	p.start, p.cur, p.open = pt, pt, true
}

// LineTo adds a straight segment. Without a current point it acts as MoveTo.
func (p *Path) LineTo(pt Point) {
	if !p.open {
		p.MoveTo(pt)
		return
	}
	p.segs = append(p.segs, Segment{Op: OpLineTo, Pts: [3]Point{pt}})
	p.cur = pt
}

// QuadTo adds a quadratic Bézier segment.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.ensureStart(ctrl)
	p.segs = append(p.segs, Segment{Op: OpQuadTo, Pts: [3]Point{ctrl, pt}})
	p.cur = pt
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.ensureStart(c1)
	p.segs = append(p.segs, Segment{Op: OpCubicTo, Pts: [3]Point{c1, c2, pt}})
	p.cur = pt
}

// Close closes the current subpath and moves the current point back to its
// start.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segs = append(p.segs, Segment{Op: OpClose})
	p.cur = p.start
	// A closed subpath keeps its start as the current point, so following
	// segments continue from there.
	p.segs = append(p.segs, Segment{Op: OpMoveTo, Pts: [3]Point{p.start}})
}

func (p *Path) ensureStart(pt Point) {
	if !p.open {
		p.MoveTo(pt)
	}
}

// Current returns the current point and whether one exists.
func (p *Path) Current() (Point, bool) {
	return p.cur, p.open
}

// Segments returns the recorded segments. The slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether the path has no drawing segments.
func (p *Path) Empty() bool {
	for _, s := range p.segs {
		if s.Op != OpMoveTo {
			return false
		}
	}
	return true
}

// Reset clears the path.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
	p.open = false
}

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	c := *p
	c.segs = append([]Segment(nil), p.segs...)
	return &c
}

// Append adds every segment of q to p.
func (p *Path) Append(q *Path) {
	for _, s := range q.segs {
		switch s.Op {
		case OpMoveTo:
			p.MoveTo(s.Pts[0])
		case OpLineTo:
			p.LineTo(s.Pts[0])
		case OpQuadTo:
			p.QuadTo(s.Pts[0], s.Pts[1])
		case OpCubicTo:
			p.CubicTo(s.Pts[0], s.Pts[1], s.Pts[2])
		case OpClose:
			p.segs = append(p.segs, s)
		}
	}
}
