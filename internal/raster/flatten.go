package raster

import "math"

// Tolerance is the default maximum distance, in pixels, between a curve and
// its flattened polyline.
const Tolerance = 0.1

// maxCurveSteps bounds the segments emitted for one curve.
const maxCurveSteps = 1 << 12

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts p into polylines, replacing curves by line segments that
// stay within tol of the curve. Subpaths consisting of a lone MoveTo are
// dropped; a zero-length LineTo survives as a two-point polyline so strokes
// can still cap it.
func Flatten(p *Path, tol float64) []Polyline {
	if tol <= 0 {
		tol = Tolerance
	}

	var out []Polyline
	var cur Polyline
	var last Point
	flush := func() {
		if len(cur.Points) > 1 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}

	for _, s := range p.segs {
		switch s.Op {
		case OpMoveTo:
			flush()
			last = s.Pts[0]
			cur.Points = append(cur.Points, last)
		case OpLineTo:
			last = s.Pts[0]
			cur.Points = append(cur.Points, last)
		case OpQuadTo:
			cur.Points = appendQuad(cur.Points, last, s.Pts[0], s.Pts[1], tol)
			last = s.Pts[1]
		case OpCubicTo:
			cur.Points = appendCubic(cur.Points, last, s.Pts[0], s.Pts[1], s.Pts[2], tol)
			last = s.Pts[2]
		case OpClose:
			cur.Closed = true
			flush()
		}
	}
	flush()
	return out
}

// appendQuad flattens the quadratic p0,p1,p2 and appends every point after p0.
// The segment count follows from the curve's second difference.
func appendQuad(pts []Point, p0, p1, p2 Point, tol float64) []Point {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Len()
	n := 1
	if e > tol {
		n = min(int(math.Ceil(math.Sqrt(e/tol))), maxCurveSteps)
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pts = append(pts, p0.Mul(mt*mt).Add(p1.Mul(2*mt*t)).Add(p2.Mul(t*t)))
	}
	return pts
}

// appendCubic flattens the cubic p0..p3 using Wang's formula for the
// segment count and appends every point after p0.
func appendCubic(pts []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Len()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Len()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * tol)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	n = min(n, maxCurveSteps)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		pts = append(pts, p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c)).Add(p3.Mul(d)))
	}
	return pts
}
