package raster

import "math"

// Cap is the shape drawn at the open ends of a stroked subpath.
type Cap uint8

// Line caps.
const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape drawn where two stroked segments meet.
type Join uint8

// Line joins.
const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// StrokeStyle describes the pen used by Stroke.
type StrokeStyle struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Stroke expands polylines into closed polygons whose non-zero union is the
// stroke outline. Every emitted polygon is convex and positively oriented,
// so overlapping pieces never cancel each other out.
func Stroke(polys []Polyline, st StrokeStyle) []Polyline {
	if !(st.Width > 0) {
		return nil
	}
	s := stroker{hw: st.Width / 2, style: st}
	for _, pl := range polys {
		s.polyline(pl)
	}
	return s.out
}

type stroker struct {
	hw    float64
	style StrokeStyle
	out   []Polyline
}

func (s *stroker) polyline(pl Polyline) {
	pts := dedupe(pl.Points)
	closed := pl.Closed && len(pts) > 2
	if closed && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// Zero-length subpath: only caps with extent are visible.
		switch s.style.Cap {
		case CapRound:
			s.emit(disc(pts[0], s.hw))
		case CapSquare:
			s.emit(squareCap(pts[0], Point{1, 0}, s.hw, true))
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(b.Sub(a)).Mul(s.hw)
		s.emit([]Point{a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm)})
	}

	if closed {
		for i := 0; i < n; i++ {
			prev, p, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			s.join(p, unit(p.Sub(prev)), unit(next.Sub(p)))
		}
		return
	}
	for i := 1; i < n-1; i++ {
		s.join(pts[i], unit(pts[i].Sub(pts[i-1])), unit(pts[i+1].Sub(pts[i])))
	}
	s.capEnd(pts[0], unit(pts[0].Sub(pts[1])))
	s.capEnd(pts[n-1], unit(pts[n-1].Sub(pts[n-2])))
}

func (s *stroker) join(p, in, out Point) {
	cross := in.Cross(out)
	dot := in.Dot(out)
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return
	}
	if s.style.Join == JoinRound {
		s.emit(disc(p, s.hw))
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	nIn := normal(in).Mul(s.hw * side)
	nOut := normal(out).Mul(s.hw * side)
	a, b := p.Add(nIn), p.Add(nOut)

	if s.style.Join == JoinMiter {
		cosHalf := math.Sqrt(max((1+dot)/2, 0))
		if cosHalf > 0 {
			ratio := 1 / cosHalf
			if ratio <= s.style.MiterLimit {
				bis := unit(nIn.Add(nOut))
				tip := p.Add(bis.Mul(s.hw * ratio))
				s.emit([]Point{p, a, tip, b})
				return
			}
		}
	}
	s.emit([]Point{p, a, b})
}

// capEnd draws the cap at p; dir points away from the stroke.
func (s *stroker) capEnd(p, dir Point) {
	switch s.style.Cap {
	case CapRound:
		s.emit(disc(p, s.hw))
	case CapSquare:
		s.emit(squareCap(p, dir, s.hw, false))
	}
}

func (s *stroker) emit(pts []Point) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	s.out = append(s.out, Polyline{Points: pts, Closed: true})
}

// squareCap returns the square extension at p in direction dir. With
// centered set the square is centred on p instead of extending from it.
func squareCap(p, dir Point, hw float64, centered bool) []Point {
	n := normal(dir).Mul(hw)
	d := dir.Mul(hw)
	base := p
	if centered {
		base = p.Sub(d)
		d = d.Mul(2)
	}
	return []Point{base.Add(n), base.Add(n).Add(d), base.Sub(n).Add(d), base.Sub(n)}
}

// disc approximates a circle of radius r around c.
func disc(c Point, r float64) []Point {
	n := DiscSegments(r)
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return pts
}

// DiscSegments returns the number of polygon sides needed to keep the
// sagitta of a circle of radius r below a quarter of Tolerance. Discs are
// filled rather than outlined, so their area error is held tighter than the
// curve flattening error.
func DiscSegments(r float64) int {
	const sagitta = Tolerance / 4
	if r <= sagitta {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-sagitta/r)))
	return min(max(n, 8), 1024)
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func unit(v Point) Point {
	l := v.Len()
	if l == 0 {
		return Point{}
	}
	return v.Mul(1 / l)
}

// normal returns the unit vector perpendicular to v.
func normal(v Point) Point {
	u := unit(v)
	return Point{-u.Y, u.X}
}

func signedArea(pts []Point) float64 {
	a := 0.0
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
