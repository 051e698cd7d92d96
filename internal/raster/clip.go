package raster

// clipPad is the margin kept around the surface when clipping polygons, so
// edges introduced on the clip boundary never touch a visible pixel.
const clipPad = 1

// clipPolygon clips the closed polygon pts to [x0, x1] × [y0, y1] with the
// Sutherland–Hodgman algorithm. Winding numbers of points inside the
// rectangle are unchanged. Polygons already inside are returned as is.
func clipPolygon(pts []Point, x0, y0, x1, y1 float64) []Point {
	inside := true
	for _, p := range pts {
		if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
			inside = false
			break
		}
	}
	if inside {
		return pts
	}

	out := pts
	for _, e := range [...]struct {
		y       bool
		v       float64
		greater bool
	}{
		{false, x0, true},
		{false, x1, false},
		{true, y0, true},
		{true, y1, false},
	} {
		out = clipHalfPlane(make([]Point, 0, len(out)+4), out, e.y, e.v, e.greater)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// clipHalfPlane appends to dst the part of the closed polygon in that lies
// on the kept side of the line coord = v.
func clipHalfPlane(dst, in []Point, onY bool, v float64, greater bool) []Point {
	coord := func(p Point) float64 {
		if onY {
			return p.Y
		}
		return p.X
	}
	keep := func(p Point) bool {
		if greater {
			return coord(p) >= v
		}
		return coord(p) <= v
	}
	cross := func(a, b Point) Point {
		t := (v - coord(a)) / (coord(b) - coord(a))
		if onY {
			return Point{a.X + (b.X-a.X)*t, v}
		}
		return Point{v, a.Y + (b.Y-a.Y)*t}
	}

	n := len(in)
	for i := 0; i < n; i++ {
		a, b := in[(i+n-1)%n], in[i]
		ka, kb := keep(a), keep(b)
		switch {
		case kb && !ka:
			dst = append(dst, cross(a, b), b)
		case kb:
			dst = append(dst, b)
		case ka:
			dst = append(dst, cross(a, b))
		}
	}
	return dst
}
