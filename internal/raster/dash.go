package raster

import "math"

// Dash splits polylines into the "on" intervals of a dash pattern.
//
// pattern holds alternating dash and gap lengths; an odd-length pattern is
// repeated once to make it even. offset shifts the start of the pattern
// along each subpath. A nil or zero-length pattern returns polys unchanged.
func Dash(polys []Polyline, pattern []float64, offset float64) []Polyline {
	if len(pattern) == 0 {
		return polys
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}
	total := 0.0
	for _, v := range pattern {
		total += v
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return polys
	}

	var out []Polyline
	for _, pl := range polys {
		out = dashPolyline(out, pl, pattern, total, offset)
	}
	return out
}

func dashPolyline(out []Polyline, pl Polyline, pattern []float64, total, offset float64) []Polyline {
	pts := pl.Points
	if pl.Closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point(nil), pts...), pts[0])
	}

	// Locate the starting dash index and the distance left in it.
	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remain := pattern[idx] - phase
	on := idx%2 == 0

	var cur []Point
	if on {
		cur = append(cur, pts[0])
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := b.Sub(a).Len()
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			p := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Points: cur})
	}
	return out
}
