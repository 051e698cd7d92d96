package raster

import (
	"image"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"
)

// FillRule selects how overlapping contours combine.
type FillRule uint8

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd fills points crossed an odd number of times.
	EvenOdd
)

// String returns the canvas keyword for the rule.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// subsamples is the number of scanlines sampled per pixel row by the
// even-odd filler.
const subsamples = 5

// Fill scan converts the polygons into a width × height coverage mask.
// Every polyline is treated as closed. Polygons with non-finite
// coordinates are skipped.
func Fill(polys []Polyline, rule FillRule, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}
	if rule == EvenOdd {
		fillScanline(mask, polys, rule)
		return mask
	}

	// vector.Rasterizer works in float32, which loses whole pixels far from
	// the origin, so polygons are first cut down to the surface.
	x1, y1 := float64(width+clipPad), float64(height+clipPad)
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	drawn := false
	for _, pl := range polys {
		if len(pl.Points) < 3 || !finite(pl.Points) {
			continue
		}
		pts := clipPolygon(pl.Points, -clipPad, -clipPad, x1, y1)
		if len(pts) < 3 {
			continue
		}
		p0 := pts[0]
		r.MoveTo(float32(p0.X), float32(p0.Y))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		drawn = true
	}
	if drawn {
		r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	return mask
}

type crossing struct {
	x   float64
	dir int
}

// fillScanline fills mask by sampling subsamples horizontal lines per row and
// accumulating exact horizontal span coverage.
func fillScanline(mask *image.Alpha, polys []Polyline, rule FillRule) {
	width, height := mask.Rect.Dx(), mask.Rect.Dy()
	edges, minY, maxY := collectEdges(polys)
	if len(edges) == 0 {
		return
	}
	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), height)

	acc := make([]float32, width)
	var xs []crossing
	const weight = float32(1) / subsamples
	for y := y0; y < y1; y++ {
		clear(acc)
		for s := 0; s < subsamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/subsamples
			xs = xs[:0]
			for _, e := range edges {
				a, b := e[0], e[1]
				if (a.Y <= sy) == (b.Y <= sy) {
					continue
				}
				x := a.X + (sy-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				dir := 1
				if b.Y < a.Y {
					dir = -1
				}
				xs = append(xs, crossing{x: x, dir: dir})
			}
			slices.SortFunc(xs, func(p, q crossing) int {
				switch {
				case p.x < q.x:
					return -1
				case p.x > q.x:
					return 1
				}
				return 0
			})
			wind := 0
			for i := 0; i+1 < len(xs); i++ {
				wind += xs[i].dir
				if inside(wind, rule) {
					addSpan(acc, xs[i].x, xs[i+1].x, weight)
				}
			}
		}
		row := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		for x, v := range acc {
			row[x] = coverageByte(v)
		}
	}
}

func inside(wind int, rule FillRule) bool {
	if rule == EvenOdd {
		return wind&1 != 0
	}
	return wind != 0
}

// addSpan adds w times the covered fraction of each pixel in [x0, x1).
func addSpan(acc []float32, x0, x1 float64, w float32) {
	n := float64(len(acc))
	x0 = max(x0, 0)
	x1 = min(x1, n)
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		acc[i0] += float32(x1-x0) * w
		return
	}
	acc[i0] += float32(float64(i0+1)-x0) * w
	for i := i0 + 1; i < i1; i++ {
		acc[i] += w
	}
	if i1 < len(acc) {
		acc[i1] += float32(x1-float64(i1)) * w
	}
}

func coverageByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// collectEdges returns every non-horizontal edge of the closed polygons and
// their vertical extent.
func collectEdges(polys []Polyline) (edges [][2]Point, minY, maxY float64) {
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, pl := range polys {
		if len(pl.Points) < 2 || !finite(pl.Points) {
			continue
		}
		n := len(pl.Points)
		for i := 0; i < n; i++ {
			a, b := pl.Points[i], pl.Points[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			edges = append(edges, [2]Point{a, b})
			minY = min(minY, a.Y, b.Y)
			maxY = max(maxY, a.Y, b.Y)
		}
	}
	return edges, minY, maxY
}

// Contains reports whether pt is inside the closed polygons under rule.
func Contains(polys []Polyline, rule FillRule, pt Point) bool {
	wind := 0
	for _, pl := range polys {
		n := len(pl.Points)
		if n < 2 || !finite(pl.Points) {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := pl.Points[i], pl.Points[(i+1)%n]
			if (a.Y <= pt.Y) == (b.Y <= pt.Y) {
				continue
			}
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > pt.X {
				continue
			}
			if b.Y > a.Y {
				wind++
			} else {
				wind--
			}
		}
	}
	return inside(wind, rule)
}

func finite(pts []Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
