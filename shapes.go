package canvas

import (
	"math"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/raster"
)

// The drawers in this file paint immediately and leave the current path
// untouched.

// scratch returns an empty path that records in device space under the
// current transformation.
func (s *Surface) scratch() *Path {
	p := &Path{}
	p.setMatrix(s.st.ctm)
	return p
}

// FillRect fills a rectangle with the fill style.
func (s *Surface) FillRect(x, y, w, h float64) {
	p := s.scratch()
	p.Rect(x, y, w, h)
	s.fillDevice(&p.p, raster.NonZero, s.st.fill)
}

// StrokeRect strokes a rectangle with the stroke style. A rectangle with
// one zero side strokes as a line; one with both sides zero draws nothing.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	if !finite(x, y, w, h) || w == 0 && h == 0 {
		return
	}
	p := s.scratch()
	if w == 0 || h == 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y+h)
	} else {
		p.Rect(x, y, w, h)
	}
	s.strokeDevice(&p.p)
}

// ClearRect makes a rectangle transparent. It honours the transformation
// and the clip but ignores compositing, global alpha and shadows.
func (s *Surface) ClearRect(x, y, w, h float64) {
	p := s.scratch()
	p.Rect(x, y, w, h)
	mask := raster.Fill(raster.Flatten(&p.p, raster.Tolerance), raster.NonZero, s.Width(), s.Height())
	raster.Intersect(mask, s.st.clip)

	area := raster.Bounds(mask)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := mask.Pix[mask.PixOffset(x, y)]
			if cov == 0 {
				continue
			}
			i := s.img.PixOffset(x, y)
			keep := 1 - float64(cov)/255
			for c := 0; c < 4; c++ {
				s.img.Pix[i+c] = uint8(math.Round(float64(s.img.Pix[i+c]) * keep))
			}
		}
	}
}

// Clear makes the whole surface transparent, ignoring the transformation
// and the clip.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// FillBackground paints st behind the existing content over the whole
// surface, ignoring the transformation, the clip and shadows. Style
// coordinates are surface pixels.
func (s *Surface) FillBackground(st Style) {
	saved := s.st
	s.st.ctm = Identity()
	s.st.clip = nil
	s.st.op = blend.DestinationOver
	s.st.globalAlpha = 1
	s.st.shadowColor = Transparent
	if paint, ok := s.painter(st); ok {
		s.composite(raster.Full(s.Width(), s.Height()), paint)
	}
	s.st = saved
}

// Line strokes a straight line from (x1, y1) to (x2, y2).
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	p := s.scratch()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	s.strokeDevice(&p.p)
}

// Polyline strokes a line through pts, such as points recorded from a
// pointer gesture.
func (s *Surface) Polyline(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p := s.scratch()
	p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float64(pt.X), float64(pt.Y))
	}
	if len(pts) == 1 {
		p.LineTo(float64(pts[0].X), float64(pts[0].Y))
	}
	s.strokeDevice(&p.p)
}

// FillCircle fills a circle with the fill style. Negative radii draw
// nothing.
func (s *Surface) FillCircle(x, y, r float64) {
	p := s.scratch()
	if err := p.Arc(x, y, r, 0, 2*math.Pi, false); err != nil {
		s.ignored("radius", r)
		return
	}
	p.ClosePath()
	s.fillDevice(&p.p, raster.NonZero, s.st.fill)
}

// StrokeCircle strokes a circle with the stroke style. Negative radii draw
// nothing.
func (s *Surface) StrokeCircle(x, y, r float64) {
	p := s.scratch()
	if err := p.Arc(x, y, r, 0, 2*math.Pi, false); err != nil {
		s.ignored("radius", r)
		return
	}
	p.ClosePath()
	s.strokeDevice(&p.p)
}

// QuadraticCurve strokes a quadratic Bézier curve from (x0, y0) to (x, y).
func (s *Surface) QuadraticCurve(x0, y0, cpx, cpy, x, y float64) {
	p := s.scratch()
	p.MoveTo(x0, y0)
	p.QuadraticCurveTo(cpx, cpy, x, y)
	s.strokeDevice(&p.p)
}

// BezierCurve strokes a cubic Bézier curve from (x0, y0) to (x, y).
func (s *Surface) BezierCurve(x0, y0, cp1x, cp1y, cp2x, cp2y, x, y float64) {
	p := s.scratch()
	p.MoveTo(x0, y0)
	p.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
	s.strokeDevice(&p.p)
}
