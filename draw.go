package canvas

import (
	"github.com/gogpu/canvas/internal/raster"
)

// FillRule selects how overlapping subpaths combine.
type FillRule uint8

// Fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string { return raster.FillRule(r).String() }

// ParseFillRule parses "nonzero" or "evenodd".
func ParseFillRule(s string) (FillRule, bool) {
	switch s {
	case "nonzero":
		return NonZero, true
	case "evenodd":
		return EvenOdd, true
	}
	return NonZero, false
}

func (r FillRule) raster() raster.FillRule {
	if r == EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() { s.path.reset() }

// MoveTo begins a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

// LineTo adds a straight line to (x, y).
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

// QuadraticCurveTo adds a quadratic Bézier curve.
func (s *Surface) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.path.QuadraticCurveTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (s *Surface) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	s.path.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc to the current path. See Path.Arc.
func (s *Surface) Arc(x, y, r, start, end float64, counterclockwise bool) error {
	return s.path.Arc(x, y, r, start, end, counterclockwise)
}

// ArcTo adds a tangent arc to the current path. See Path.ArcTo.
func (s *Surface) ArcTo(x1, y1, x2, y2, r float64) error {
	return s.path.ArcTo(x1, y1, x2, y2, r)
}

// Ellipse adds an elliptical arc to the current path. See Path.Ellipse.
func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64, counterclockwise bool) error {
	return s.path.Ellipse(x, y, rx, ry, rotation, start, end, counterclockwise)
}

// Rect adds a closed rectangle to the current path.
func (s *Surface) Rect(x, y, w, h float64) { s.path.Rect(x, y, w, h) }

// RoundRect adds a rounded rectangle to the current path. See
// Path.RoundRect.
func (s *Surface) RoundRect(x, y, w, h float64, radii ...float64) error {
	return s.path.RoundRect(x, y, w, h, radii...)
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() { s.path.ClosePath() }

// Fill fills the current path with the fill style.
func (s *Surface) Fill(rule FillRule) {
	s.fillDevice(&s.path.p, rule.raster(), s.st.fill)
}

// FillPath fills p, transformed by the current transformation.
func (s *Surface) FillPath(p *Path, rule FillRule) {
	if p == nil {
		return
	}
	s.fillDevice(p.device(s.st.ctm), rule.raster(), s.st.fill)
}

// Stroke strokes the current path with the stroke style.
func (s *Surface) Stroke() {
	s.strokeDevice(&s.path.p)
}

// StrokePath strokes p, transformed by the current transformation.
func (s *Surface) StrokePath(p *Path) {
	if p == nil {
		return
	}
	s.strokeDevice(p.device(s.st.ctm))
}

// Clip intersects the clipping region with the current path.
func (s *Surface) Clip(rule FillRule) {
	s.clipDevice(&s.path.p, rule)
}

// ClipPath intersects the clipping region with p, transformed by the
// current transformation.
func (s *Surface) ClipPath(p *Path, rule FillRule) {
	if p == nil {
		return
	}
	s.clipDevice(p.device(s.st.ctm), rule)
}

func (s *Surface) clipDevice(p *raster.Path, rule FillRule) {
	mask := raster.Fill(raster.Flatten(p, raster.Tolerance), rule.raster(), s.Width(), s.Height())
	raster.Intersect(mask, s.st.clip)
	s.st.clip = mask
}

// IsPointInPath reports whether the point (x, y), in surface coordinates
// unaffected by the transformation, is inside the current path.
func (s *Surface) IsPointInPath(x, y float64, rule FillRule) bool {
	return s.pointInFill(&s.path.p, x, y, rule)
}

// IsPointInPathOf is IsPointInPath for p under the current transformation.
func (s *Surface) IsPointInPathOf(p *Path, x, y float64, rule FillRule) bool {
	if p == nil {
		return false
	}
	return s.pointInFill(p.device(s.st.ctm), x, y, rule)
}

func (s *Surface) pointInFill(p *raster.Path, x, y float64, rule FillRule) bool {
	if !finite(x, y) {
		return false
	}
	return raster.Contains(raster.Flatten(p, raster.Tolerance), rule.raster(), raster.Point{X: x, Y: y})
}

// IsPointInStroke reports whether the point (x, y), in surface coordinates,
// is inside the area the current path would cover if stroked.
func (s *Surface) IsPointInStroke(x, y float64) bool {
	return s.pointInStroke(&s.path.p, x, y)
}

// IsPointInStrokeOf is IsPointInStroke for p under the current
// transformation.
func (s *Surface) IsPointInStrokeOf(p *Path, x, y float64) bool {
	if p == nil {
		return false
	}
	return s.pointInStroke(p.device(s.st.ctm), x, y)
}

func (s *Surface) pointInStroke(p *raster.Path, x, y float64) bool {
	if !finite(x, y) {
		return false
	}
	return raster.Contains(s.strokeOutline(p), raster.NonZero, raster.Point{X: x, Y: y})
}
