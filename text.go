package canvas

import (
	"strings"

	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

// TextMetrics describes the dimensions of a piece of text as measured with
// the current font, alignment and baseline. Horizontal distances are
// relative to the alignment point and vertical ones to the anchor
// baseline, positive when above it.
type TextMetrics struct {
	Width float64

	ActualBoundingBoxLeft    float64
	ActualBoundingBoxRight   float64
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64

	FontBoundingBoxAscent  float64
	FontBoundingBoxDescent float64
	EmHeightAscent         float64
	EmHeightDescent        float64

	HangingBaseline     float64
	AlphabeticBaseline  float64
	IdeographicBaseline float64
}

// hangingRatio places the hanging baseline relative to the ascent.
const hangingRatio = 0.8

var whitespace = strings.NewReplacer("\t", " ", "\n", " ", "\f", " ", "\r", " ", "\v", " ")

// layout is text shaped and positioned for drawing or measuring.
type layout struct {
	face   *text.Face
	glyphs []text.Glyph
	m      text.Metrics
	width  float64
	dx, by float64 // offsets from the anchor to the line origin
	sx     float64
}

// layoutText shapes s with the current text properties. A positive
// maxWidth condenses the line to fit.
func (s *Surface) layoutText(str string, maxWidth float64) (layout, bool) {
	f := s.face()
	if f == nil || f.Typeface() == nil {
		return layout{}, false
	}
	str = whitespace.Replace(str)
	dir := s.st.direction.Resolve(str)
	l := layout{face: f, glyphs: f.Shape(str, dir), m: f.Metrics(), sx: 1}
	l.width = text.Advance(l.glyphs)

	w := l.width
	if maxWidth > 0 && w > maxWidth {
		l.sx = maxWidth / w
		w = maxWidth
	}

	switch a := s.st.textAlign; {
	case a == AlignRight,
		a == AlignStart && dir == text.RTL,
		a == AlignEnd && dir != text.RTL:
		l.dx = -w
	case a == AlignCenter:
		l.dx = -w / 2
	}

	switch s.st.textBaseline {
	case BaselineTop:
		l.by = l.m.Ascent
	case BaselineHanging:
		l.by = hangingRatio * l.m.Ascent
	case BaselineMiddle:
		l.by = (l.m.Ascent - l.m.Descent) / 2
	case BaselineIdeographic, BaselineBottom:
		l.by = -l.m.Descent
	}
	return l, true
}

// textPath outlines laid out text anchored at (x, y) in user space.
func (s *Surface) textPath(l layout, x, y float64) *Path {
	p := s.scratch()
	l.face.Outline(p, l.glyphs, x+l.dx, y+l.by, l.sx)
	return p
}

// FillText fills str anchored at (x, y) with the fill style.
func (s *Surface) FillText(str string, x, y float64) {
	s.fillText(str, x, y, 0)
}

// FillTextMax is FillText condensing the text horizontally to at most
// maxWidth. A maxWidth that is not positive draws nothing.
func (s *Surface) FillTextMax(str string, x, y, maxWidth float64) {
	if !(maxWidth > 0) {
		return
	}
	s.fillText(str, x, y, maxWidth)
}

func (s *Surface) fillText(str string, x, y, maxWidth float64) {
	if !finite(x, y) {
		return
	}
	l, ok := s.layoutText(str, maxWidth)
	if !ok || len(l.glyphs) == 0 {
		return
	}
	p := s.textPath(l, x, y)
	s.fillDevice(&p.p, raster.NonZero, s.st.fill)
}

// StrokeText strokes the outlines of str anchored at (x, y) with the
// stroke style.
func (s *Surface) StrokeText(str string, x, y float64) {
	s.strokeText(str, x, y, 0)
}

// StrokeTextMax is StrokeText condensing the text horizontally to at most
// maxWidth. A maxWidth that is not positive draws nothing.
func (s *Surface) StrokeTextMax(str string, x, y, maxWidth float64) {
	if !(maxWidth > 0) {
		return
	}
	s.strokeText(str, x, y, maxWidth)
}

func (s *Surface) strokeText(str string, x, y, maxWidth float64) {
	if !finite(x, y) {
		return
	}
	l, ok := s.layoutText(str, maxWidth)
	if !ok || len(l.glyphs) == 0 {
		return
	}
	p := s.textPath(l, x, y)
	s.strokeDevice(&p.p)
}

// MeasureText measures str with the current font, alignment and baseline.
func (s *Surface) MeasureText(str string) TextMetrics {
	l, ok := s.layoutText(str, 0)
	if !ok {
		return TextMetrics{}
	}
	m := l.m
	tm := TextMetrics{
		Width:                  l.width,
		FontBoundingBoxAscent:  m.Ascent - l.by,
		FontBoundingBoxDescent: m.Descent + l.by,
		HangingBaseline:        hangingRatio*m.Ascent - l.by,
		AlphabeticBaseline:     -l.by,
		IdeographicBaseline:    -(m.Descent + l.by),
	}

	emAscent, emDescent := l.face.Size(), 0.0
	if total := m.Ascent + m.Descent; total > 0 {
		emAscent = l.face.Size() * m.Ascent / total
		emDescent = l.face.Size() - emAscent
	}
	tm.EmHeightAscent = emAscent - l.by
	tm.EmHeightDescent = emDescent + l.by

	if ink := l.face.Bounds(l.glyphs); !ink.Empty {
		tm.ActualBoundingBoxLeft = -(l.dx + ink.MinX)
		tm.ActualBoundingBoxRight = l.dx + ink.MaxX
		tm.ActualBoundingBoxAscent = -(l.by + ink.MinY)
		tm.ActualBoundingBoxDescent = l.by + ink.MaxY
	}
	return tm
}
