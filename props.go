package canvas

import (
	"math"
	"slices"

	"github.com/gogpu/canvas/coerce"
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/text"
)

// Property setters follow the canvas convention: values that cannot be used
// are ignored and the previous value stays in effect.

func (s *Surface) ignored(prop string, v any) {
	Logger().Warn("canvas: ignored property value", "property", prop, "value", v)
}

// FillStyle returns the paint used by fills.
func (s *Surface) FillStyle() Style { return s.st.fill }

// SetFillStyle sets the paint used by fills. A nil style is ignored.
func (s *Surface) SetFillStyle(st Style) {
	if st == nil {
		s.ignored("fillStyle", st)
		return
	}
	s.st.fill = st
}

// SetFillColor sets the fill paint to a CSS colour.
func (s *Surface) SetFillColor(css string) {
	if c, err := ParseColor(css); err == nil {
		s.st.fill = c
	} else {
		s.ignored("fillStyle", css)
	}
}

// StrokeStyle returns the paint used by strokes.
func (s *Surface) StrokeStyle() Style { return s.st.stroke }

// SetStrokeStyle sets the paint used by strokes. A nil style is ignored.
func (s *Surface) SetStrokeStyle(st Style) {
	if st == nil {
		s.ignored("strokeStyle", st)
		return
	}
	s.st.stroke = st
}

// SetStrokeColor sets the stroke paint to a CSS colour.
func (s *Surface) SetStrokeColor(css string) {
	if c, err := ParseColor(css); err == nil {
		s.st.stroke = c
	} else {
		s.ignored("strokeStyle", css)
	}
}

// positive coerces v, keeping cur when v is not a positive finite number.
func positive(v, cur float64) float64 {
	n := coerce.Number(v, coerce.Options{NaN: coerce.Some(cur), Infinity: coerce.Some(cur)})
	if n <= 0 {
		return cur
	}
	return n
}

// LineWidth returns the stroke width in user units.
func (s *Surface) LineWidth() float64 { return s.st.lineWidth }

// SetLineWidth sets the stroke width. Zero, negative and non-finite widths
// are ignored.
func (s *Surface) SetLineWidth(w float64) {
	s.st.lineWidth = positive(w, s.st.lineWidth)
}

// LineCap returns the cap style.
func (s *Surface) LineCap() LineCap { return s.st.lineCap }

// SetLineCap sets the cap style.
func (s *Surface) SetLineCap(c LineCap) {
	if c > CapSquare {
		s.ignored("lineCap", c)
		return
	}
	s.st.lineCap = c
}

// LineJoin returns the join style.
func (s *Surface) LineJoin() LineJoin { return s.st.lineJoin }

// SetLineJoin sets the join style.
func (s *Surface) SetLineJoin(j LineJoin) {
	if j > JoinBevel {
		s.ignored("lineJoin", j)
		return
	}
	s.st.lineJoin = j
}

// MiterLimit returns the miter limit ratio.
func (s *Surface) MiterLimit() float64 { return s.st.miterLimit }

// SetMiterLimit sets the miter limit ratio. Zero, negative and non-finite
// values are ignored.
func (s *Surface) SetMiterLimit(v float64) {
	s.st.miterLimit = positive(v, s.st.miterLimit)
}

// LineDash returns a copy of the dash pattern. An odd pattern is reported
// doubled.
func (s *Surface) LineDash() []float64 {
	return slices.Clone(s.st.dash)
}

// SetLineDash sets the dash pattern in user units. A pattern with a
// negative or non-finite entry is ignored; an empty pattern draws solid
// lines.
func (s *Surface) SetLineDash(segments []float64) {
	for _, v := range segments {
		if v < 0 || !finite(v) {
			s.ignored("lineDash", segments)
			return
		}
	}
	dash := slices.Clone(segments)
	if len(dash)%2 == 1 {
		dash = append(dash, dash...)
	}
	s.st.dash = dash
}

// LineDashOffset returns the dash phase.
func (s *Surface) LineDashOffset() float64 { return s.st.dashOffset }

// SetLineDashOffset sets the dash phase. Non-finite values are ignored.
func (s *Surface) SetLineDashOffset(v float64) {
	s.st.dashOffset = coerce.Number(v, coerce.Options{
		NaN:      coerce.Some(s.st.dashOffset),
		Infinity: coerce.Some(s.st.dashOffset),
	})
}

// Font returns the font shorthand, serialized.
func (s *Surface) Font() string { return s.st.font.String() }

// FontSpec returns the parsed font.
func (s *Surface) FontSpec() text.Font { return s.st.font }

// SetFont sets the font from a CSS shorthand such as "bold 16px serif".
// Shorthands that do not parse are ignored.
func (s *Surface) SetFont(shorthand string) {
	f, err := text.ParseFont(shorthand)
	if err != nil {
		s.ignored("font", shorthand)
		return
	}
	s.st.font = f
	s.st.face = nil
}

func (s *Surface) face() *text.Face {
	if s.st.face == nil {
		s.st.face = s.fonts.Resolve(s.st.font)
	}
	return s.st.face
}

// TextAlign returns the horizontal text anchor.
func (s *Surface) TextAlign() TextAlign { return s.st.textAlign }

// SetTextAlign sets the horizontal text anchor.
func (s *Surface) SetTextAlign(a TextAlign) {
	if a > AlignCenter {
		s.ignored("textAlign", a)
		return
	}
	s.st.textAlign = a
}

// TextBaseline returns the vertical text anchor.
func (s *Surface) TextBaseline() TextBaseline { return s.st.textBaseline }

// SetTextBaseline sets the vertical text anchor.
func (s *Surface) SetTextBaseline(b TextBaseline) {
	if b > BaselineBottom {
		s.ignored("textBaseline", b)
		return
	}
	s.st.textBaseline = b
}

// Direction returns the text direction.
func (s *Surface) Direction() text.Direction { return s.st.direction }

// SetDirection sets the text direction.
func (s *Surface) SetDirection(d text.Direction) {
	if d > text.RTL {
		s.ignored("direction", d)
		return
	}
	s.st.direction = d
}

// GlobalAlpha returns the alpha applied to everything drawn.
func (s *Surface) GlobalAlpha() float64 { return s.st.globalAlpha }

// SetGlobalAlpha sets the alpha applied to everything drawn, clamped to
// [0, 1]. NaN is ignored.
func (s *Surface) SetGlobalAlpha(a float64) {
	s.st.globalAlpha = coerce.Number(a, coerce.Options{
		Min: coerce.Some(0),
		Max: coerce.Some(1),
		NaN: coerce.Some(s.st.globalAlpha),
	})
}

// GlobalCompositeOperation returns the compositing operator keyword.
func (s *Surface) GlobalCompositeOperation() string { return s.st.op.String() }

// SetGlobalCompositeOperation sets the compositing operator, such as
// "source-over", "destination-out" or "multiply". Unknown keywords are
// ignored.
func (s *Surface) SetGlobalCompositeOperation(op string) {
	o, ok := blend.Parse(op)
	if !ok {
		s.ignored("globalCompositeOperation", op)
		return
	}
	s.st.op = o
}

// ShadowBlur returns the shadow blur level.
func (s *Surface) ShadowBlur() float64 { return s.st.shadowBlur }

// SetShadowBlur sets the shadow blur level. Negative and non-finite values
// are ignored.
func (s *Surface) SetShadowBlur(v float64) {
	if v < 0 || !finite(v) {
		s.ignored("shadowBlur", v)
		return
	}
	s.st.shadowBlur = v
}

// ShadowColor returns the shadow colour.
func (s *Surface) ShadowColor() RGBA { return s.st.shadowColor }

// SetShadowColor sets the shadow colour from a CSS colour.
func (s *Surface) SetShadowColor(css string) {
	c, err := ParseColor(css)
	if err != nil {
		s.ignored("shadowColor", css)
		return
	}
	s.st.shadowColor = c
}

// ShadowOffsetX returns the horizontal shadow offset.
func (s *Surface) ShadowOffsetX() float64 { return s.st.shadowOffsetX }

// SetShadowOffsetX sets the horizontal shadow offset in device pixels.
// Non-finite values are ignored.
func (s *Surface) SetShadowOffsetX(v float64) {
	s.st.shadowOffsetX = coerce.Number(v, coerce.Options{
		NaN:      coerce.Some(s.st.shadowOffsetX),
		Infinity: coerce.Some(s.st.shadowOffsetX),
	})
}

// ShadowOffsetY returns the vertical shadow offset.
func (s *Surface) ShadowOffsetY() float64 { return s.st.shadowOffsetY }

// SetShadowOffsetY sets the vertical shadow offset in device pixels.
// Non-finite values are ignored.
func (s *Surface) SetShadowOffsetY(v float64) {
	s.st.shadowOffsetY = coerce.Number(v, coerce.Options{
		NaN:      coerce.Some(s.st.shadowOffsetY),
		Infinity: coerce.Some(s.st.shadowOffsetY),
	})
}

// ImageSmoothingEnabled reports whether scaled images are filtered.
func (s *Surface) ImageSmoothingEnabled() bool { return s.st.smoothing }

// SetImageSmoothingEnabled turns image filtering on or off.
func (s *Surface) SetImageSmoothingEnabled(on bool) { s.st.smoothing = on }

// ImageSmoothingQuality returns the filter quality for scaled images.
func (s *Surface) ImageSmoothingQuality() SmoothingQuality { return s.st.quality }

// SetImageSmoothingQuality sets the filter quality for scaled images.
func (s *Surface) SetImageSmoothingQuality(q SmoothingQuality) {
	if q > QualityHigh {
		s.ignored("imageSmoothingQuality", q)
		return
	}
	s.st.quality = q
}

// GetTransform returns the current transformation matrix.
func (s *Surface) GetTransform() Matrix { return s.st.ctm }

func (s *Surface) setCTM(m Matrix) {
	if !m.IsFinite() {
		s.ignored("transform", m)
		return
	}
	s.st.ctm = m
	s.path.setMatrix(m)
}

// SetTransform replaces the transformation matrix.
func (s *Surface) SetTransform(a, b, c, d, e, f float64) {
	s.setCTM(Matrix{A: a, B: b, C: c, D: d, E: e, F: f})
}

// SetTransformMatrix replaces the transformation matrix.
func (s *Surface) SetTransformMatrix(m Matrix) {
	s.setCTM(m)
}

// ResetTransform restores the identity transformation.
func (s *Surface) ResetTransform() {
	s.setCTM(Identity())
}

// Transform multiplies the transformation by the given matrix.
func (s *Surface) Transform(a, b, c, d, e, f float64) {
	s.setCTM(s.st.ctm.Multiply(Matrix{A: a, B: b, C: c, D: d, E: e, F: f}))
}

// Translate moves the origin by (x, y).
func (s *Surface) Translate(x, y float64) {
	s.setCTM(s.st.ctm.Multiply(Translate(x, y)))
}

// Scale scales user space by (x, y).
func (s *Surface) Scale(x, y float64) {
	s.setCTM(s.st.ctm.Multiply(Scale(x, y)))
}

// Rotate rotates user space clockwise by angle radians.
func (s *Surface) Rotate(angle float64) {
	s.setCTM(s.st.ctm.Multiply(Rotate(angle)))
}

// RotateDegrees rotates user space clockwise by deg degrees.
func (s *Surface) RotateDegrees(deg float64) {
	s.Rotate(deg * math.Pi / 180)
}
