package canvas

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/canvas/text"
)

func TestDefaultState(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	checks := []struct {
		name      string
		got, want any
	}{
		{"fillStyle", s.FillStyle(), Style(Black)},
		{"strokeStyle", s.StrokeStyle(), Style(Black)},
		{"lineWidth", s.LineWidth(), 1.0},
		{"lineCap", s.LineCap(), CapButt},
		{"lineJoin", s.LineJoin(), JoinMiter},
		{"miterLimit", s.MiterLimit(), 10.0},
		{"lineDashOffset", s.LineDashOffset(), 0.0},
		{"font", s.Font(), "10px sans-serif"},
		{"textAlign", s.TextAlign(), AlignStart},
		{"textBaseline", s.TextBaseline(), BaselineAlphabetic},
		{"direction", s.Direction(), text.Inherit},
		{"globalAlpha", s.GlobalAlpha(), 1.0},
		{"globalCompositeOperation", s.GlobalCompositeOperation(), "source-over"},
		{"shadowBlur", s.ShadowBlur(), 0.0},
		{"shadowColor", s.ShadowColor(), Transparent},
		{"imageSmoothingEnabled", s.ImageSmoothingEnabled(), true},
		{"imageSmoothingQuality", s.ImageSmoothingQuality(), QualityLow},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("default %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestSetLineWidthIgnoresInvalid(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetLineWidth(3)
	for _, v := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		s.SetLineWidth(v)
		if s.LineWidth() != 3 {
			t.Errorf("SetLineWidth(%v) changed width to %v", v, s.LineWidth())
		}
	}
	s.SetMiterLimit(-1)
	if s.MiterLimit() != 10 {
		t.Errorf("SetMiterLimit(-1) changed limit to %v", s.MiterLimit())
	}
}

func TestSetGlobalAlphaClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{2, 1},
		{-1, 0},
		{math.NaN(), 0}, // unchanged from the previous case
		{math.Inf(1), 1},
	}
	s := newTestSurface(t, 1, 1)
	for _, tt := range tests {
		s.SetGlobalAlpha(tt.in)
		if got := s.GlobalAlpha(); got != tt.want {
			t.Errorf("SetGlobalAlpha(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLineDash(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetLineDash([]float64{3})
	if diff := cmp.Diff([]float64{3, 3}, s.LineDash()); diff != "" {
		t.Errorf("odd pattern mismatch (-want +got):\n%s", diff)
	}

	s.SetLineDash([]float64{1, -1})
	s.SetLineDash([]float64{1, math.NaN()})
	if diff := cmp.Diff([]float64{3, 3}, s.LineDash()); diff != "" {
		t.Errorf("invalid pattern was applied (-want +got):\n%s", diff)
	}

	// The returned slice is a copy.
	s.LineDash()[0] = 99
	if s.LineDash()[0] != 3 {
		t.Error("LineDash exposes internal state")
	}

	s.SetLineDashOffset(math.Inf(-1))
	if s.LineDashOffset() != 0 {
		t.Errorf("non-finite dash offset applied: %v", s.LineDashOffset())
	}
}

func TestSetFont(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetFont("italic bold 12pt Georgia, serif")
	if got, want := s.Font(), "italic bold 16px Georgia, serif"; got != want {
		t.Errorf("Font() = %q, want %q", got, want)
	}
	if !s.FontSpec().Italic() || !s.FontSpec().Bold() {
		t.Errorf("FontSpec() = %+v, want italic bold", s.FontSpec())
	}

	s.SetFont("sixteen pixels")
	if got := s.Font(); got != "italic bold 16px Georgia, serif" {
		t.Errorf("invalid font changed Font() to %q", got)
	}
}

func TestSetCompositeOperation(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetGlobalCompositeOperation("multiply")
	s.SetGlobalCompositeOperation("bogus")
	if got := s.GlobalCompositeOperation(); got != "multiply" {
		t.Errorf("GlobalCompositeOperation() = %q, want multiply", got)
	}
}

func TestShadowSetters(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetShadowBlur(4)
	s.SetShadowBlur(-1)
	s.SetShadowBlur(math.NaN())
	if s.ShadowBlur() != 4 {
		t.Errorf("ShadowBlur() = %v, want 4", s.ShadowBlur())
	}

	s.SetShadowOffsetX(2.5)
	s.SetShadowOffsetX(math.Inf(1))
	s.SetShadowOffsetY(-3)
	s.SetShadowOffsetY(math.NaN())
	if s.ShadowOffsetX() != 2.5 || s.ShadowOffsetY() != -3 {
		t.Errorf("shadow offsets = (%v, %v), want (2.5, -3)", s.ShadowOffsetX(), s.ShadowOffsetY())
	}

	s.SetShadowColor("rgba(0, 0, 0, 0.5)")
	s.SetShadowColor("???")
	if got := s.ShadowColor().String(); got != "rgba(0, 0, 0, 0.502)" {
		t.Errorf("ShadowColor() = %s", got)
	}
}

func TestEnumSetters(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetLineCap(CapRound)
	s.SetLineCap(LineCap(9))
	s.SetLineJoin(JoinBevel)
	s.SetLineJoin(LineJoin(9))
	s.SetTextAlign(AlignCenter)
	s.SetTextAlign(TextAlign(9))
	s.SetTextBaseline(BaselineMiddle)
	s.SetTextBaseline(TextBaseline(9))
	s.SetDirection(text.RTL)
	s.SetDirection(text.Direction(9))
	s.SetImageSmoothingQuality(QualityHigh)
	s.SetImageSmoothingQuality(SmoothingQuality(9))

	if s.LineCap() != CapRound || s.LineJoin() != JoinBevel || s.TextAlign() != AlignCenter ||
		s.TextBaseline() != BaselineMiddle || s.Direction() != text.RTL ||
		s.ImageSmoothingQuality() != QualityHigh {
		t.Error("an out-of-range enum value replaced a valid setting")
	}
}

func TestKeywordParsing(t *testing.T) {
	if c, ok := ParseLineCap("square"); !ok || c != CapSquare || c.String() != "square" {
		t.Errorf("ParseLineCap(square) = %v, %v", c, ok)
	}
	if j, ok := ParseLineJoin("round"); !ok || j != JoinRound {
		t.Errorf("ParseLineJoin(round) = %v, %v", j, ok)
	}
	if a, ok := ParseTextAlign("end"); !ok || a != AlignEnd {
		t.Errorf("ParseTextAlign(end) = %v, %v", a, ok)
	}
	if b, ok := ParseTextBaseline("hanging"); !ok || b != BaselineHanging {
		t.Errorf("ParseTextBaseline(hanging) = %v, %v", b, ok)
	}
	if q, ok := ParseSmoothingQuality("medium"); !ok || q != QualityMedium {
		t.Errorf("ParseSmoothingQuality(medium) = %v, %v", q, ok)
	}
	if r, ok := ParseFillRule("evenodd"); !ok || r != EvenOdd || r.String() != "evenodd" {
		t.Errorf("ParseFillRule(evenodd) = %v, %v", r, ok)
	}
	for _, bad := range []string{"", "Butt", "miter "} {
		if _, ok := ParseLineCap(bad); ok {
			t.Errorf("ParseLineCap(%q) accepted", bad)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetLineWidth(3)
	s.SetFillColor("red")
	s.Translate(5, 5)
	s.SetLineDash([]float64{1, 2})
	s.Save()

	s.SetLineWidth(7)
	s.SetFillColor("blue")
	s.Rotate(1)
	s.SetLineDash([]float64{4, 4})
	s.Restore()

	if s.LineWidth() != 3 {
		t.Errorf("LineWidth() = %v after Restore, want 3", s.LineWidth())
	}
	if s.FillStyle() != MustParseColor("red") {
		t.Errorf("FillStyle() = %v after Restore, want red", s.FillStyle())
	}
	if s.GetTransform() != Translate(5, 5) {
		t.Errorf("GetTransform() = %+v after Restore", s.GetTransform())
	}
	if diff := cmp.Diff([]float64{1, 2}, s.LineDash()); diff != "" {
		t.Errorf("LineDash after Restore (-want +got):\n%s", diff)
	}

	// Unbalanced Restore is a no-op.
	s.Restore()
	if s.LineWidth() != 3 {
		t.Error("unbalanced Restore changed the state")
	}
}

func TestReset(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.FillRect(0, 0, 4, 4)
	s.SetLineWidth(9)
	s.Save()
	s.Rect(0, 0, 1, 1)
	s.Reset()

	if !s.IsEmpty() || s.LineWidth() != 1 || !s.path.Empty() || len(s.stack) != 0 {
		t.Error("Reset did not restore a blank surface with default state")
	}
}
