package canvas

import (
	"math"
	"testing"

	"github.com/gogpu/canvas/text"
)

func TestMeasureTextWidthScalesWithSize(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetFont("10px sans-serif")
	w10 := s.MeasureText("hello").Width
	s.SetFont("20px sans-serif")
	w20 := s.MeasureText("hello").Width

	if w10 <= 0 {
		t.Fatalf("width at 10px = %v, want positive", w10)
	}
	if math.Abs(w20-2*w10) > 0.5 {
		t.Errorf("width at 20px = %v, want about %v", w20, 2*w10)
	}
	if got := s.MeasureText("").Width; got != 0 {
		t.Errorf("empty string width = %v", got)
	}
}

func TestMeasureTextNormalizesWhitespace(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	a := s.MeasureText("a\tb\nc")
	b := s.MeasureText("a b c")
	if a.Width != b.Width {
		t.Errorf("tab and newline width %v, spaces %v", a.Width, b.Width)
	}
}

func TestMeasureTextBaselines(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetFont("20px sans-serif")

	alpha := s.MeasureText("Hg")
	if alpha.AlphabeticBaseline != 0 {
		t.Errorf("alphabetic AlphabeticBaseline = %v, want 0", alpha.AlphabeticBaseline)
	}
	if alpha.FontBoundingBoxAscent <= 0 || alpha.FontBoundingBoxDescent <= 0 {
		t.Errorf("font box = (%v, %v), want positive", alpha.FontBoundingBoxAscent, alpha.FontBoundingBoxDescent)
	}
	if alpha.ActualBoundingBoxAscent <= 0 || alpha.ActualBoundingBoxDescent <= 0 {
		t.Errorf("ink box ascent/descent = (%v, %v), want positive for \"Hg\"",
			alpha.ActualBoundingBoxAscent, alpha.ActualBoundingBoxDescent)
	}
	if alpha.ActualBoundingBoxAscent > alpha.FontBoundingBoxAscent+0.5 {
		t.Errorf("ink ascent %v exceeds font ascent %v", alpha.ActualBoundingBoxAscent, alpha.FontBoundingBoxAscent)
	}
	if alpha.HangingBaseline <= 0 || alpha.IdeographicBaseline >= 0 {
		t.Errorf("hanging %v, ideographic %v: want above and below the alphabetic baseline",
			alpha.HangingBaseline, alpha.IdeographicBaseline)
	}
	if em := alpha.EmHeightAscent + alpha.EmHeightDescent; math.Abs(em-20) > 1e-9 {
		t.Errorf("em height = %v, want 20", em)
	}

	s.SetTextBaseline(BaselineTop)
	top := s.MeasureText("Hg")
	if math.Abs(top.FontBoundingBoxAscent) > 1e-9 {
		t.Errorf("top FontBoundingBoxAscent = %v, want 0", top.FontBoundingBoxAscent)
	}
	if math.Abs(top.AlphabeticBaseline+alpha.FontBoundingBoxAscent) > 1e-9 {
		t.Errorf("top AlphabeticBaseline = %v, want %v", top.AlphabeticBaseline, -alpha.FontBoundingBoxAscent)
	}

	s.SetTextBaseline(BaselineBottom)
	bottom := s.MeasureText("Hg")
	if math.Abs(bottom.FontBoundingBoxDescent) > 1e-9 {
		t.Errorf("bottom FontBoundingBoxDescent = %v, want 0", bottom.FontBoundingBoxDescent)
	}

	s.SetTextBaseline(BaselineMiddle)
	mid := s.MeasureText("Hg")
	if math.Abs(mid.FontBoundingBoxAscent-mid.FontBoundingBoxDescent) > 1e-9 {
		t.Errorf("middle font box (%v, %v) is not centred", mid.FontBoundingBoxAscent, mid.FontBoundingBoxDescent)
	}
}

func TestMeasureTextAlignment(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	s.SetFont("20px sans-serif")

	left := s.MeasureText("HH")
	if left.ActualBoundingBoxLeft > 0 || left.ActualBoundingBoxRight <= 0 {
		t.Errorf("start alignment ink box (%v, %v)", left.ActualBoundingBoxLeft, left.ActualBoundingBoxRight)
	}

	s.SetTextAlign(AlignRight)
	right := s.MeasureText("HH")
	if right.ActualBoundingBoxRight > 0 || right.ActualBoundingBoxLeft <= 0 {
		t.Errorf("right alignment ink box (%v, %v)", right.ActualBoundingBoxLeft, right.ActualBoundingBoxRight)
	}

	s.SetTextAlign(AlignCenter)
	center := s.MeasureText("HH")
	if math.Abs(center.ActualBoundingBoxLeft-center.ActualBoundingBoxRight) > 1 {
		t.Errorf("centre alignment ink box (%v, %v) is lopsided",
			center.ActualBoundingBoxLeft, center.ActualBoundingBoxRight)
	}

	// In right-to-left text, start is the right edge.
	s.SetTextAlign(AlignStart)
	s.SetDirection(text.RTL)
	rtl := s.MeasureText("HH")
	if rtl.ActualBoundingBoxRight > 0 {
		t.Errorf("RTL start alignment ink right = %v, want <= 0", rtl.ActualBoundingBoxRight)
	}
}

func TestFillText(t *testing.T) {
	s := newTestSurface(t, 60, 30)
	s.SetFont("20px sans-serif")
	s.SetFillColor("red")
	s.FillText("Hi", 5, 22)

	if s.IsEmpty() {
		t.Fatal("FillText drew nothing")
	}
	r := s.TrimmingRect()
	w := s.MeasureText("Hi").Width
	if r.X < 5 || float64(r.Right()) > 5+w+1 {
		t.Errorf("ink spans x %d..%d, want within 5..%v", r.X, r.Right(), 5+w)
	}
	if r.Bottom() > 22 {
		t.Errorf("ink bottom %d is below the baseline", r.Bottom())
	}
	if !s.path.Empty() {
		t.Error("FillText touched the current path")
	}
}

func TestFillTextMax(t *testing.T) {
	s := newTestSurface(t, 200, 30)
	s.SetFont("20px sans-serif")
	s.FillTextMax("condensed", 0, 22, 0)
	s.FillTextMax("condensed", 0, 22, math.NaN())
	if !s.IsEmpty() {
		t.Fatal("a non-positive maxWidth drew text")
	}

	s.FillTextMax("condensed", 0, 22, 30)
	r := s.TrimmingRect()
	if r.Empty() || r.Right() > 31 {
		t.Errorf("condensed ink = %v, want within 30px", r)
	}
}

func TestFillTextRTLStart(t *testing.T) {
	s := newTestSurface(t, 100, 30)
	s.SetFont("20px sans-serif")
	s.SetDirection(text.RTL)
	s.FillText("abc", 80, 22)

	r := s.TrimmingRect()
	if r.Empty() || r.Right() > 81 {
		t.Errorf("RTL text ink = %v, want ending at x=80", r)
	}
}

func TestStrokeText(t *testing.T) {
	s := newTestSurface(t, 60, 30)
	s.SetFont("bold 20px sans-serif")
	s.SetStrokeColor("blue")
	s.StrokeText("O", 5, 22)
	if s.IsEmpty() {
		t.Fatal("StrokeText drew nothing")
	}
	s.Clear()
	s.StrokeTextMax("O", 5, 22, -1)
	if !s.IsEmpty() {
		t.Error("StrokeTextMax with negative width drew something")
	}
}
