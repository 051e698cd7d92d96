package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFillRect(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetFillColor("red")
	s.FillRect(2, 2, 6, 6)

	checkPixel(t, s, 5, 5, opaqueRed, 0)
	checkPixel(t, s, 2, 2, opaqueRed, 0)
	checkPixel(t, s, 7, 7, opaqueRed, 0)
	checkPixel(t, s, 1, 5, clearPixel, 0)
	checkPixel(t, s, 8, 5, clearPixel, 0)
	if !s.path.Empty() {
		t.Error("FillRect touched the current path")
	}
}

func TestFillRectUnderTransform(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetFillColor("red")
	s.Scale(2, 2)
	s.FillRect(1, 1, 2, 2)

	checkPixel(t, s, 2, 2, opaqueRed, 0)
	checkPixel(t, s, 5, 5, opaqueRed, 0)
	checkPixel(t, s, 6, 6, clearPixel, 0)
	checkPixel(t, s, 1, 1, clearPixel, 0)
}

func TestStrokeRect(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetStrokeColor("blue")
	s.SetLineWidth(2)
	s.StrokeRect(2, 2, 6, 6)

	checkPixel(t, s, 1, 5, opaqueBlue, 0)
	checkPixel(t, s, 2, 5, opaqueBlue, 0)
	checkPixel(t, s, 5, 1, opaqueBlue, 0)
	checkPixel(t, s, 8, 5, opaqueBlue, 0)
	checkPixel(t, s, 5, 5, clearPixel, 0)
	checkPixel(t, s, 1, 1, opaqueBlue, 0) // miter corner
}

func TestStrokeRectDegenerate(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetLineWidth(2)
	s.StrokeRect(5, 5, 0, 0)
	if !s.IsEmpty() {
		t.Error("a zero-sized rectangle drew something")
	}

	// One zero side strokes a line with butt caps.
	s.StrokeRect(2, 2, 6, 0)
	checkPixel(t, s, 5, 1, opaqueBlack, 0)
	checkPixel(t, s, 5, 2, opaqueBlack, 0)
	checkPixel(t, s, 5, 3, clearPixel, 0)
	checkPixel(t, s, 1, 2, clearPixel, 0)
}

func TestClearRect(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetFillColor("red")
	s.FillRect(0, 0, 10, 10)
	s.SetGlobalAlpha(0.1)
	s.SetGlobalCompositeOperation("lighter")
	s.ClearRect(2, 2, 3, 3)

	checkPixel(t, s, 3, 3, clearPixel, 0)
	checkPixel(t, s, 6, 6, opaqueRed, 0)
}

func TestClearAndFillBackground(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetFillColor("red")
	s.FillRect(0, 0, 2, 2)
	s.Translate(100, 100)
	s.FillBackground(White)

	checkPixel(t, s, 1, 1, opaqueRed, 0)
	checkPixel(t, s, 5, 5, color.NRGBA{255, 255, 255, 255}, 0)
	if s.GlobalCompositeOperation() != "source-over" {
		t.Errorf("FillBackground left operator %q", s.GlobalCompositeOperation())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("Clear left pixels behind")
	}
}

func TestLineAndPolyline(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetStrokeColor("red")
	s.SetLineWidth(2)
	s.Line(0, 5, 20, 5)
	checkPixel(t, s, 10, 4, opaqueRed, 0)
	checkPixel(t, s, 10, 5, opaqueRed, 0)
	checkPixel(t, s, 10, 6, clearPixel, 0)

	s.SetStrokeColor("blue")
	s.Polyline([]Point{Pt(0, 15), Pt(10, 15), Pt(10, 0)})
	checkPixel(t, s, 5, 14, opaqueBlue, 0)
	checkPixel(t, s, 10, 10, opaqueBlue, 0)
	s.Polyline(nil)
}

func TestCircles(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetFillColor("red")
	s.FillCircle(10, 10, 6)
	checkPixel(t, s, 10, 10, opaqueRed, 0)
	checkPixel(t, s, 10, 5, opaqueRed, 0)
	checkPixel(t, s, 2, 2, clearPixel, 0)

	s.SetStrokeColor("blue")
	s.SetLineWidth(2)
	s.StrokeCircle(10, 10, 6)
	checkPixel(t, s, 16, 10, opaqueBlue, 60)
	checkPixel(t, s, 10, 10, opaqueRed, 0)

	before := s.Clone()
	s.FillCircle(10, 10, -1)
	if got, want := s.At(10, 10), before.At(10, 10); got != want {
		t.Error("negative radius drew something")
	}
}

func TestCurves(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetLineWidth(2)
	s.QuadraticCurve(0, 10, 10, 10, 20, 10)
	checkPixel(t, s, 10, 9, opaqueBlack, 0)

	s.Clear()
	s.BezierCurve(0, 10, 5, 10, 15, 10, 20, 10)
	checkPixel(t, s, 10, 10, opaqueBlack, 0)
}

func TestLineDash(t *testing.T) {
	s := newTestSurface(t, 30, 10)
	s.SetStrokeColor("red")
	s.SetLineWidth(2)
	s.SetLineDash([]float64{5, 5})
	s.Line(0, 5, 30, 5)

	checkPixel(t, s, 2, 5, opaqueRed, 0)
	checkPixel(t, s, 7, 5, clearPixel, 0)
	checkPixel(t, s, 12, 5, opaqueRed, 0)

	s.Clear()
	s.SetLineDashOffset(5)
	s.Line(0, 5, 30, 5)
	checkPixel(t, s, 2, 5, clearPixel, 0)
	checkPixel(t, s, 7, 5, opaqueRed, 0)
}

func TestStrokeWidthScalesWithTransform(t *testing.T) {
	s := newTestSurface(t, 30, 30)
	s.SetStrokeColor("red")
	s.Scale(2, 2)
	s.Line(0, 5, 10, 5)

	checkPixel(t, s, 5, 9, opaqueRed, 0)
	checkPixel(t, s, 5, 10, opaqueRed, 0)
	checkPixel(t, s, 5, 11, clearPixel, 0)
	checkPixel(t, s, 5, 8, clearPixel, 0)
}

func TestFillRules(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetFillColor("red")
	s.Rect(0, 0, 20, 20)
	s.Rect(5, 5, 10, 10)
	s.Fill(EvenOdd)
	checkPixel(t, s, 2, 2, opaqueRed, 0)
	checkPixel(t, s, 10, 10, clearPixel, 0)

	s.Fill(NonZero)
	checkPixel(t, s, 10, 10, opaqueRed, 0)
}

func TestHugeGeometry(t *testing.T) {
	for _, v := range []float64{1e6, 1e7, 1e12} {
		s := newTestSurface(t, 20, 20)
		s.SetFillColor("red")
		s.FillRect(-v, -v, 2*v, 2*v)
		checkPixel(t, s, 5, 5, opaqueRed, 0)
		checkPixel(t, s, 19, 19, opaqueRed, 0)

		for _, rule := range []FillRule{NonZero, EvenOdd} {
			s.Clear()
			s.BeginPath()
			s.Rect(-v, -v, 2*v, 2*v)
			s.Fill(rule)
			checkPixel(t, s, 5, 5, opaqueRed, 0)
		}

		s.Clear()
		s.SetStrokeColor("blue")
		s.SetLineWidth(v)
		s.Line(0, 10, 20, 10)
		checkPixel(t, s, 5, 5, opaqueBlue, 0)
		checkPixel(t, s, 15, 0, opaqueBlue, 0)
	}
}

func TestGlobalAlpha(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.SetFillColor("red")
	s.SetGlobalAlpha(0.5)
	s.FillRect(0, 0, 4, 4)
	checkPixel(t, s, 1, 1, color.NRGBA{255, 0, 0, 128}, 1)
}

func TestCompositeOperations(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		in, out  color.NRGBA // pixel inside and outside the source rectangle
		dstColor string
		srcColor string
	}{
		{"source-over", "source-over", opaqueBlue, opaqueRed, "red", "blue"},
		{"destination-over", "destination-over", opaqueRed, opaqueRed, "red", "blue"},
		{"destination-out", "destination-out", clearPixel, opaqueRed, "red", "blue"},
		{"copy", "copy", opaqueBlue, clearPixel, "red", "blue"},
		{"source-in", "source-in", opaqueBlue, clearPixel, "red", "blue"},
		{"destination-in", "destination-in", opaqueRed, clearPixel, "red", "blue"},
		{"xor", "xor", clearPixel, opaqueRed, "red", "blue"},
		{"multiply", "multiply", opaqueGreen, color.NRGBA{255, 255, 0, 255}, "yellow", "cyan"},
		{"screen", "screen", color.NRGBA{255, 0, 255, 255}, opaqueRed, "red", "blue"},
		{"lighter", "lighter", color.NRGBA{255, 0, 255, 255}, opaqueRed, "red", "blue"},
		{"difference", "difference", color.NRGBA{255, 255, 0, 255}, color.NRGBA{255, 255, 255, 255}, "white", "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(t, 10, 10)
			s.SetFillColor(tt.dstColor)
			s.FillRect(0, 0, 10, 10)
			s.SetGlobalCompositeOperation(tt.op)
			if s.GlobalCompositeOperation() != tt.op {
				t.Fatalf("operator = %q, want %q", s.GlobalCompositeOperation(), tt.op)
			}
			s.SetFillColor(tt.srcColor)
			s.FillRect(0, 0, 5, 10)

			checkPixel(t, s, 2, 5, tt.in, 1)
			checkPixel(t, s, 7, 5, tt.out, 1)
		})
	}
}

func TestClip(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.Save()
	s.Rect(0, 0, 5, 10)
	s.Clip(NonZero)
	s.SetFillColor("red")
	s.FillRect(0, 0, 10, 10)
	checkPixel(t, s, 2, 2, opaqueRed, 0)
	checkPixel(t, s, 7, 7, clearPixel, 0)

	// Clips intersect.
	s.BeginPath()
	s.Rect(0, 0, 10, 5)
	s.Clip(NonZero)
	s.SetFillColor("blue")
	s.FillRect(0, 0, 10, 10)
	checkPixel(t, s, 2, 2, opaqueBlue, 0)
	checkPixel(t, s, 2, 7, opaqueRed, 0)

	s.Restore()
	s.SetFillColor("lime")
	s.FillRect(0, 0, 10, 10)
	checkPixel(t, s, 7, 7, opaqueGreen, 0)
}

func TestUnboundedOperatorRespectsClip(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetFillColor("red")
	s.FillRect(0, 0, 10, 10)
	s.Rect(0, 0, 10, 5)
	s.Clip(NonZero)
	s.SetGlobalCompositeOperation("copy")
	s.SetFillColor("blue")
	s.FillRect(0, 0, 2, 2)

	checkPixel(t, s, 1, 1, opaqueBlue, 0)
	checkPixel(t, s, 7, 2, clearPixel, 0)
	checkPixel(t, s, 7, 7, opaqueRed, 0)
}

func TestShadowOffset(t *testing.T) {
	s := newTestSurface(t, 12, 6)
	s.SetFillColor("red")
	s.SetShadowColor("black")
	s.SetShadowOffsetX(5)
	s.FillRect(0, 0, 3, 3)

	checkPixel(t, s, 1, 1, opaqueRed, 0)
	checkPixel(t, s, 6, 1, opaqueBlack, 0)
	checkPixel(t, s, 4, 1, clearPixel, 0)
	checkPixel(t, s, 6, 4, clearPixel, 0)
}

func TestShadowBlur(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetFillColor("red")
	s.SetShadowColor("black")
	s.SetShadowBlur(4)
	s.FillRect(6, 6, 8, 8)

	checkPixel(t, s, 10, 10, opaqueRed, 0)
	if a := s.At(5, 10).A; a == 0 || a == 255 {
		t.Errorf("blurred shadow alpha next to the shape = %d, want partial", a)
	}
	if a := s.At(0, 0).A; a > s.At(5, 10).A {
		t.Errorf("shadow grows away from the shape: corner %d", a)
	}
}

func TestShadowInvisibleByDefault(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetShadowOffsetX(3)
	s.SetShadowBlur(2)
	s.FillRect(0, 0, 2, 2)
	checkPixel(t, s, 4, 1, clearPixel, 0)
}

func TestGradientFill(t *testing.T) {
	s := newTestSurface(t, 10, 1)
	g := NewLinearGradient(0, 0, 10, 0)
	if err := g.AddColorStop(0, "red"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddColorStop(1, "blue"); err != nil {
		t.Fatal(err)
	}
	s.SetFillStyle(g)
	s.FillRect(0, 0, 10, 1)

	// Pixel centres sample t = 0.05, 0.45 and 0.95.
	checkPixel(t, s, 0, 0, color.NRGBA{242, 0, 13, 255}, 1)
	checkPixel(t, s, 4, 0, color.NRGBA{140, 0, 115, 255}, 1)
	checkPixel(t, s, 9, 0, color.NRGBA{13, 0, 242, 255}, 1)
}

func TestGradientFollowsTransform(t *testing.T) {
	s := newTestSurface(t, 20, 1)
	g := NewLinearGradient(0, 0, 10, 0)
	_ = g.AddColorStop(0, "red")
	_ = g.AddColorStop(0.5, "red")
	_ = g.AddColorStop(0.5, "blue")
	_ = g.AddColorStop(1, "blue")
	s.SetFillStyle(g)
	s.Scale(2, 1)
	s.FillRect(0, 0, 10, 1)

	checkPixel(t, s, 8, 0, opaqueRed, 0)
	checkPixel(t, s, 11, 0, opaqueBlue, 0)
}

func TestPatternFill(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tile.SetNRGBA(0, 0, opaqueRed)
	tile.SetNRGBA(1, 1, opaqueRed)
	tile.SetNRGBA(1, 0, opaqueBlue)
	tile.SetNRGBA(0, 1, opaqueBlue)

	p, err := NewPattern(tile, "repeat")
	if err != nil {
		t.Fatalf("NewPattern failed: %v", err)
	}
	s := newTestSurface(t, 6, 6)
	s.SetFillStyle(p)
	s.FillRect(0, 0, 6, 6)

	checkPixel(t, s, 0, 0, opaqueRed, 0)
	checkPixel(t, s, 3, 0, opaqueBlue, 0)
	checkPixel(t, s, 4, 4, opaqueRed, 0)

	np, err := NewPattern(tile, "no-repeat")
	if err != nil {
		t.Fatalf("NewPattern failed: %v", err)
	}
	s.Clear()
	s.SetFillStyle(np)
	s.FillRect(0, 0, 6, 6)
	checkPixel(t, s, 1, 0, opaqueBlue, 0)
	checkPixel(t, s, 4, 4, clearPixel, 0)
}

func TestNonInvertibleTransformDrawsNothing(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.Scale(0, 1)
	s.FillRect(0, 0, 10, 10)
	s.SetLineWidth(math.MaxFloat64)
	s.Line(0, 0, 10, 10)
	if !s.IsEmpty() {
		t.Error("drawing under a singular transform produced pixels")
	}
}
