package blend

import (
	"math"
	"testing"
)

func near(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseRoundTrip(t *testing.T) {
	for _, op := range Ops() {
		got, ok := Parse(op.String())
		if !ok || got != op {
			t.Errorf("Parse(%q) = %v, %v; want %v", op.String(), got, ok, op)
		}
	}
	if _, ok := Parse("plus-darker"); ok {
		t.Error("Parse accepted an unknown keyword")
	}
}

func TestPorterDuff(t *testing.T) {
	red := Color{R: 1, A: 1}
	halfBlue := Color{B: 0.5, A: 0.5}
	clear := Color{}

	tests := []struct {
		op       Op
		src, dst Color
		want     Color
	}{
		{SourceOver, halfBlue, red, Color{R: 0.5, B: 0.5, A: 1}},
		{DestinationOver, halfBlue, red, red},
		{Copy, halfBlue, red, halfBlue},
		{SourceIn, red, clear, clear},
		{SourceIn, red, halfBlue, Color{R: 0.5, A: 0.5}},
		{SourceOut, red, halfBlue, Color{R: 0.5, A: 0.5}},
		{DestinationIn, halfBlue, red, Color{R: 0.5, A: 0.5}},
		{DestinationOut, halfBlue, red, Color{R: 0.5, A: 0.5}},
		{SourceAtop, halfBlue, red, Color{R: 0.5, B: 0.5, A: 1}},
		{DestinationAtop, halfBlue, red, Color{R: 0.5, A: 0.5}},
		{Xor, red, red, clear},
		{Lighter, red, red, red},
	}
	for _, tt := range tests {
		if got := Composite(tt.op, tt.src, tt.dst); !near(got, tt.want) {
			t.Errorf("%v(%+v, %+v) = %+v, want %+v", tt.op, tt.src, tt.dst, got, tt.want)
		}
	}
}

func TestBlendModesOpaque(t *testing.T) {
	gray := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 1}
	black := Color{A: 1}

	tests := []struct {
		op       Op
		src, dst Color
		want     Color
	}{
		{Multiply, white, gray, gray},
		{Multiply, black, gray, black},
		{Screen, black, gray, gray},
		{Screen, white, gray, white},
		{Darken, black, white, black},
		{Lighten, black, white, white},
		{Difference, white, white, black},
		{Exclusion, white, black, white},
		{Luminosity, white, black, white},
		{ColorMode, black, gray, gray},
	}
	for _, tt := range tests {
		if got := Composite(tt.op, tt.src, tt.dst); !near(got, tt.want) {
			t.Errorf("%v = %+v, want %+v", tt.op, got, tt.want)
		}
	}
}

func TestBlendOverTransparentIsSource(t *testing.T) {
	src := Color{R: 0.2, G: 0.1, A: 0.4}
	for _, op := range []Op{Multiply, Screen, Overlay, SoftLight, Hue, Luminosity} {
		if got := Composite(op, src, Color{}); !near(got, src) {
			t.Errorf("%v over transparent = %+v, want %+v", op, got, src)
		}
	}
}

func TestCompositeKeepsPremultipliedInvariant(t *testing.T) {
	src := Color{R: 0.9, G: 0.3, B: 0.1, A: 0.9}
	dst := Color{R: 0.2, G: 0.6, B: 0.6, A: 0.7}
	for _, op := range Ops() {
		c := Composite(op, src, dst)
		if c.A < 0 || c.A > 1 || c.R > c.A || c.G > c.A || c.B > c.A || c.R < 0 {
			t.Errorf("%v produced invalid premultiplied colour %+v", op, c)
		}
	}
}

func TestBounded(t *testing.T) {
	dst := Color{R: 0.3, G: 0.2, B: 0.1, A: 0.6}
	for _, op := range Ops() {
		unchanged := near(Composite(op, Color{}, dst), dst)
		if op.Bounded() != unchanged {
			t.Errorf("%v: Bounded() = %v, but transparent source leaves dst unchanged = %v", op, op.Bounded(), unchanged)
		}
	}
}
