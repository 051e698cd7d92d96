// Package blend implements the canvas compositing operators: the Porter-Duff
// operators and the W3C separable and non-separable blend modes.
//
// Colours are premultiplied with channels in [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Color is a premultiplied colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Op is a compositing operator.
type Op uint8

// Compositing operators, named after their canvas keywords.
const (
	SourceOver Op = iota
	SourceIn
	SourceOut
	SourceAtop
	DestinationOver
	DestinationIn
	DestinationOut
	DestinationAtop
	Lighter
	Copy
	Xor
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	ColorMode
	Luminosity
	numOps
)

var opNames = [numOps]string{
	SourceOver:      "source-over",
	SourceIn:        "source-in",
	SourceOut:       "source-out",
	SourceAtop:      "source-atop",
	DestinationOver: "destination-over",
	DestinationIn:   "destination-in",
	DestinationOut:  "destination-out",
	DestinationAtop: "destination-atop",
	Lighter:         "lighter",
	Copy:            "copy",
	Xor:             "xor",
	Multiply:        "multiply",
	Screen:          "screen",
	Overlay:         "overlay",
	Darken:          "darken",
	Lighten:         "lighten",
	ColorDodge:      "color-dodge",
	ColorBurn:       "color-burn",
	HardLight:       "hard-light",
	SoftLight:       "soft-light",
	Difference:      "difference",
	Exclusion:       "exclusion",
	Hue:             "hue",
	Saturation:      "saturation",
	ColorMode:       "color",
	Luminosity:      "luminosity",
}

// String returns the canvas keyword of op.
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return "source-over"
}

// Parse returns the operator named by a canvas keyword.
func Parse(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return SourceOver, false
}

// Ops returns every operator in declaration order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Bounded reports whether op leaves the destination unchanged wherever the
// source is fully transparent. Unbounded operators such as copy and
// source-in also clear the destination outside the drawn shape.
func (op Op) Bounded() bool {
	switch op {
	case SourceIn, SourceOut, DestinationIn, DestinationAtop, Copy:
		return false
	}
	return true
}

// Composite combines src over dst with op.
func Composite(op Op, src, dst Color) Color {
	switch op {
	case SourceOver, SourceIn, SourceOut, SourceAtop,
		DestinationOver, DestinationIn, DestinationOut, DestinationAtop,
		Lighter, Copy, Xor:
		return porterDuff(op, src, dst)
	case Hue, Saturation, ColorMode, Luminosity:
		return mix(src, dst, nonSeparable(op, unpremul(src), unpremul(dst)))
	default:
		f := separable(op)
		s, d := unpremul(src), unpremul(dst)
		return mix(src, dst, [3]float64{f(s[0], d[0]), f(s[1], d[1]), f(s[2], d[2])})
	}
}

// porterDuff applies co = Fa·cs + Fb·cb, αo = Fa·αs + Fb·αb.
func porterDuff(op Op, s, d Color) Color {
	var fa, fb float64
	switch op {
	case SourceOver:
		fa, fb = 1, 1-s.A
	case SourceIn:
		fa, fb = d.A, 0
	case SourceOut:
		fa, fb = 1-d.A, 0
	case SourceAtop:
		fa, fb = d.A, 1-s.A
	case DestinationOver:
		fa, fb = 1-d.A, 1
	case DestinationIn:
		fa, fb = 0, s.A
	case DestinationOut:
		fa, fb = 0, 1-s.A
	case DestinationAtop:
		fa, fb = 1-d.A, s.A
	case Lighter:
		fa, fb = 1, 1
	case Copy:
		fa, fb = 1, 0
	case Xor:
		fa, fb = 1-d.A, 1-s.A
	}
	return clampColor(Color{
		R: fa*s.R + fb*d.R,
		G: fa*s.G + fb*d.G,
		B: fa*s.B + fb*d.B,
		A: fa*s.A + fb*d.A,
	})
}

// mix composites with a blended colour b using source-over:
// co = cs·(1-αb) + cb·(1-αs) + αs·αb·B(Cb, Cs).
func mix(s, d Color, b [3]float64) Color {
	sa, da := s.A, d.A
	both := sa * da
	return clampColor(Color{
		R: s.R*(1-da) + d.R*(1-sa) + both*b[0],
		G: s.G*(1-da) + d.G*(1-sa) + both*b[1],
		B: s.B*(1-da) + d.B*(1-sa) + both*b[2],
		A: sa + da*(1-sa),
	})
}

func unpremul(c Color) [3]float64 {
	if c.A <= 0 {
		return [3]float64{}
	}
	return [3]float64{c.R / c.A, c.G / c.A, c.B / c.A}
}

func clampColor(c Color) Color {
	c.A = clamp01(c.A)
	c.R = min(clamp01(c.R), c.A)
	c.G = min(clamp01(c.G), c.A)
	c.B = min(clamp01(c.B), c.A)
	return c
}

func clamp01(v float64) float64 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
