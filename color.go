package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/canvas/coerce"
	"github.com/gogpu/canvas/internal/blend"
)

// RGBA represents a non-premultiplied colour. Each component is in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colours.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{}
)

func (RGBA) styleMarker() {}

// Color converts c to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// premul returns c premultiplied by its alpha times a.
func (c RGBA) premul(a float64) blend.Color {
	alpha := c.A * a
	return blend.Color{R: c.R * alpha, G: c.G * alpha, B: c.B * alpha, A: alpha}
}

// String serializes c the way a canvas reports colour properties:
// "#rrggbb" when opaque, "rgba(r, g, b, a)" otherwise.
func (c RGBA) String() string {
	if to8(c.A) == 255 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	a := math.Round(float64(to8(c.A))/255*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to8(c.R), to8(c.G), to8(c.B),
		strconv.FormatFloat(a, 'f', -1, 64))
}

func to8(v float64) uint8 {
	return uint8(coerce.Int(math.Round(v*255), coerce.Options{Min: coerce.Some(0), Max: coerce.Some(255)}))
}

// ParseColor parses a CSS colour: a named colour, "transparent", #rgb,
// #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() or hsla().
func ParseColor(s string) (RGBA, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch {
	case in == "transparent":
		return Transparent, nil
	case strings.HasPrefix(in, "#"):
		return parseHexColor(in, s)
	case strings.HasPrefix(in, "rgb"):
		return parseFunc(in, s, "rgb", rgbFromArgs)
	case strings.HasPrefix(in, "hsl"):
		return parseFunc(in, s, "hsl", hslFromArgs)
	}
	if c, ok := colornames.Map[in]; ok {
		return FromColor(c), nil
	}
	return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(in, orig string) (RGBA, error) {
	digits := in[1:]
	alpha := "ff"
	switch len(digits) {
	case 3, 6:
	case 4:
		alpha = strings.Repeat(digits[3:], 2)
		digits = digits[:3]
	case 8:
		alpha = digits[6:]
		digits = digits[:6]
	default:
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: float64(a) / 255}, nil
}

func parseFunc(in, orig, name string, build func([]string) (RGBA, bool)) (RGBA, error) {
	body := strings.TrimPrefix(in, name)
	body = strings.TrimPrefix(body, "a")
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	body = body[1 : len(body)-1]

	var args []string
	if strings.Contains(body, ",") {
		for _, a := range strings.Split(body, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	} else {
		// Space separated with an optional "/ alpha".
		main, alpha, hasAlpha := strings.Cut(body, "/")
		args = strings.Fields(main)
		if hasAlpha {
			args = append(args, strings.TrimSpace(alpha))
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	c, ok := build(args)
	if !ok {
		return RGBA{}, fmt.Errorf("%w: colour %q", ErrSyntax, orig)
	}
	return c, nil
}

// component parses a number or percentage, scaling percentages so that
// 100% equals full.
func component(tok string, full float64) (float64, bool) {
	num, pct := strings.CutSuffix(tok, "%")
	if _, err := strconv.ParseFloat(num, 64); err != nil || num == "" {
		return 0, false
	}
	if pct {
		return coerce.Number(tok, coerce.Options{}) * full, true
	}
	return coerce.Number(num, coerce.Options{}), true
}

func alphaArg(args []string) (float64, bool) {
	if len(args) < 4 {
		return 1, true
	}
	a, ok := component(args[3], 1)
	return clamp01(a), ok
}

func rgbFromArgs(args []string) (RGBA, bool) {
	var ch [3]float64
	for i := range ch {
		v, ok := component(args[i], 255)
		if !ok {
			return RGBA{}, false
		}
		ch[i] = clamp01(v / 255)
	}
	a, ok := alphaArg(args)
	return RGBA{ch[0], ch[1], ch[2], a}, ok
}

func hslFromArgs(args []string) (RGBA, bool) {
	hue := strings.TrimSuffix(args[0], "deg")
	h, err := strconv.ParseFloat(hue, 64)
	if err != nil {
		return RGBA{}, false
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
		return RGBA{}, false
	}
	s, ok1 := component(args[1], 1)
	l, ok2 := component(args[2], 1)
	if !ok1 || !ok2 {
		return RGBA{}, false
	}
	c := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped()
	a, ok := alphaArg(args)
	return RGBA{c.R, c.G, c.B, a}, ok
}

func clamp01(x float64) float64 {
	switch {
	case !(x > 0):
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
