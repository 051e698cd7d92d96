package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is the font-style component of a font shorthand.
type Style uint8

// Font styles.
const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Font weights with CSS names.
const (
	WeightThin   = 100
	WeightNormal = 400
	WeightBold   = 700
)

// Font is a parsed CSS font shorthand.
type Font struct {
	Style     Style
	SmallCaps bool
	Weight    int
	// Size is in CSS pixels.
	Size     float64
	Families []string
}

// DefaultFont is the initial font of a drawing context.
var DefaultFont = Font{Weight: WeightNormal, Size: 10, Families: []string{"sans-serif"}}

// Italic reports whether the font selects a slanted face.
func (f Font) Italic() bool { return f.Style != StyleNormal }

// Bold reports whether the font selects a bold face.
func (f Font) Bold() bool { return f.Weight >= 600 }

// String serializes f the way a canvas reports its font property.
func (f Font) String() string {
	var sb strings.Builder
	if f.Style != StyleNormal {
		sb.WriteString(f.Style.String())
		sb.WriteByte(' ')
	}
	if f.SmallCaps {
		sb.WriteString("small-caps ")
	}
	switch f.Weight {
	case WeightNormal, 0:
	case WeightBold:
		sb.WriteString("bold ")
	default:
		sb.WriteString(strconv.Itoa(f.Weight))
		sb.WriteByte(' ')
	}
	sb.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	sb.WriteString("px ")
	for i, fam := range f.Families {
		if i > 0 {
			sb.WriteString(", ")
		}
		if strings.ContainsAny(fam, " ,") {
			sb.WriteString(strconv.Quote(fam))
		} else {
			sb.WriteString(fam)
		}
	}
	return sb.String()
}

var absoluteSizes = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

// unitScale maps a CSS length unit to pixels as a numerator and denominator.
var unitScale = map[string][2]float64{
	"px": {1, 1},
	"pt": {96, 72},
	"pc": {96, 6},
	"in": {96, 1},
	"cm": {96, 2.54},
	"mm": {96, 25.4},
	"q":  {96, 101.6},
	// Relative units resolve against the default font size.
	"em":  {10, 1},
	"rem": {10, 1},
	"%":   {10, 100},
}

// ParseFont parses a CSS font shorthand such as
// "italic bold 12px/30px Georgia, serif".
func ParseFont(s string) (Font, error) {
	f := Font{Weight: WeightNormal}
	rest := strings.TrimSpace(s)
	var styleSet, variantSet, weightSet bool

	for rest != "" {
		tok, tail, _ := strings.Cut(rest, " ")
		tail = strings.TrimLeft(tail, " ")
		lower := strings.ToLower(tok)

		switch {
		case lower == "normal":
		case !styleSet && (lower == "italic" || lower == "oblique"):
			styleSet = true
			f.Style = StyleItalic
			if lower == "oblique" {
				f.Style = StyleOblique
			}
		case !variantSet && lower == "small-caps":
			variantSet = true
			f.SmallCaps = true
		case !weightSet && parseWeight(lower, &f.Weight):
			weightSet = true
		case isStretch(lower):
		default:
			size, ok := parseSize(lower)
			if !ok {
				return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
			}
			f.Size = size
			if strings.HasPrefix(tail, "/") {
				// Line height is accepted and ignored.
				lh, after, _ := strings.Cut(strings.TrimLeft(tail[1:], " "), " ")
				if lh == "" {
					return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
				}
				tail = strings.TrimLeft(after, " ")
			}
			fams, err := parseFamilies(tail)
			if err != nil {
				return Font{}, fmt.Errorf("%w: %q", err, s)
			}
			f.Families = fams
			return f, nil
		}
		rest = tail
	}
	return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
}

func parseWeight(tok string, w *int) bool {
	switch tok {
	case "bold", "bolder":
		*w = WeightBold
		return true
	case "lighter":
		*w = WeightThin
		return true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > 1000 {
		return false
	}
	*w = n
	return true
}

func isStretch(tok string) bool {
	switch tok {
	case "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded":
		return true
	}
	return false
}

func parseSize(tok string) (float64, bool) {
	tok, _, _ = strings.Cut(tok, "/")
	if px, ok := absoluteSizes[tok]; ok {
		return px, true
	}
	i := len(tok)
	for i > 0 && (tok[i-1] == '%' || tok[i-1] >= 'a' && tok[i-1] <= 'z') {
		i--
	}
	scale, ok := unitScale[tok[i:]]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok[:i], 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * scale[0] / scale[1], true
}

// parseFamilies splits a comma separated family list, unquoting quoted names.
func parseFamilies(s string) ([]string, error) {
	var fams []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if n := len(name); n >= 2 && (name[0] == '"' || name[0] == '\'') && name[n-1] == name[0] {
			name = name[1 : n-1]
		} else {
			name = strings.Join(strings.Fields(name), " ")
		}
		if name == "" {
			return nil, ErrInvalidFont
		}
		fams = append(fams, name)
	}
	return fams, nil
}
