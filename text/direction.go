package text

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base writing direction of a run of text.
type Direction uint8

// Directions. Inherit defers to the text itself.
const (
	Inherit Direction = iota
	LTR
	RTL
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "inherit"
	}
}

// ParseDirection parses "ltr", "rtl" or "inherit".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "ltr":
		return LTR, true
	case "rtl":
		return RTL, true
	case "inherit":
		return Inherit, true
	}
	return Inherit, false
}

// Detect returns the direction of the first strongly directional
// character in s, or LTR when there is none.
func Detect(s string) Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		switch p.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
		if size == 0 {
			break
		}
		s = s[size:]
	}
	return LTR
}

// Resolve replaces Inherit with the direction detected from s.
func (d Direction) Resolve(s string) Direction {
	if d == Inherit {
		return Detect(s)
	}
	return d
}

type bidiRun struct {
	start, end int // rune indices, end exclusive
	rtl        bool
}

// visualRuns splits runes into directional runs in visual order.
func visualRuns(s string, n int, base Direction) []bidiRun {
	whole := []bidiRun{{0, n, base == RTL}}
	if n == 0 {
		return nil
	}

	def := bidi.LeftToRight
	if base == RTL {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(def)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		if start < 0 || end >= n || start > end {
			return whole
		}
		runs = append(runs, bidiRun{start, end + 1, r.Direction() == bidi.RightToLeft})
	}
	return runs
}
