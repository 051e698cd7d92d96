// Package coerce normalizes loosely typed numeric input.
//
// Drawing APIs receive values from many places: literal numbers, user
// configuration, percentages such as "50%". Rather than rejecting bad input,
// the surface setters run every value through [Number], which always yields a
// usable float64.
//
// The steps are applied in a fixed order:
//
//  1. parse: strings ending in "%" are divided by the percentage ratio,
//     other strings are parsed by their leading numeric prefix
//  2. clamp to [Min, Max] when the bounds are set
//  3. floor when Integer is requested
//  4. replace NaN with the NaN fallback, else Min, else 0
//  5. replace ±Inf with the Infinity fallback, else 0
//
// Clamping happens before substitution, so a NaN never passes through the
// bounds and always resolves through the fallback chain.
package coerce

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPercentageRatio divides percentage strings when Options leaves the
// ratio unset.
const DefaultPercentageRatio = 100

// Optional is a float64 that may be absent.
// The zero value is absent.
type Optional struct {
	value float64
	set   bool
}

// Some returns a present Optional holding v.
func Some(v float64) Optional {
	return Optional{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional) Get() (float64, bool) {
	return o.value, o.set
}

// Options constrains the result of Number.
type Options struct {
	// Min and Max clamp the parsed value.
	Min, Max Optional

	// Integer floors the clamped value.
	Integer bool

	// NaN replaces a NaN result. When absent, Min is used, then 0.
	NaN Optional

	// Infinity replaces an infinite result. When absent, 0 is used.
	Infinity Optional

	// PercentageRatio divides percentage strings. Zero means 100.
	PercentageRatio float64
}

// Number converts v to a float64 under the given constraints.
//
// Accepted inputs are the Go integer and float kinds, bool and strings.
// Anything else parses as NaN and falls through the NaN fallback chain.
func Number(v any, o Options) float64 {
	n := Parse(v, o.PercentageRatio)

	if lo, ok := o.Min.Get(); ok && n < lo {
		n = lo
	}
	if hi, ok := o.Max.Get(); ok && n > hi {
		n = hi
	}

	if o.Integer {
		n = math.Floor(n)
	}

	if math.IsNaN(n) {
		switch {
		case o.NaN.set:
			n = o.NaN.value
		case o.Min.set:
			n = o.Min.value
		default:
			n = 0
		}
	}

	if math.IsInf(n, 0) {
		if f, ok := o.Infinity.Get(); ok {
			n = f
		} else {
			n = 0
		}
	}

	return n
}

// Int is Number with Integer forced on, converted to int.
func Int(v any, o Options) int {
	o.Integer = true
	return int(Number(v, o))
}

// Parse converts v to a float64 without applying any constraint.
// Percentage strings are divided by ratio (100 when ratio is zero).
// Unparsable input yields NaN.
func Parse(v any, ratio float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseString(x, ratio)
	default:
		return math.NaN()
	}
}

func parseString(s string, ratio float64) float64 {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		if ratio == 0 {
			ratio = DefaultPercentageRatio
		}
		return parsePrefix(strings.TrimSpace(p)) / ratio
	}
	return parsePrefix(s)
}

// parsePrefix parses the longest leading substring of s that forms a
// decimal number, so "12px" yields 12 and "px" yields NaN. Infinity is
// only recognized spelled out with at most one sign.
func parsePrefix(s string) float64 {
	rest, neg := s, false
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		rest, neg = rest[1:], rest[0] == '-'
	}
	if strings.HasPrefix(rest, "Infinity") {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	end := scanNumber(s)
	if end == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// scanNumber returns the length of the numeric prefix of s:
// [sign] digits [. digits] [e [sign] digits].
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
