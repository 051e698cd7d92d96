package blend

import "math"

// separable returns the per-channel blend function B(Cs, Cb) for op, on
// unpremultiplied channels.
func separable(op Op) func(s, d float64) float64 {
	switch op {
	case Multiply:
		return func(s, d float64) float64 { return s * d }
	case Screen:
		return screen
	case Overlay:
		return func(s, d float64) float64 { return hardLight(d, s) }
	case Darken:
		return func(s, d float64) float64 { return min(s, d) }
	case Lighten:
		return func(s, d float64) float64 { return max(s, d) }
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(s, d float64) float64 { return math.Abs(s - d) }
	case Exclusion:
		return func(s, d float64) float64 { return s + d - 2*s*d }
	default:
		return func(s, _ float64) float64 { return s }
	}
}

func screen(s, d float64) float64 {
	return s + d - s*d
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return d * 2 * s
	}
	return screen(2*s-1, d)
}

func colorDodge(s, d float64) float64 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	default:
		return min(1, d/(1-s))
	}
}

func colorBurn(s, d float64) float64 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	default:
		return 1 - min(1, (1-d)/s)
	}
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}
