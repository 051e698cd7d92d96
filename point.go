package canvas

import (
	"math"
	"time"
)

// Point is an integer pixel position with an optional timestamp, as
// recorded from pointer input. A zero Time means no timestamp.
type Point struct {
	X, Y int
	Time time.Time
}

// Pt returns an untimed point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// PtAt returns a point recorded at t.
func PtAt(x, y int, t time.Time) Point {
	return Point{X: x, Y: y, Time: t}
}

// Timed reports whether p carries a timestamp.
func (p Point) Timed() bool {
	return !p.Time.IsZero()
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// Slope returns dy/dx from p to q. A vertical pair gives ±Inf, and NaN
// when the points coincide.
func (p Point) Slope(q Point) float64 {
	dx, dy := float64(q.X-p.X), float64(q.Y-p.Y)
	return dy / dx
}

// Angle returns the direction from p to q in radians, in (-π, π].
func (p Point) Angle(q Point) float64 {
	return math.Atan2(float64(q.Y-p.Y), float64(q.X-p.X))
}

// Elapsed returns the time between p and q, or 0 unless both are timed.
func (p Point) Elapsed(q Point) time.Duration {
	if !p.Timed() || !q.Timed() {
		return 0
	}
	return q.Time.Sub(p.Time)
}

// Speed returns the distance from p to q in pixels per second, or 0 when
// the elapsed time is not positive.
func (p Point) Speed(q Point) float64 {
	d := p.Elapsed(q)
	if d <= 0 {
		return 0
	}
	return p.Distance(q) / d.Seconds()
}
