package pixel

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned pixel rectangle.
//
// The zero value is the empty rectangle: it has no origin and reports
// Width = Height = 0. Union treats it as the identity element.
type Rect struct {
	X, Y          int
	Width, Height int

	set bool
}

// NewRect returns a non-empty rectangle. Negative sizes are clamped to 0.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0), set: true}
}

// RectFrom converts an image.Rectangle to a Rect.
func RectFrom(r image.Rectangle) Rect {
	r = r.Canon()
	return NewRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// Empty reports whether r is the empty sentinel.
func (r Rect) Empty() bool {
	return !r.set
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns Width*Height, 0 for the empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.set && x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds returns r as an image.Rectangle; the empty rectangle maps to
// image.Rectangle{}.
func (r Rect) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Union returns the smallest rectangle covering both r and s.
// If one operand is empty the other is returned unchanged.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	return NewRect(x, y, max(r.Right(), s.Right())-x, max(r.Bottom(), s.Bottom())-y)
}

func (r Rect) String() string {
	if r.Empty() {
		return "Rect(empty)"
	}
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
