package canvas

import (
	"image/color"
	"testing"
)

// newTestSurface creates a transparent surface with a private registry.
func newTestSurface(t testing.TB, w, h int) *Surface {
	t.Helper()
	s, err := New(FromSize(w, h), WithRegistry(NewRegistry()))
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return s
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// near reports whether two colours match within tol per channel.
func near(got, want color.NRGBA, tol uint8) bool {
	return absDiff(got.R, want.R) <= tol &&
		absDiff(got.G, want.G) <= tol &&
		absDiff(got.B, want.B) <= tol &&
		absDiff(got.A, want.A) <= tol
}

// checkPixel fails the test when the pixel at (x, y) is not within tol of
// want.
func checkPixel(t *testing.T, s *Surface, x, y int, want color.NRGBA, tol uint8) {
	t.Helper()
	if got := s.At(x, y); !near(got, want, tol) {
		t.Errorf("pixel (%d, %d) = %v, want %v (±%d)", x, y, got, want, tol)
	}
}

var (
	opaqueRed   = color.NRGBA{R: 255, A: 255}
	opaqueGreen = color.NRGBA{G: 255, A: 255}
	opaqueBlue  = color.NRGBA{B: 255, A: 255}
	opaqueBlack = color.NRGBA{A: 255}
	clearPixel  = color.NRGBA{}
)
