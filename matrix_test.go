package canvas

import (
	"math"
	"testing"
)

const eps = 1e-9

func matrixNear(a, b Matrix) bool {
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate 90deg clockwise", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"translate after scale", Translate(10, 0).Multiply(Scale(2, 2)), 1, 1, 12, 2},
		{"scale after translate", Scale(2, 2).Multiply(Translate(10, 0)), 1, 1, 22, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			if math.Abs(x-tt.wx) > eps || math.Abs(y-tt.wy) > eps {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMatrixApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	x, y := m.ApplyVector(1, 1)
	if x != 2 || y != 2 {
		t.Errorf("ApplyVector(1, 1) = (%v, %v), want (2, 2)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported a non-invertible matrix")
	}
	if got := m.Multiply(inv); !matrixNear(got, Identity()) {
		t.Errorf("m × m⁻¹ = %+v, want identity", got)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert of a singular matrix reported ok")
	}
	if _, ok := (Matrix{A: math.NaN(), D: 1}).Invert(); ok {
		t.Error("Invert of a NaN matrix reported ok")
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform", Scale(3, 3), 3},
		{"anisotropic", Scale(4, 1), 2},
		{"mirrored", Scale(-2, 2), 2},
		{"rotation", Rotate(1), 1},
		{"singular", Scale(0, 5), 0},
	}
	for _, tt := range tests {
		if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > eps {
			t.Errorf("%s: ScaleFactor() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
	if !Rotate(2).IsFinite() {
		t.Error("Rotate(2).IsFinite() = false")
	}
	if (Matrix{A: math.Inf(1), D: 1}).IsFinite() {
		t.Error("matrix with Inf reported finite")
	}
}

func TestSurfaceTransformComposes(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.Translate(10, 20)
	s.Scale(2, 2)
	s.RotateDegrees(90)

	x, y := s.GetTransform().Apply(1, 0)
	if math.Abs(x-10) > eps || math.Abs(y-22) > eps {
		t.Errorf("transform maps (1, 0) to (%v, %v), want (10, 22)", x, y)
	}

	s.ResetTransform()
	if !s.GetTransform().IsIdentity() {
		t.Errorf("after ResetTransform got %+v", s.GetTransform())
	}

	s.SetTransform(1, 0, 0, 1, math.NaN(), 0)
	if !s.GetTransform().IsIdentity() {
		t.Errorf("SetTransform with NaN changed the transform to %+v", s.GetTransform())
	}
}
