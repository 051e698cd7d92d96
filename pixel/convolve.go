package pixel

import (
	"fmt"
	"math"
)

// Convolve applies a square weight kernel to the RGB channels of b and
// returns the result in a new, fully opaque buffer.
//
// kernel is the row-major flattening of a side × side matrix centred on
// index side/2. Neighbours outside the buffer contribute nothing, so edges
// darken with kernels whose weights sum to 1. Weights are used as given;
// normalize them if intensity must be preserved.
//
// An empty kernel returns b itself.
func Convolve(b *Buffer, kernel []float64) (*Buffer, error) {
	if len(kernel) == 0 {
		return b, nil
	}
	side := int(math.Round(math.Sqrt(float64(len(kernel)))))
	if side*side != len(kernel) {
		return nil, fmt.Errorf("%w: length %d", ErrKernelNotSquare, len(kernel))
	}
	half := side / 2

	out := NewBuffer(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			var r, g, bl float64
			for ky := 0; ky < side; ky++ {
				sy := y + ky - half
				if sy < 0 || sy >= b.Height {
					continue
				}
				for kx := 0; kx < side; kx++ {
					sx := x + kx - half
					if sx < 0 || sx >= b.Width {
						continue
					}
					w := kernel[ky*side+kx]
					i := b.Offset(sx, sy)
					r += float64(b.Pix[i]) * w
					g += float64(b.Pix[i+1]) * w
					bl += float64(b.Pix[i+2]) * w
				}
			}
			o := out.Offset(x, y)
			out.Pix[o] = clampByte(r)
			out.Pix[o+1] = clampByte(g)
			out.Pix[o+2] = clampByte(bl)
			out.Pix[o+3] = 255
		}
	}
	return out, nil
}

// clampByte rounds v to the nearest integer in [0, 255]; NaN maps to 0.
func clampByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.RoundToEven(v))
	}
}

// IdentityKernel returns the 1×1 kernel [1].
func IdentityKernel() []float64 {
	return []float64{1}
}

// BoxKernel returns a side × side kernel of equal weights summing to 1.
// side values below 1 are treated as 1.
func BoxKernel(side int) []float64 {
	side = max(side, 1)
	k := make([]float64, side*side)
	w := 1 / float64(len(k))
	for i := range k {
		k[i] = w
	}
	return k
}

// SharpenKernel returns the classic 3×3 sharpen kernel.
func SharpenKernel() []float64 {
	return []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}
}

// GaussianKernel returns a normalized 2D Gaussian kernel with sigma equal to
// radius and side 2*ceil(3*radius)+1. A radius <= 0 yields IdentityKernel.
func GaussianKernel(radius float64) []float64 {
	if !(radius > 0) {
		return IdentityKernel()
	}
	half := int(math.Ceil(radius * 3))
	side := half*2 + 1
	k := make([]float64, side*side)
	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := float64(x-half), float64(y-half)
			v := math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
			k[y*side+x] = v
			sum += v
		}
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}
