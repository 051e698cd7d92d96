package filter

import (
	"image"
	"math"
)

// ShadowSigma converts a canvas shadowBlur value to the standard deviation
// of the Gaussian used to render it.
func ShadowSigma(blur float64) float64 {
	if !(blur > 0) || math.IsInf(blur, 0) {
		return 0
	}
	return blur / 2
}

// Offset returns a copy of m translated by (dx, dy) device pixels. Pixels
// shifted in from outside are transparent.
func Offset(m *image.Alpha, dx, dy int) *image.Alpha {
	b := m.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sy := y - dy
		if sy < b.Min.Y || sy >= b.Max.Y {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			sx := x - dx
			if sx < b.Min.X || sx >= b.Max.X {
				continue
			}
			out.Pix[out.PixOffset(x, y)] = m.Pix[m.PixOffset(sx, sy)]
		}
	}
	return out
}

// BlurAlpha returns m blurred with a Gaussian of standard deviation sigma.
// Samples outside m count as transparent, so coverage fades out at the
// edges instead of smearing.
func BlurAlpha(m *image.Alpha, sigma float64) *image.Alpha {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewAlpha(b)
	if w == 0 || h == 0 {
		return out
	}

	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2

	src := make([]float32, w*h)
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x, a := range row {
			src[y*w+x] = float32(a)
		}
	}

	temp := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, kv := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				sum += src[y*w+kx] * kv
			}
			temp[y*w+x] = sum
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, kv := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				sum += temp[ky*w+x] * kv
			}
			out.Pix[y*out.Stride+x] = clampUint8(sum)
		}
	}
	return out
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
