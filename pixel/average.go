package pixel

import (
	"fmt"
	"image"
)

// Color is an averaged colour with channels on the 0–255 scale.
type Color struct {
	R, G, B, A float64
}

// Average returns the mean of every channel, alpha included, over the part of
// r that lies inside b.
func Average(b *Buffer, r image.Rectangle) (Color, error) {
	area := r.Canon().Intersect(b.Bounds())
	n := area.Dx() * area.Dy()
	if n == 0 {
		return Color{}, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}

	var sum Color
	eachPixel(b, area, func(p []uint8) {
		sum.R += float64(p[0])
		sum.G += float64(p[1])
		sum.B += float64(p[2])
		sum.A += float64(p[3])
	})

	count := float64(n)
	return Color{R: sum.R / count, G: sum.G / count, B: sum.B / count, A: sum.A / count}, nil
}

// WeightedAverage returns the alpha-weighted mean colour over the part of r
// inside b. Each channel contributes channel*alpha/255 and the sums are
// divided by the accumulated alpha weight, so transparent pixels carry no
// colour. The result's A is the plain mean alpha.
//
// A region with zero total alpha returns ErrTransparentRegion.
func WeightedAverage(b *Buffer, r image.Rectangle) (Color, error) {
	area := r.Canon().Intersect(b.Bounds())
	n := area.Dx() * area.Dy()
	if n == 0 {
		return Color{}, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}

	var sum Color
	var weight float64
	eachPixel(b, area, func(p []uint8) {
		a := float64(p[3]) / 255
		sum.R += float64(p[0]) * a
		sum.G += float64(p[1]) * a
		sum.B += float64(p[2]) * a
		weight += a
	})
	if weight == 0 {
		return Color{}, fmt.Errorf("%w: %v", ErrTransparentRegion, r)
	}

	return Color{
		R: sum.R / weight,
		G: sum.G / weight,
		B: sum.B / weight,
		A: weight * 255 / float64(n),
	}, nil
}

// AverageLightness returns the mean HSL lightness, (min(r,g,b)+max(r,g,b))/2
// on the 0–255 scale, over the part of r inside b.
func AverageLightness(b *Buffer, r image.Rectangle) (float64, error) {
	area := r.Canon().Intersect(b.Bounds())
	n := area.Dx() * area.Dy()
	if n == 0 {
		return 0, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	var sum float64
	eachPixel(b, area, func(p []uint8) {
		sum += lightness(p)
	})
	return sum / float64(n), nil
}

// WeightedAverageLightness is AverageLightness weighted by alpha/255.
// A region with zero total alpha returns ErrTransparentRegion.
func WeightedAverageLightness(b *Buffer, r image.Rectangle) (float64, error) {
	area := r.Canon().Intersect(b.Bounds())
	if area.Empty() {
		return 0, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	var sum, weight float64
	eachPixel(b, area, func(p []uint8) {
		a := float64(p[3]) / 255
		sum += lightness(p) * a
		weight += a
	})
	if weight == 0 {
		return 0, fmt.Errorf("%w: %v", ErrTransparentRegion, r)
	}
	return sum / weight, nil
}

func lightness(p []uint8) float64 {
	lo := min(p[0], p[1], p[2])
	hi := max(p[0], p[1], p[2])
	return (float64(lo) + float64(hi)) / 2
}

// eachPixel calls fn with the 4-byte slice of every pixel in area, which
// must already be clipped to b.
func eachPixel(b *Buffer, area image.Rectangle, fn func(p []uint8)) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := b.Offset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			fn(b.Pix[i : i+4 : i+4])
			i += 4
		}
	}
}
