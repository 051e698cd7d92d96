package canvas

import (
	"image"

	"github.com/gogpu/canvas/pixel"
)

// alphaView wraps the surface pixels without copying. Premultiplication
// leaves alpha unchanged, so alpha-only queries can read it directly.
func (s *Surface) alphaView() *pixel.Buffer {
	b, err := pixel.FromPix(s.img.Pix, s.Width(), s.Height())
	if err != nil {
		// The surface image is always tightly packed.
		panic(err)
	}
	return b
}

// IsEmpty reports whether every pixel of the surface is transparent.
func (s *Surface) IsEmpty() bool {
	return pixel.IsEmpty(s.alphaView())
}

// TrimmingRect returns the smallest rectangle enclosing every pixel with
// nonzero alpha, or the empty Rect for a transparent surface.
func (s *Surface) TrimmingRect() pixel.Rect {
	return pixel.TrimmingRect(s.alphaView())
}

// Trim crops the surface to its trimming rectangle and returns it. A
// transparent surface is left untouched.
func (s *Surface) Trim() pixel.Rect {
	r := s.TrimmingRect()
	if r.Empty() {
		return r
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		src := s.img.PixOffset(r.X, r.Y+y)
		copy(img.Pix[y*img.Stride:(y+1)*img.Stride], s.img.Pix[src:src+4*r.Width])
	}
	s.replace(img)
	Logger().Debug("canvas: trimmed", "rect", r.String())
	return r
}

// Alias thresholds the alpha channel: alpha at or below threshold becomes
// transparent and everything else opaque. pixel.DefaultAliasThreshold is the
// usual threshold.
func (s *Surface) Alias(threshold int) {
	out := pixel.Alias(s.buffer(), threshold)
	s.replace(toRGBA(out))
	Logger().Debug("canvas: aliased", "threshold", threshold)
}

// Convolve replaces the surface with its convolution by kernel, a
// flattened square matrix. The result is opaque. An empty kernel changes
// nothing.
func (s *Surface) Convolve(kernel []float64) error {
	if len(kernel) == 0 {
		return nil
	}
	out, err := pixel.Convolve(s.buffer(), kernel)
	if err != nil {
		return err
	}
	s.replace(toRGBA(out))
	Logger().Debug("canvas: convolved", "taps", len(kernel))
	return nil
}

// AverageColor returns the unweighted mean colour of the surface region r.
func (s *Surface) AverageColor(r image.Rectangle) (pixel.Color, error) {
	return pixel.Average(s.buffer(), r)
}

// WeightedAverageColor returns the alpha-weighted mean colour of the
// surface region r. A transparent region fails with
// pixel.ErrTransparentRegion.
func (s *Surface) WeightedAverageColor(r image.Rectangle) (pixel.Color, error) {
	return pixel.WeightedAverage(s.buffer(), r)
}

// AverageLightness returns the mean HSL lightness of the surface region r.
func (s *Surface) AverageLightness(r image.Rectangle) (float64, error) {
	return pixel.AverageLightness(s.buffer(), r)
}

// WeightedAverageLightness returns the alpha-weighted mean HSL lightness
// of the surface region r.
func (s *Surface) WeightedAverageLightness(r image.Rectangle) (float64, error) {
	return pixel.WeightedAverageLightness(s.buffer(), r)
}

// buffer returns a non-premultiplied copy of the surface.
func (s *Surface) buffer() *pixel.Buffer {
	return pixel.FromImage(s.img)
}

// toRGBA converts a non-premultiplied buffer into a surface image.
func toRGBA(b *pixel.Buffer) *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i := 0; i < len(b.Pix); i += 4 {
		a := b.Pix[i+3]
		img.Pix[i] = premul8(b.Pix[i], a)
		img.Pix[i+1] = premul8(b.Pix[i+1], a)
		img.Pix[i+2] = premul8(b.Pix[i+2], a)
		img.Pix[i+3] = a
	}
	return img
}
