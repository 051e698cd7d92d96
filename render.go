package canvas

import (
	"image"
	"math"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/filter"
	"github.com/gogpu/canvas/internal/raster"
)

// paintFunc returns the premultiplied source colour at a device-space
// position and whether the source paints there.
type paintFunc func(x, y float64) (blend.Color, bool)

// painter evaluates st in the current user space. It reports false when
// nothing can be painted, such as under a non-invertible transformation.
func (s *Surface) painter(st Style) (paintFunc, bool) {
	switch v := st.(type) {
	case RGBA:
		c := v.premul(1)
		return func(float64, float64) (blend.Color, bool) { return c, c.A > 0 }, true
	case *Gradient:
		inv, ok := s.st.ctm.Invert()
		if !ok {
			return nil, false
		}
		return func(x, y float64) (blend.Color, bool) {
			c, ok := v.At(inv.Apply(x, y))
			return c.premul(1), ok
		}, true
	case *Pattern:
		inv, ok := s.st.ctm.Invert()
		if !ok {
			return nil, false
		}
		return func(x, y float64) (blend.Color, bool) {
			c, ok := v.At(inv.Apply(x, y))
			return c.premul(1), ok
		}, true
	}
	return nil, false
}

// layerPainter paints from a premultiplied layer aligned with the surface.
func layerPainter(layer *image.RGBA) paintFunc {
	return func(x, y float64) (blend.Color, bool) {
		c := layer.RGBAAt(int(x), int(y))
		if c.A == 0 {
			return blend.Color{}, false
		}
		return blend.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, true
	}
}

// fillDevice fills a device-space path with st.
func (s *Surface) fillDevice(p *raster.Path, rule raster.FillRule, st Style) {
	paint, ok := s.painter(st)
	if !ok {
		return
	}
	polys := raster.Flatten(p, raster.Tolerance)
	s.composite(raster.Fill(polys, rule, s.Width(), s.Height()), paint)
}

// strokeOutline expands a device-space path into stroke polygons using the
// current line properties scaled into device space.
func (s *Surface) strokeOutline(p *raster.Path) []raster.Polyline {
	scale := s.st.ctm.ScaleFactor()
	if !(scale > 0) {
		return nil
	}
	polys := raster.Flatten(p, raster.Tolerance)
	if len(s.st.dash) > 0 {
		dash := make([]float64, len(s.st.dash))
		for i, d := range s.st.dash {
			dash[i] = d * scale
		}
		polys = raster.Dash(polys, dash, s.st.dashOffset*scale)
	}
	return raster.Stroke(polys, s.st.strokeStyle(scale))
}

// strokeDevice strokes a device-space path with the stroke style.
func (s *Surface) strokeDevice(p *raster.Path) {
	paint, ok := s.painter(s.st.stroke)
	if !ok {
		return
	}
	outline := s.strokeOutline(p)
	if len(outline) == 0 {
		return
	}
	s.composite(raster.Fill(outline, raster.NonZero, s.Width(), s.Height()), paint)
}

// composite draws the shadow of the source and then the source itself,
// shaped by mask, through the clip with the current operator.
func (s *Surface) composite(mask *image.Alpha, paint paintFunc) {
	if s.shadowVisible() {
		s.drawShadow(mask, paint)
	}
	s.blit(mask, paint, s.st.globalAlpha)
}

func (s *Surface) shadowVisible() bool {
	st := &s.st
	return st.shadowColor.A > 0 &&
		(st.shadowBlur > 0 || st.shadowOffsetX != 0 || st.shadowOffsetY != 0)
}

// drawShadow renders the alpha of the source, offset and blurred, in the
// shadow colour. Shadow offsets are in device pixels and ignore the
// transformation.
func (s *Surface) drawShadow(mask *image.Alpha, paint paintFunc) {
	area := raster.Bounds(mask)
	alpha := image.NewAlpha(mask.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := mask.Pix[mask.PixOffset(x, y)]
			if cov == 0 {
				continue
			}
			c, ok := paint(float64(x)+0.5, float64(y)+0.5)
			if !ok {
				continue
			}
			alpha.Pix[alpha.PixOffset(x, y)] = uint8(math.Round(float64(cov) * c.A))
		}
	}

	dx := int(math.Round(s.st.shadowOffsetX))
	dy := int(math.Round(s.st.shadowOffsetY))
	if dx != 0 || dy != 0 {
		alpha = filter.Offset(alpha, dx, dy)
	}
	if sigma := filter.ShadowSigma(s.st.shadowBlur); sigma > 0 {
		alpha = filter.BlurAlpha(alpha, sigma)
	}

	shadow := s.st.shadowColor.premul(1)
	s.blit(alpha, func(float64, float64) (blend.Color, bool) { return shadow, true }, s.st.globalAlpha)
}

// blit composites paint, weighted by mask coverage and alpha, onto the
// surface through the clip. Unbounded operators also process pixels the
// mask does not cover, where the source is transparent.
func (s *Surface) blit(mask *image.Alpha, paint paintFunc, alpha float64) {
	op := s.st.op
	clip := s.st.clip
	area := s.img.Rect
	if op.Bounded() {
		area = raster.Bounds(mask)
	}
	if clip != nil {
		area = area.Intersect(raster.Bounds(clip))
	}

	pix := s.img.Pix
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := mask.Pix[mask.PixOffset(x, y)]
			if cov == 0 && op.Bounded() {
				continue
			}
			clipCov := 1.0
			if clip != nil {
				clipCov = float64(clip.Pix[clip.PixOffset(x, y)]) / 255
				if clipCov == 0 {
					continue
				}
			}

			var src blend.Color
			if cov > 0 {
				if c, ok := paint(float64(x)+0.5, float64(y)+0.5); ok {
					f := float64(cov) / 255 * alpha
					src = blend.Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
				}
			}

			i := s.img.PixOffset(x, y)
			dst := blend.Color{
				R: float64(pix[i]) / 255,
				G: float64(pix[i+1]) / 255,
				B: float64(pix[i+2]) / 255,
				A: float64(pix[i+3]) / 255,
			}
			out := blend.Composite(op, src, dst)
			if clipCov < 1 {
				out = blend.Color{
					R: dst.R + (out.R-dst.R)*clipCov,
					G: dst.G + (out.G-dst.G)*clipCov,
					B: dst.B + (out.B-dst.B)*clipCov,
					A: dst.A + (out.A-dst.A)*clipCov,
				}
			}
			pix[i] = unit8(out.R)
			pix[i+1] = unit8(out.G)
			pix[i+2] = unit8(out.B)
			pix[i+3] = unit8(out.A)
		}
	}
}

// unit8 converts a [0, 1] channel to a byte.
func unit8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
