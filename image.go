package canvas

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/pixel"
)

// normRect flips negative sizes so that the rectangle grows from its
// origin in the positive direction.
func normRect(x, y, w, h int) image.Rectangle {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return image.Rect(x, y, x+w, y+h)
}

// checkDataSize rejects image data sizes that are zero or too large to
// allocate. Negative sizes are checked by magnitude.
func checkDataSize(w, h int) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("%w: image data %dx%d", ErrIndexSize, w, h)
	}
	if err := pixel.CheckSize(abs(w), abs(h)); err != nil {
		return fmt.Errorf("%w: %w", ErrIndexSize, err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CreateImageData returns a transparent buffer of the given size. Negative
// sizes are taken as their magnitude; zero sizes and areas beyond
// pixel.MaxPixels fail with ErrIndexSize.
func (s *Surface) CreateImageData(width, height int) (*pixel.Buffer, error) {
	if err := checkDataSize(width, height); err != nil {
		return nil, err
	}
	r := normRect(0, 0, width, height)
	return pixel.NewBuffer(r.Dx(), r.Dy()), nil
}

// GetImageData returns a non-premultiplied copy of a surface region.
// Pixels outside the surface read as transparent black. Negative sizes
// extend the region to the left or upwards; zero sizes and areas beyond
// pixel.MaxPixels fail with ErrIndexSize.
func (s *Surface) GetImageData(sx, sy, sw, sh int) (*pixel.Buffer, error) {
	if err := checkDataSize(sw, sh); err != nil {
		return nil, err
	}
	r := normRect(sx, sy, sw, sh)
	if r.Dx() != abs(sw) || r.Dy() != abs(sh) {
		return nil, fmt.Errorf("%w: image data origin (%d, %d) overflows", ErrIndexSize, sx, sy)
	}
	buf := pixel.NewBuffer(r.Dx(), r.Dy())
	area := r.Intersect(s.img.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			buf.Set(x-r.Min.X, y-r.Min.Y, s.At(x, y))
		}
	}
	return buf, nil
}

// PutImageData writes buf with its top-left corner at (dx, dy). Pixels
// are replaced as is: the transformation, the clip, global alpha,
// compositing and shadows do not apply.
func (s *Surface) PutImageData(buf *pixel.Buffer, dx, dy int) {
	s.PutImageDataDirty(buf, dx, dy, 0, 0, buf.Width, buf.Height)
}

// PutImageDataDirty is PutImageData restricted to the dirty rectangle of
// buf, given in buffer coordinates.
func (s *Surface) PutImageDataDirty(buf *pixel.Buffer, dx, dy, dirtyX, dirtyY, dirtyW, dirtyH int) {
	dirty := normRect(dirtyX, dirtyY, dirtyW, dirtyH).Intersect(buf.Bounds())
	area := dirty.Add(image.Pt(dx, dy)).Intersect(s.img.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := buf.At(x-dx, y-dy)
			i := s.img.PixOffset(x, y)
			s.img.Pix[i] = premul8(c.R, c.A)
			s.img.Pix[i+1] = premul8(c.G, c.A)
			s.img.Pix[i+2] = premul8(c.B, c.A)
			s.img.Pix[i+3] = c.A
		}
	}
}

func premul8(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// DrawImage draws img at its natural size with its top-left corner at
// (dx, dy).
func (s *Surface) DrawImage(img image.Image, dx, dy float64) {
	b := img.Bounds()
	s.DrawImageRegion(img, 0, 0, float64(b.Dx()), float64(b.Dy()), dx, dy, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img scaled into the rectangle (dx, dy, dw, dh).
func (s *Surface) DrawImageScaled(img image.Image, dx, dy, dw, dh float64) {
	b := img.Bounds()
	s.DrawImageRegion(img, 0, 0, float64(b.Dx()), float64(b.Dy()), dx, dy, dw, dh)
}

// DrawImageRegion draws the source rectangle (sx, sy, sw, sh) of img,
// relative to its bounds, scaled into the destination rectangle (dx, dy,
// dw, dh). Parts of the source outside img are dropped and the destination
// shrinks with them. Drawing goes through the transformation, the clip,
// global alpha, compositing and shadows like any fill.
func (s *Surface) DrawImageRegion(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img == nil || !finite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return
	}
	if sw < 0 {
		sx, sw = sx+sw, -sw
	}
	if sh < 0 {
		sy, sh = sy+sh, -sh
	}
	if dw < 0 {
		dx, dw = dx+dw, -dw
	}
	if dh < 0 {
		dy, dh = dy+dh, -dh
	}
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return
	}

	// Clip the source to the image, moving the destination edges by the
	// same proportion.
	b := img.Bounds()
	kx, ky := dw/sw, dh/sh
	if sx < 0 {
		dx -= sx * kx
		sw += sx
		sx = 0
	}
	if sy < 0 {
		dy -= sy * ky
		sh += sy
		sy = 0
	}
	if over := sx + sw - float64(b.Dx()); over > 0 {
		sw -= over
	}
	if over := sy + sh - float64(b.Dy()); over > 0 {
		sh -= over
	}
	if sw <= 0 || sh <= 0 {
		return
	}
	dw, dh = sw*kx, sh*ky

	ox, oy := float64(b.Min.X)+sx, float64(b.Min.Y)+sy
	m := s.st.ctm.
		Multiply(Translate(dx, dy)).
		Multiply(Scale(kx, ky)).
		Multiply(Translate(-ox, -oy))
	sr := image.Rect(
		int(math.Floor(ox)), int(math.Floor(oy)),
		int(math.Ceil(ox+sw)), int(math.Ceil(oy+sh)),
	).Intersect(b)

	layer := image.NewRGBA(s.img.Rect)
	s.interpolator().Transform(layer, f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}, img, sr, draw.Src, nil)

	p := s.scratch()
	p.Rect(dx, dy, dw, dh)
	mask := raster.Fill(raster.Flatten(&p.p, raster.Tolerance), raster.NonZero, s.Width(), s.Height())
	s.composite(mask, layerPainter(layer))
}

// DrawSurface draws the pixels of src with their top-left corner at
// (dx, dy). A surface may be drawn onto itself.
func (s *Surface) DrawSurface(src *Surface, dx, dy float64) {
	if src == nil {
		return
	}
	img := src.img
	if src == s {
		img = image.NewRGBA(s.img.Rect)
		copy(img.Pix, s.img.Pix)
	}
	s.DrawImage(img, dx, dy)
}

func (s *Surface) interpolator() draw.Interpolator {
	if !s.st.smoothing {
		return draw.NearestNeighbor
	}
	switch s.st.quality {
	case QualityMedium:
		return draw.BiLinear
	case QualityHigh:
		return draw.CatmullRom
	}
	return draw.ApproxBiLinear
}
