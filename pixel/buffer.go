package pixel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a width × height grid of non-premultiplied RGBA samples.
//
// Stride is always 4*Width for buffers created by this package; it is kept
// explicit so that a Buffer converts to an image.NRGBA without copying.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// MaxPixels bounds the area of a buffer, 1 GiB of samples.
const MaxPixels = 1 << 28

// CheckSize returns ErrInvalidDimensions when width or height is negative,
// when either exceeds MaxPixels, or when the area exceeds MaxPixels.
func CheckSize(width, height int) error {
	if width < 0 || height < 0 || width > MaxPixels || height > MaxPixels ||
		(height > 0 && width > MaxPixels/height) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// NewBuffer allocates a fully transparent buffer.
// Negative dimensions are treated as zero. NewBuffer panics when the size
// fails CheckSize.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	if err := CheckSize(width, height); err != nil {
		panic(err)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Stride: width * 4,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromPix wraps pix as a buffer without copying.
// len(pix) must equal width*height*4.
func FromPix(pix []uint8, width, height int) (*Buffer, error) {
	if CheckSize(width, height) != nil || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidDimensions, width, height, len(pix))
	}
	return &Buffer{Width: width, Height: height, Stride: width * 4, Pix: pix}, nil
}

// FromImage copies img into a new buffer whose origin is img.Bounds().Min.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.Pix[y*b.Stride:(y+1)*b.Stride], src.Pix[off:off+b.Stride])
		}
		return b
	}
	dst := b.NRGBA()
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return b
}

// NRGBA returns an image view sharing the buffer's pixels.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{Width: b.Width, Height: b.Height, Stride: b.Stride, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Offset returns the index of the red channel of (x, y).
func (b *Buffer) Offset(x, y int) int {
	return y*b.Stride + x*4
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the pixel at (x, y), or transparent black outside the buffer.
func (b *Buffer) At(x, y int) color.NRGBA {
	if !b.In(x, y) {
		return color.NRGBA{}
	}
	i := b.Offset(x, y)
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set writes the pixel at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.In(x, y) {
		return
	}
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c.R, c.G, c.B, c.A
}

// Alpha returns the alpha channel of (x, y), or 0 outside the buffer.
func (b *Buffer) Alpha(x, y int) uint8 {
	if !b.In(x, y) {
		return 0
	}
	return b.Pix[b.Offset(x, y)+3]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Crop copies the part of b covered by r into a new buffer.
// An empty rectangle, or one outside b, yields a 0×0 buffer.
func Crop(b *Buffer, r Rect) *Buffer {
	if r.Empty() {
		return NewBuffer(0, 0)
	}
	area := r.Bounds().Intersect(b.Bounds())
	out := NewBuffer(area.Dx(), area.Dy())
	for y := 0; y < out.Height; y++ {
		src := b.Offset(area.Min.X, area.Min.Y+y)
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], b.Pix[src:src+out.Stride])
	}
	return out
}
