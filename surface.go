package canvas

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/canvas/coerce"
	"github.com/gogpu/canvas/pixel"
	"github.com/gogpu/canvas/text"
)

// Default surface dimensions, used when a size is missing or not a number.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// Size limits. Sizes are clamped to MaxDimension per side; surfaces and
// image data with a larger area than MaxArea are refused with ErrIndexSize.
const (
	MaxDimension = 1 << 15
	MaxArea      = pixel.MaxPixels
)

// checkSize reports ErrIndexSize for sizes outside the limits.
func checkSize(w, h int) error {
	if w > MaxDimension || h > MaxDimension || pixel.CheckSize(w, h) != nil {
		return fmt.Errorf("%w: %dx%d exceeds the surface limits", ErrIndexSize, w, h)
	}
	return nil
}

// Surface is an in-memory 2D drawing surface with canvas-style drawing
// state. A Surface is not safe for concurrent use.
type Surface struct {
	id       string
	registry *Registry
	fonts    *text.Library

	// img holds premultiplied pixels.
	img   *image.RGBA
	st    state
	stack []state
	path  Path
}

// Source is what a surface is created from. Use one of the From
// constructors; New dispatches on it once.
type Source interface {
	kind() string
}

// VideoSource supplies the current frame of a video.
type VideoSource interface {
	CurrentFrame() (image.Image, error)
}

type surfaceSource struct{ s *Surface }
type imageSource struct{ img image.Image }
type videoSource struct{ v VideoSource }
type selectorSource struct{ selector string }
type sizeSource struct{ w, h any }
type fileSource struct{ path string }

func (surfaceSource) kind() string  { return "surface" }
func (imageSource) kind() string    { return "image" }
func (videoSource) kind() string    { return "video" }
func (selectorSource) kind() string { return "selector" }
func (sizeSource) kind() string     { return "size" }
func (fileSource) kind() string     { return "file" }

// FromSurface copies the pixels of another surface.
func FromSurface(s *Surface) Source { return surfaceSource{s} }

// FromImage copies a decoded image.
func FromImage(img image.Image) Source { return imageSource{img} }

// FromVideo copies the current frame of v.
func FromVideo(v VideoSource) Source { return videoSource{v} }

// FromSelector resolves "#id" or "id" in the registry and wraps the
// surface found there.
func FromSelector(selector string) Source { return selectorSource{selector} }

// FromDimensions is FromSize for a [width, height] pair.
func FromDimensions(d [2]any) Source { return sizeSource{d[0], d[1]} }

// FromSize creates a blank surface. Width and height are coerced: strings
// are parsed, fractions floored, negatives clamped to 0, and values that are
// not numbers fall back to 300×150.
func FromSize(width, height any) Source { return sizeSource{width, height} }

// FromImageFile decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file.
func FromImageFile(path string) Source { return fileSource{path} }

// New creates a surface from src. A nil src gives a blank 300×150 surface.
//
// FromSelector returns the registered surface itself rather than a copy;
// every other source yields a new surface.
func New(src Source, opts ...Option) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		src = sizeSource{}
	}

	var (
		s   *Surface
		err error
	)
	switch v := src.(type) {
	case selectorSource:
		return o.registry.Lookup(v.selector)
	case sizeSource:
		w, h := coerceDim(v.w, DefaultWidth), coerceDim(v.h, DefaultHeight)
		if err := checkSize(w, h); err != nil {
			return nil, err
		}
		s = newSurface(w, h, o)
	case surfaceSource:
		if v.s == nil {
			return nil, fmt.Errorf("%w: nil surface", ErrUnsupportedSource)
		}
		s = newSurface(v.s.Width(), v.s.Height(), o)
		copy(s.img.Pix, v.s.img.Pix)
	case imageSource:
		s, err = fromImage(v.img, o)
	case videoSource:
		if v.v == nil {
			return nil, fmt.Errorf("%w: nil video", ErrUnsupportedSource)
		}
		frame, ferr := v.v.CurrentFrame()
		if ferr != nil {
			return nil, fmt.Errorf("canvas: video frame: %w", ferr)
		}
		s, err = fromImage(frame, o)
	case fileSource:
		s, err = fromFile(v.path, o)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	if err != nil {
		return nil, err
	}

	if o.id != "" {
		s.id = o.id
		o.registry.Register(o.id, s)
	}
	Logger().Debug("canvas: surface created", "source", src.kind(), "width", s.Width(), "height", s.Height())
	return s, nil
}

func coerceDim(v any, fallback float64) int {
	return coerce.Int(v, coerce.Options{
		Min:      coerce.Some(0),
		Max:      coerce.Some(MaxDimension),
		Integer:  true,
		NaN:      coerce.Some(fallback),
		Infinity: coerce.Some(fallback),
	})
}

func newSurface(w, h int, o options) *Surface {
	s := &Surface{
		registry: o.registry,
		fonts:    o.fonts,
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		st:       defaultState(),
	}
	return s
}

func fromImage(img image.Image, o options) (*Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrUnsupportedSource)
	}
	b := img.Bounds()
	if err := checkSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	s := newSurface(b.Dx(), b.Dy(), o)
	draw.Draw(s.img, s.img.Rect, img, b.Min, draw.Src)
	return s, nil
}

func fromFile(path string, o options) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode %s: %w", path, err)
	}
	return fromImage(img, o)
}

// ID returns the id the surface was registered under, if any.
func (s *Surface) ID() string { return s.id }

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image returns the premultiplied pixels backing the surface. The image is
// shared; it is valid until the next SetSize, Resize or pixel filter.
func (s *Surface) Image() *image.RGBA { return s.img }

// At returns the non-premultiplied colour at (x, y).
func (s *Surface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clone returns an independent copy of the surface, including its drawing
// state and current path. The clone is not registered.
func (s *Surface) Clone() *Surface {
	c := &Surface{
		registry: s.registry,
		fonts:    s.fonts,
		img:      image.NewRGBA(s.img.Rect),
		st:       s.st.clone(),
		path:     *s.path.Clone(),
	}
	copy(c.img.Pix, s.img.Pix)
	for _, st := range s.stack {
		c.stack = append(c.stack, st.clone())
	}
	return c
}

// SetSize resizes the surface, clearing its pixels and resetting the
// drawing state, like assigning a canvas width or height. Negative sizes
// are treated as zero; sizes beyond MaxDimension or MaxArea are ignored.
func (s *Surface) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if checkSize(width, height) != nil {
		s.ignored("size", [2]int{width, height})
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.st = defaultState()
	s.stack = nil
	s.path = Path{}
}

// Resize changes the dimensions while keeping the pixels anchored at the
// top-left corner and the drawing state intact. The clip is dropped since it
// no longer matches the surface. Sizes beyond the limits are ignored.
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if checkSize(width, height) != nil {
		s.ignored("size", [2]int{width, height})
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Rect, s.img, image.Point{}, draw.Src)
	s.replace(img)
}

// replace swaps the backing image in one assignment, dropping clips that no
// longer fit.
func (s *Surface) replace(img *image.RGBA) {
	if img.Rect != s.img.Rect {
		s.st.clip = nil
		for i := range s.stack {
			s.stack[i].clip = nil
		}
	}
	s.img = img
}
