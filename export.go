package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/url"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder for LoadImage and FromImageFile

	"github.com/gogpu/canvas/coerce"
)

// Export MIME types.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEBMP  = "image/bmp"
	MIMETIFF = "image/tiff"
)

// DefaultJPEGQuality is used when a JPEG quality is outside [0, 1].
const DefaultJPEGQuality = 0.92

// encoders maps supported export types to their encoders.
var encoders = map[string]func(io.Writer, image.Image, float64) error{
	MIMEPNG: func(w io.Writer, img image.Image, _ float64) error {
		return png.Encode(w, img)
	},
	MIMEJPEG: func(w io.Writer, img image.Image, q float64) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: max(1, int(q*100+0.5))})
	},
	MIMEGIF: func(w io.Writer, img image.Image, _ float64) error {
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	},
	MIMEBMP: func(w io.Writer, img image.Image, _ float64) error {
		return bmp.Encode(w, img)
	},
	MIMETIFF: func(w io.Writer, img image.Image, _ float64) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	},
}

// exportType normalizes mime to a supported type, falling back to PNG.
func exportType(mime string) string {
	m := strings.ToLower(strings.TrimSpace(mime))
	if m == "" {
		return MIMEPNG
	}
	if _, ok := encoders[m]; !ok {
		Logger().Warn("canvas: unsupported export type, using PNG", "mime", mime)
		return MIMEPNG
	}
	return m
}

// jpegQuality coerces q into [0, 1], substituting the default for values
// outside it.
func jpegQuality(q float64) float64 {
	if !(q >= 0 && q <= 1) {
		return DefaultJPEGQuality
	}
	return coerce.Number(q, coerce.Options{Min: coerce.Some(0.0), Max: coerce.Some(1.0)})
}

// Encode writes the surface in the format named by mime and returns the
// type actually written. Unsupported types are written as PNG. quality
// applies to JPEG only and ranges over [0, 1]. JPEG has no alpha channel,
// so transparent pixels come out black.
func (s *Surface) Encode(w io.Writer, mime string, quality float64) (string, error) {
	m := exportType(mime)
	if err := encoders[m](w, s.img, jpegQuality(quality)); err != nil {
		return m, fmt.Errorf("canvas: encode %s: %w", m, err)
	}
	return m, nil
}

// ToDataURL encodes the surface as a base64 data URL. A surface without
// pixels yields "data:,".
func (s *Surface) ToDataURL(mime string, quality float64) (string, error) {
	if s.Width() == 0 || s.Height() == 0 {
		return "data:,", nil
	}
	var buf bytes.Buffer
	m, err := s.Encode(&buf, mime, quality)
	if err != nil {
		return "", err
	}
	Logger().Debug("canvas: exported", "mime", m, "bytes", buf.Len())
	return "data:" + m + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if _, err := s.Encode(f, MIMEPNG, 0); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Image is a decoded image together with the data URL it was loaded from.
// It implements image.Image and can be drawn with DrawImage.
type Image struct {
	src  string
	mime string
	img  image.Image
}

// Src returns the data URL the image was decoded from.
func (i *Image) Src() string { return i.src }

// MIME returns the media type declared by the data URL.
func (i *Image) MIME() string { return i.mime }

// ColorModel implements the image.Image interface.
func (i *Image) ColorModel() color.Model { return i.img.ColorModel() }

// Bounds implements the image.Image interface.
func (i *Image) Bounds() image.Rectangle { return i.img.Bounds() }

// At implements the image.Image interface.
func (i *Image) At(x, y int) color.Color { return i.img.At(x, y) }

// ToImage encodes the surface and decodes the result into an Image, as an
// export round trip would. onLoad, when not nil, is called with the image
// once it is decoded.
func (s *Surface) ToImage(mime string, quality float64, onLoad func(*Image)) (*Image, error) {
	u, err := s.ToDataURL(mime, quality)
	if err != nil {
		return nil, err
	}
	img, err := LoadImage(u)
	if err != nil {
		return nil, err
	}
	if onLoad != nil {
		onLoad(img)
	}
	return img, nil
}

// LoadImage decodes an image from a data URL such as one produced by
// ToDataURL. Malformed URLs and undecodable payloads fail with ErrSyntax.
func LoadImage(dataURL string) (*Image, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: not a data URL", ErrSyntax)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URL without payload", ErrSyntax)
	}

	mime, isBase64 := strings.CutSuffix(header, ";base64")
	var data []byte
	if isBase64 {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: base64 payload: %v", ErrSyntax, err)
		}
		data = b
	} else {
		p, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: payload: %v", ErrSyntax, err)
		}
		data = []byte(p)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrSyntax, err)
	}
	if mime == "" {
		mime = "image/" + format
	}
	return &Image{src: dataURL, mime: mime, img: img}, nil
}
