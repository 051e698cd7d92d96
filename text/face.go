package text

import (
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a typeface at a pixel size.
type Face struct {
	tf   *Typeface
	size float64
}

// Typeface returns the typeface f draws with.
func (f *Face) Typeface() *Typeface { return f.tf }

// Size returns the pixel size of f.
func (f *Face) Size() float64 { return f.size }

// Metrics are the vertical font metrics of a face in pixels. Ascent and
// Descent are both positive distances from the alphabetic baseline.
type Metrics struct {
	Ascent    float64
	Descent   float64
	Height    float64
	XHeight   float64
	CapHeight float64
}

// Metrics returns the vertical metrics of f.
func (f *Face) Metrics() Metrics {
	face, err := opentype.NewFace(f.tf.outlines, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		// Synthesize from the em size.
		return Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2, Height: f.size}
	}
	defer face.Close()
	m := face.Metrics()
	return Metrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		Height:    fromFixed(m.Height),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Glyph is a shaped glyph positioned relative to the start of its line.
// Y grows downwards.
type Glyph struct {
	ID      uint16
	Cluster int
	X, Y    float64
	Advance float64
}

var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// runCacheSize bounds the shaped runs kept per typeface.
const runCacheSize = 256

type runKey struct {
	text string
	size float64
	dir  Direction
}

// Shape converts s into glyphs in visual order, starting at x = 0 on the
// baseline. dir is the paragraph direction; Inherit detects it from s.
// Results are cached per typeface; the returned slice is the caller's.
func (f *Face) Shape(s string, dir Direction) []Glyph {
	if s == "" || !(f.size > 0) {
		return nil
	}
	dir = dir.Resolve(s)
	if f.tf.runs == nil {
		return f.shape(s, dir)
	}
	glyphs := f.tf.runs.GetOrCreate(runKey{s, f.size, dir}, func() []Glyph {
		return f.shape(s, dir)
	})
	return slices.Clone(glyphs)
}

func (f *Face) shape(s string, dir Direction) []Glyph {
	runes := []rune(s)

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer shaperPool.Put(hb)
	face := gotext.NewFace(f.tf.shaping)

	var glyphs []Glyph
	var x float64
	for _, run := range visualRuns(s, len(runes), dir) {
		d := di.DirectionLTR
		if run.rtl {
			d = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: d,
			Face:      face,
			Size:      toFixed(f.size),
			Script:    scriptOf(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			adv := fromFixed(g.Advance)
			glyphs = append(glyphs, Glyph{
				ID:      uint16(g.GlyphID),
				Cluster: g.TextIndex(),
				X:       x + fromFixed(g.XOffset),
				Y:       -fromFixed(g.YOffset),
				Advance: adv,
			})
			x += adv
		}
	}
	return glyphs
}

// Advance returns the total advance width of glyphs.
func Advance(glyphs []Glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.Advance
	}
	return w
}

// PathSink receives glyph outlines as path commands in pixel space.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	ClosePath()
}

// Outline emits the outlines of glyphs with the line origin at (x, y) on
// the alphabetic baseline. sx scales horizontally about x, which condenses
// text to a maximum width.
func (f *Face) Outline(dst PathSink, glyphs []Glyph, x, y, sx float64) {
	var buf sfnt.Buffer
	ppem := toFixed(f.size)
	for _, g := range glyphs {
		segs, err := f.tf.outlines.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			Logger().Debug("text: skip glyph", "id", g.ID, "err", err)
			continue
		}
		ox, oy := g.X, y+g.Y
		pt := func(p fixed.Point26_6) (float64, float64) {
			return x + (ox+fromFixed(p.X))*sx, oy + fromFixed(p.Y)
		}

		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					dst.ClosePath()
				}
				dst.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				dst.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(seg.Args[0])
				px, py := pt(seg.Args[1])
				dst.QuadraticCurveTo(cx, cy, px, py)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(seg.Args[0])
				c2x, c2y := pt(seg.Args[1])
				px, py := pt(seg.Args[2])
				dst.BezierCurveTo(c1x, c1y, c2x, c2y, px, py)
			}
		}
		if open {
			dst.ClosePath()
		}
	}
}

// Ink is the bounding box of glyph outlines relative to the line origin,
// with Y growing downwards.
type Ink struct {
	MinX, MinY, MaxX, MaxY float64
	Empty                  bool
}

// Bounds returns the ink bounds of glyphs from their outline control points.
func (f *Face) Bounds(glyphs []Glyph) Ink {
	ink := Ink{Empty: true}
	var buf sfnt.Buffer
	ppem := toFixed(f.size)
	for _, g := range glyphs {
		segs, err := f.tf.outlines.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			continue
		}
		for _, seg := range segs {
			n := 1
			switch seg.Op {
			case sfnt.SegmentOpQuadTo:
				n = 2
			case sfnt.SegmentOpCubeTo:
				n = 3
			}
			for _, p := range seg.Args[:n] {
				px, py := g.X+fromFixed(p.X), g.Y+fromFixed(p.Y)
				if ink.Empty {
					ink = Ink{MinX: px, MinY: py, MaxX: px, MaxY: py}
					continue
				}
				ink.MinX = min(ink.MinX, px)
				ink.MinY = min(ink.MinY, py)
				ink.MaxX = max(ink.MaxX, px)
				ink.MaxY = max(ink.MaxY, py)
			}
		}
	}
	return ink
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
