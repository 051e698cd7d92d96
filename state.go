package canvas

import (
	"image"
	"slices"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

// LineCap is the shape at the open ends of stroked lines.
type LineCap uint8

// Line caps.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

var lineCapNames = []string{"butt", "round", "square"}

func (c LineCap) String() string { return keyword(lineCapNames, int(c)) }

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, bool) {
	i, ok := lookupKeyword(lineCapNames, s)
	return LineCap(i), ok
}

// LineJoin is the shape where stroked segments meet.
type LineJoin uint8

// Line joins.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

var lineJoinNames = []string{"miter", "round", "bevel"}

func (j LineJoin) String() string { return keyword(lineJoinNames, int(j)) }

// ParseLineJoin parses "miter", "round" or "bevel".
func ParseLineJoin(s string) (LineJoin, bool) {
	i, ok := lookupKeyword(lineJoinNames, s)
	return LineJoin(i), ok
}

// TextAlign is the horizontal anchor of drawn text.
type TextAlign uint8

// Text alignments. Start and End follow the text direction.
const (
	AlignStart TextAlign = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
)

var textAlignNames = []string{"start", "end", "left", "right", "center"}

func (a TextAlign) String() string { return keyword(textAlignNames, int(a)) }

// ParseTextAlign parses a textAlign keyword.
func ParseTextAlign(s string) (TextAlign, bool) {
	i, ok := lookupKeyword(textAlignNames, s)
	return TextAlign(i), ok
}

// TextBaseline is the vertical anchor of drawn text.
type TextBaseline uint8

// Text baselines.
const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineIdeographic
	BaselineBottom
)

var textBaselineNames = []string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b TextBaseline) String() string { return keyword(textBaselineNames, int(b)) }

// ParseTextBaseline parses a textBaseline keyword.
func ParseTextBaseline(s string) (TextBaseline, bool) {
	i, ok := lookupKeyword(textBaselineNames, s)
	return TextBaseline(i), ok
}

// SmoothingQuality selects the resampling filter for scaled images.
type SmoothingQuality uint8

// Smoothing qualities.
const (
	QualityLow SmoothingQuality = iota
	QualityMedium
	QualityHigh
)

var qualityNames = []string{"low", "medium", "high"}

func (q SmoothingQuality) String() string { return keyword(qualityNames, int(q)) }

// ParseSmoothingQuality parses "low", "medium" or "high".
func ParseSmoothingQuality(s string) (SmoothingQuality, bool) {
	i, ok := lookupKeyword(qualityNames, s)
	return SmoothingQuality(i), ok
}

func keyword(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return names[0]
}

func lookupKeyword(names []string, s string) (int, bool) {
	i := slices.Index(names, s)
	return max(i, 0), i >= 0
}

// state is everything Save pushes and Restore pops.
type state struct {
	fill, stroke Style

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dash       []float64
	dashOffset float64

	font         text.Font
	face         *text.Face
	textAlign    TextAlign
	textBaseline TextBaseline
	direction    text.Direction

	globalAlpha float64
	op          blend.Op

	shadowBlur    float64
	shadowColor   RGBA
	shadowOffsetX float64
	shadowOffsetY float64

	smoothing bool
	quality   SmoothingQuality

	ctm Matrix
	// clip is nil when nothing is clipped. Masks are never modified in
	// place, so saved states may share them.
	clip *image.Alpha
}

func defaultState() state {
	return state{
		fill:        Black,
		stroke:      Black,
		lineWidth:   1,
		miterLimit:  10,
		font:        text.DefaultFont,
		direction:   text.Inherit,
		globalAlpha: 1,
		op:          blend.SourceOver,
		shadowColor: Transparent,
		smoothing:   true,
		ctm:         Identity(),
	}
}

func (st state) clone() state {
	st.dash = slices.Clone(st.dash)
	return st
}

func (st *state) strokeStyle(scale float64) raster.StrokeStyle {
	return raster.StrokeStyle{
		Width:      st.lineWidth * scale,
		Cap:        raster.Cap(st.lineCap),
		Join:       raster.Join(st.lineJoin),
		MiterLimit: st.miterLimit,
	}
}

// Save pushes the drawing state: styles, line and text properties,
// compositing, shadows, the transformation and the clip.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.st.clone())
}

// Restore pops the state pushed by the matching Save. Without a saved
// state it does nothing.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.st = s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.path.setMatrix(s.st.ctm)
}

// Reset clears the pixels, the state stack and the current path, and
// restores every property to its default.
func (s *Surface) Reset() {
	clear(s.img.Pix)
	s.st = defaultState()
	s.stack = nil
	s.path = Path{}
}
