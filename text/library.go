package text

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/canvas/internal/cache"
)

// Typeface is one parsed font file: a family in a given weight and slant.
// It is safe for concurrent use.
type Typeface struct {
	Family string
	Bold   bool
	Italic bool

	outlines *sfnt.Font
	shaping  *gotext.Font
	runs     *cache.Cache[runKey, []Glyph]
}

// NewTypeface parses TrueType or OpenType data.
func NewTypeface(family string, bold, italic bool, data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", family, err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", family, err)
	}
	return &Typeface{
		Family:   family,
		Bold:     bold,
		Italic:   italic,
		outlines: outlines,
		shaping:  face.Font,
		runs:     cache.New[runKey, []Glyph](runCacheSize),
	}, nil
}

// Face returns the typeface at size pixels.
func (t *Typeface) Face(size float64) *Face {
	return &Face{tf: t, size: size}
}

type entry struct {
	bold, italic bool
	data         []byte

	once sync.Once
	tf   *Typeface
	err  error
}

func (e *entry) typeface(family string) (*Typeface, error) {
	e.once.Do(func() {
		e.tf, e.err = NewTypeface(family, e.bold, e.italic, e.data)
	})
	return e.tf, e.err
}

// Library maps family names to typefaces. Font data is parsed on first use.
// It is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	families map[string][]*entry
	fallback string
}

// NewLibrary returns a library holding the Go font family. "sans-serif",
// "serif" and "system-ui" resolve to Go, "monospace" resolves to Go Mono.
func NewLibrary() *Library {
	l := &Library{families: make(map[string][]*entry), fallback: "sans-serif"}

	regular := [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}
	mono := [4][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF}
	for _, fam := range []string{"go", "sans-serif", "serif", "system-ui", "cursive", "fantasy"} {
		l.registerSet(fam, regular)
	}
	for _, fam := range []string{"go mono", "monospace"} {
		l.registerSet(fam, mono)
	}
	l.add("go medium", false, false, gomedium.TTF)
	l.add("go medium", false, true, gomediumitalic.TTF)
	l.add("go smallcaps", false, false, gosmallcaps.TTF)
	l.add("go smallcaps", false, true, gosmallcapsitalic.TTF)
	return l
}

func (l *Library) registerSet(family string, set [4][]byte) {
	l.add(family, false, false, set[0])
	l.add(family, true, false, set[1])
	l.add(family, false, true, set[2])
	l.add(family, true, true, set[3])
}

func (l *Library) add(family string, bold, italic bool, data []byte) {
	key := strings.ToLower(family)
	l.families[key] = append(l.families[key], &entry{bold: bold, italic: italic, data: data})
}

// Register adds font data under family. The data is validated immediately.
func (l *Library) Register(family string, bold, italic bool, data []byte) error {
	tf, err := NewTypeface(family, bold, italic, data)
	if err != nil {
		return err
	}
	e := &entry{bold: bold, italic: italic, tf: tf}
	e.once.Do(func() {})

	key := strings.ToLower(family)
	l.mu.Lock()
	defer l.mu.Unlock()
	// Newer registrations win over older ones with the same weight and slant.
	l.families[key] = append([]*entry{e}, l.families[key]...)
	return nil
}

// Families returns the registered family names.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.families))
	for name := range l.families {
		names = append(names, name)
	}
	return names
}

// Resolve returns a face for f, trying each family in order and falling back
// to sans-serif.
func (l *Library) Resolve(f Font) *Face {
	for _, fam := range f.Families {
		if tf := l.lookup(fam, f.Bold(), f.Italic()); tf != nil {
			return tf.Face(f.Size)
		}
	}
	return l.lookup(l.fallback, f.Bold(), f.Italic()).Face(f.Size)
}

func (l *Library) lookup(family string, bold, italic bool) *Typeface {
	l.mu.RLock()
	entries := l.families[strings.ToLower(family)]
	l.mu.RUnlock()
	if len(entries) == 0 {
		return nil
	}

	best, bestScore := entries[0], -1
	for _, e := range entries {
		score := 0
		if e.italic == italic {
			score += 2
		}
		if e.bold == bold {
			score++
		}
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	tf, err := best.typeface(family)
	if err != nil {
		Logger().Warn("text: unusable typeface", "family", family, "err", err)
		return nil
	}
	return tf
}

var defaultLibrary = sync.OnceValue(NewLibrary)

// Default returns the shared library used when no other is configured.
func Default() *Library {
	return defaultLibrary()
}
