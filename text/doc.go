// Package text resolves CSS font shorthands to faces, shapes strings into
// positioned glyphs and emits glyph outlines as path commands.
//
// Parsing and outlines use golang.org/x/image/font/sfnt, shaping uses
// go-text/typesetting's HarfBuzz port and bidi runs come from
// golang.org/x/text/unicode/bidi. A Library preloaded with the Go fonts is
// available through Default, so the package works without any font files:
//
//	f, _ := text.ParseFont("bold 24px sans-serif")
//	face := text.Default().Resolve(f)
//	glyphs := face.Shape("Hello", text.LTR)
//	face.Outline(path, glyphs, 10, 40)
package text
