package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/canvas"
)

// upperHalf draws the top pixel as foreground and the bottom one as
// background, giving two pixel rows per terminal cell.
const upperHalf = '▀'

// runPreview shows s scaled to the terminal until a key is pressed.
func runPreview(s *canvas.Surface) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		drawPreview(screen, s)
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

func drawPreview(screen tcell.Screen, s *canvas.Surface) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols == 0 || rows == 0 || s.Width() == 0 || s.Height() == 0 {
		screen.Show()
		return
	}

	// Fit the surface into cols × 2·rows pixels keeping its aspect ratio.
	scale := min(float64(cols)/float64(s.Width()), float64(2*rows)/float64(s.Height()))
	pw, ph := int(float64(s.Width())*scale), int(float64(s.Height())*scale)

	for cy := 0; cy < (ph+1)/2; cy++ {
		for cx := 0; cx < pw; cx++ {
			top := sample(s, cx, 2*cy, scale)
			bottom := sample(s, cx, 2*cy+1, scale)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	screen.Show()
}

// checker is the terminal backdrop behind transparent pixels.
var checker = colorful.Color{R: 0.15, G: 0.15, B: 0.15}

func sample(s *canvas.Surface, x, y int, scale float64) tcell.Color {
	c := s.At(int(float64(x)/scale), int(float64(y)/scale))
	return tcell.NewRGBColor(flatten(c))
}

// flatten composites c over the backdrop in linear light.
func flatten(c color.NRGBA) (int32, int32, int32) {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := checker.BlendLinearRgb(fg, float64(c.A)/255).Clamped().RGB255()
	return int32(r), int32(g), int32(b)
}
