// Command canvasdemo renders a sample scene with the canvas package and
// writes it to a file, optionally previewing it in the terminal.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/pixel"
)

func main() {
	var (
		width    = flag.Int("width", 480, "surface width")
		height   = flag.Int("height", 320, "surface height")
		output   = flag.String("o", "demo.png", "output file")
		format   = flag.String("format", canvas.MIMEPNG, "output MIME type (png, jpeg, gif, bmp, tiff)")
		quality  = flag.Float64("quality", canvas.DefaultJPEGQuality, "JPEG quality in [0, 1]")
		trim     = flag.Bool("trim", false, "crop transparent borders before saving")
		alias    = flag.Int("alias", -1, "snap alpha to 0 or 255 around this threshold (0-255)")
		convolve = flag.String("convolve", "", "apply a kernel: box, sharpen or blur")
		preview  = flag.Bool("preview", false, "show the result in the terminal")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := canvas.New(canvas.FromSize(*width, *height))
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	drawScene(s)

	if *convolve != "" {
		k, err := kernel(*convolve)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.Convolve(k); err != nil {
			log.Fatalf("Convolve failed: %v", err)
		}
	}
	if *alias >= 0 {
		s.Alias(min(*alias, 255))
	}
	if *trim {
		r := s.Trim()
		log.Printf("Trimmed to %v", r)
	}

	if err := save(s, *output, *format, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, s.Width(), s.Height())

	if *preview {
		if err := runPreview(s); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
	}
}

func kernel(name string) ([]float64, error) {
	switch strings.ToLower(name) {
	case "box":
		return pixel.BoxKernel(3), nil
	case "sharpen":
		return pixel.SharpenKernel(), nil
	case "blur":
		return pixel.GaussianKernel(2), nil
	}
	return nil, fmt.Errorf("unknown kernel %q", name)
}

// save writes the surface through its data URL so the format fallback
// matches ToDataURL.
func save(s *canvas.Surface, path, format string, quality float64) error {
	if !strings.Contains(format, "/") {
		format = "image/" + format
	}
	u, err := s.ToDataURL(format, quality)
	if err != nil {
		return err
	}
	_, payload, ok := strings.Cut(u, ";base64,")
	if !ok {
		return fmt.Errorf("nothing to write for %dx%d surface", s.Width(), s.Height())
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func drawScene(s *canvas.Surface) {
	w, h := float64(s.Width()), float64(s.Height())

	bg := canvas.NewLinearGradient(0, 0, 0, h)
	_ = bg.AddColorStop(0, "#1a2a4a")
	_ = bg.AddColorStop(1, "#4a6a8a")
	s.FillBackground(bg)

	drawShapes(s)
	drawTransforms(s, w)
	drawPath(s, w, h)
	drawLabel(s, w, h)
}

func drawShapes(s *canvas.Surface) {
	s.SetGlobalAlpha(0.8)
	for i, c := range []string{"#ff4d4d", "#4dff4d", "#4d4dff"} {
		s.SetFillColor(c)
		s.FillCircle(90+float64(i%2)*40, 90+float64(i/2)*40, 45)
	}
	s.SetGlobalAlpha(1)

	s.SetShadowColor("rgba(0, 0, 0, 0.5)")
	s.SetShadowBlur(8)
	s.SetShadowOffsetX(4)
	s.SetShadowOffsetY(4)
	s.SetFillColor("gold")
	s.BeginPath()
	_ = s.RoundRect(200, 50, 100, 70, 12)
	s.Fill(canvas.NonZero)
	s.SetShadowColor("transparent")

	s.SetStrokeColor("white")
	s.SetLineWidth(3)
	s.SetLineDash([]float64{8, 4})
	s.StrokeRect(200, 50, 100, 70)
	s.SetLineDash(nil)
}

func drawTransforms(s *canvas.Surface, w float64) {
	s.Save()
	s.Translate(w-90, 90)
	for i := 0; i < 6; i++ {
		s.Save()
		s.Rotate(float64(i) * math.Pi / 6)
		s.SetFillColor(fmt.Sprintf("hsl(%d, 80%%, 60%%)", i*60))
		s.FillRect(-30, -30, 60, 60)
		s.Restore()
	}
	s.Restore()
}

func drawPath(s *canvas.Surface, w, h float64) {
	s.SetStrokeColor("#ffd24d")
	s.SetLineWidth(4)
	s.SetLineCap(canvas.CapRound)
	s.BeginPath()
	s.MoveTo(20, h-80)
	for x := 20.0; x <= w-20; x += 4 {
		s.LineTo(x, h-80+25*math.Sin((x-20)/30))
	}
	s.Stroke()

	s.SetStrokeColor("#4dd2ff")
	s.BezierCurve(20, h-30, w/3, h-90, 2*w/3, h+30, w-20, h-30)
}

func drawLabel(s *canvas.Surface, w, h float64) {
	s.SetFont("bold 20px sans-serif")
	s.SetTextAlign(canvas.AlignCenter)
	s.SetFillColor("white")
	s.FillText("canvas", w/2, h/2)

	m := s.MeasureText("canvas")
	s.SetStrokeColor("rgba(255, 255, 255, 0.4)")
	s.SetLineWidth(1)
	s.StrokeRect(w/2-m.Width/2-4, h/2-m.ActualBoundingBoxAscent-4,
		m.Width+8, m.ActualBoundingBoxAscent+m.ActualBoundingBoxDescent+8)
}
