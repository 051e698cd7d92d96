// Package canvas provides an in-memory 2D drawing surface with an
// HTML-canvas-style drawing state.
//
// # Overview
//
// A [Surface] owns a premultiplied RGBA pixel buffer and the state a canvas
// 2D context carries: fill and stroke styles, line geometry, fonts,
// compositing, shadows, the transformation, the clip and a save/restore
// stack. Each property has a separate accessor and mutator; mutators coerce
// or ignore invalid input the way a browser does instead of returning
// errors.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	s, _ := canvas.New(canvas.FromSize(320, 200))
//
//	s.SetFillColor("tomato")
//	s.FillCircle(160, 100, 60)
//
//	s.SetFont("bold 24px sans-serif")
//	s.SetTextAlign(canvas.AlignCenter)
//	s.FillText("hello", 160, 110)
//
//	s.SavePNG("hello.png")
//
// # Construction
//
// [New] takes a [Source], built with one of the From constructors: a size,
// another surface, a decoded image, a video frame, an image file or a
// selector registered with [WithID].
//
// # Drawing
//
// Instant drawers such as [Surface.FillRect], [Surface.Line] and
// [Surface.FillText] paint immediately and leave the current path alone.
// The path API ([Surface.BeginPath], [Surface.Arc], [Surface.Fill], ...)
// builds a path under the transformation in effect at each call.
//
// # Pixel Utilities
//
// [Surface.TrimmingRect], [Surface.Trim], [Surface.Alias],
// [Surface.Convolve] and the averaging methods bind the buffer functions
// of package pixel to the surface.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing clockwise on screen
//
// # Logging
//
// canvas is silent by default. Install a [log/slog] logger with
// [SetLogger] to see surface creation, exports and ignored input.
package canvas
