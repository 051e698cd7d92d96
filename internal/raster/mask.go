package raster

import "image"

// Intersect multiplies dst by clip in place. Both masks must share bounds.
// A nil clip leaves dst unchanged.
func Intersect(dst, clip *image.Alpha) {
	if clip == nil {
		return
	}
	for i, c := range clip.Pix {
		if c == 255 {
			continue
		}
		dst.Pix[i] = uint8((uint16(dst.Pix[i])*uint16(c) + 127) / 255)
	}
}

// Bounds returns the smallest rectangle containing every nonzero sample of
// m, or the empty rectangle.
func Bounds(m *image.Alpha) image.Rectangle {
	r := image.Rectangle{}
	w := m.Rect.Dx()
	for y := 0; y < m.Rect.Dy(); y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x, v := range row {
			if v != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r.Add(m.Rect.Min)
}

// Full returns a fully opaque mask of the given size.
func Full(width, height int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	return m
}
