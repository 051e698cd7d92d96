package pixel

// IsEmpty reports whether every pixel of b is fully transparent.
// A 0×0 buffer is empty.
func IsEmpty(b *Buffer) bool {
	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// RowTransparent reports whether every pixel in row y has alpha 0.
// Rows outside [0, Height) are reported as not transparent, which bounds
// the trimming scans.
func (b *Buffer) RowTransparent(y int) bool {
	if y < 0 || y >= b.Height {
		return false
	}
	row := b.Pix[y*b.Stride : y*b.Stride+b.Width*4]
	for i := 3; i < len(row); i += 4 {
		if row[i] != 0 {
			return false
		}
	}
	return true
}

// ColumnTransparent reports whether every pixel in column x has alpha 0.
// Columns outside [0, Width) are reported as not transparent.
func (b *Buffer) ColumnTransparent(x int) bool {
	if x < 0 || x >= b.Width {
		return false
	}
	for i := x*4 + 3; i < len(b.Pix); i += b.Stride {
		if b.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// TrimmingRect returns the smallest rectangle containing every pixel of b
// with nonzero alpha, or the empty Rect when there is none.
func TrimmingRect(b *Buffer) Rect {
	top := 0
	for b.RowTransparent(top) {
		top++
	}
	if top >= b.Height {
		return Rect{}
	}

	bottom := b.Height
	for b.RowTransparent(bottom - 1) {
		bottom--
	}

	left := 0
	for b.ColumnTransparent(left) {
		left++
	}

	right := b.Width
	for b.ColumnTransparent(right - 1) {
		right--
	}

	return NewRect(left, top, right-left, bottom-top)
}
