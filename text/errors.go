package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned by ParseFont for a malformed shorthand.
	ErrInvalidFont = errors.New("text: invalid font shorthand")
)
