package canvas

import "errors"

// Sentinel errors for canvas package.
var (
	// ErrIndexSize is returned for a negative radius, a zero-sized image
	// data request or a colour stop offset outside [0, 1].
	ErrIndexSize = errors.New("canvas: index or size out of range")

	// ErrSyntax is returned when a colour, pattern repetition or data URL
	// cannot be parsed.
	ErrSyntax = errors.New("canvas: syntax error")

	// ErrSelectorNotFound is returned by New when a selector matches no
	// registered surface.
	ErrSelectorNotFound = errors.New("canvas: no surface matches selector")

	// ErrUnsupportedSource is returned by New for a nil or unusable source.
	ErrUnsupportedSource = errors.New("canvas: unsupported source")
)
