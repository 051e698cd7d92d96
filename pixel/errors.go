package pixel

import "errors"

var (
	// ErrKernelNotSquare is returned when a convolution kernel's length is
	// not a perfect square.
	ErrKernelNotSquare = errors.New("pixel: kernel length is not a perfect square")

	// ErrEmptyRegion is returned when an averaging region holds no pixels
	// after clipping to the buffer.
	ErrEmptyRegion = errors.New("pixel: region contains no pixels")

	// ErrTransparentRegion is returned by the alpha-weighted averages when
	// every pixel of the region is fully transparent.
	ErrTransparentRegion = errors.New("pixel: region is fully transparent")

	// ErrInvalidDimensions is returned when width or height is negative or
	// the data length does not match them.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")
)
