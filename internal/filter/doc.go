// Package filter provides the alpha-mask filters used to render canvas
// shadows: a cached separable Gaussian blur and mask offsetting.
package filter
