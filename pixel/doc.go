// Package pixel provides RGBA pixel buffers and the measurement and filter
// operations that run over them.
//
// A [Buffer] is a non-premultiplied, row-major RGBA grid, 4 bytes per pixel,
// laid out exactly like an HTML canvas ImageData: the channel c of the pixel
// at (x, y) lives at Pix[4*(y*Width+x)+c].
//
// Measurements:
//   - [IsEmpty], [Buffer.RowTransparent], [Buffer.ColumnTransparent]
//   - [TrimmingRect]: bounding box of all non-transparent pixels
//   - [Average], [WeightedAverage], [AverageLightness], [WeightedAverageLightness]
//
// Filters, all returning a new buffer:
//   - [Convolve]: square-kernel convolution with opaque output
//   - [Alias]: alpha thresholding to fully opaque or fully transparent
//   - [Crop]
package pixel
