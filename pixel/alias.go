package pixel

// DefaultAliasThreshold is the largest alpha Alias maps to transparent when
// callers have no preference.
const DefaultAliasThreshold = 127

// Alias returns a copy of b whose alpha channel is 0 wherever the source
// alpha is <= threshold and 255 elsewhere. Colour channels are copied as is.
func Alias(b *Buffer, threshold int) *Buffer {
	out := b.Clone()
	for i := 3; i < len(out.Pix); i += 4 {
		if int(out.Pix[i]) <= threshold {
			out.Pix[i] = 0
		} else {
			out.Pix[i] = 255
		}
	}
	return out
}
