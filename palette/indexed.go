package palette

import (
	"github.com/mmuldo/prism/colorspace"
	"github.com/mmuldo/prism/splitrand"
)

// The functions in this file are pure: they rebuild their own root from the
// seed and replay the split walk, so any number of goroutines may call them
// concurrently and the results depend only on the arguments. Index k is
// defined so that the (k+1)-th sequential draw after Reseed(seed) uses the
// same state as index k here.

// ColorAt returns the color at position k of seed's sequence.
func ColorAt(seed, k uint64, space colorspace.Space) colorspace.RGB {
	return SampleColor(splitrand.StateAt(seed, k), space)
}

// ColorsAt returns the colors at the given positions, in the order listed.
// The result for each position is independent of the others.
func ColorsAt(seed uint64, ks []uint64, space colorspace.Space) []colorspace.RGB {
	colors := make([]colorspace.RGB, len(ks))
	for i, k := range ks {
		colors[i] = ColorAt(seed, k, space)
	}
	return colors
}

// PaletteAt generates the distinct palette rooted at position k of seed's
// sequence. Same failure policy as SamplePalette.
func PaletteAt(seed, k uint64, n int, space colorspace.Space, minDistance float64) ([]colorspace.RGB, error) {
	return SamplePalette(splitrand.StateAt(seed, k), n, space, minDistance)
}
