// Package palette draws gamut-valid, perceptually distinct colors from
// splittable random states. Every color is sampled uniformly in cylindrical
// Lab (lightness, chroma, hue) and then chroma-fitted into the target space,
// so sampling is visually even rather than RGB-uniform. Distinctness between
// palette entries is measured with CIEDE2000.
package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/pkg/errors"

	"github.com/mmuldo/prism/colorspace"
	"github.com/mmuldo/prism/splitrand"
)

// ErrInvalidCount is returned when a zero or negative number of colors is
// requested. Checked at the boundary, never inside sampling loops.
var ErrInvalidCount = errors.New("palette: count must be positive")

const (
	// Sampling ranges in cylindrical Lab. Chroma deliberately overshoots
	// every target gamut; fitting desaturates the excess.
	maxLightness = 100
	maxChroma    = 150
	maxHue       = 360

	// DefaultMinDistance is the CIEDE2000 threshold below which two palette
	// entries read as similar. 20 keeps neighbors clearly apart on ordinary
	// displays while leaving room for palettes of a dozen-plus colors.
	DefaultMinDistance = 20.0

	// attemptBudget bounds the rejection loop so palette generation always
	// terminates; an exhausted budget yields a short palette, not an error.
	attemptBudget = 10000
)

var klch = &deltae.KLChDefault

// SampleColor draws one color from the state's random stream: lightness in
// [0,100], chroma in [0,150], hue in [0,360), fitted into the space's gamut.
func SampleColor(st splitrand.State, space colorspace.Space) colorspace.RGB {
	stream := st.Stream()
	c := colorspace.LCh{
		L: stream.Float64In(0, maxLightness),
		C: stream.Float64In(0, maxChroma),
		H: stream.Float64In(0, maxHue),
	}
	return space.Fit(c)
}

// SamplePalette draws up to n pairwise-distinct colors starting from st. Each
// attempt splits off a fresh child state and samples a candidate, which is
// accepted iff its CIEDE2000 distance to every accepted color is at least
// minDistance. The first candidate is always accepted. The loop stops after n
// acceptances or attemptBudget attempts, whichever comes first; a short
// palette signals an exhausted budget and is valid data, not an error.
func SamplePalette(st splitrand.State, n int, space colorspace.Space, minDistance float64) ([]colorspace.RGB, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "requested %d colors", n)
	}

	colors := make([]colorspace.RGB, 0, n)
	labs := make([]chromath.Lab, 0, n)

	frontier := st
	for attempt := 0; attempt < attemptBudget && len(colors) < n; attempt++ {
		var child splitrand.State
		frontier, child = frontier.Split()

		rgb := SampleColor(child, space)
		lab := space.Lab(rgb)
		if distinct(lab, labs, minDistance) {
			colors = append(colors, rgb)
			labs = append(labs, lab)
		}
	}
	return colors, nil
}

func distinct(lab chromath.Lab, accepted []chromath.Lab, minDistance float64) bool {
	for _, a := range accepted {
		if deltae.CIE2000(lab, a, klch) < minDistance {
			return false
		}
	}
	return true
}

// Distance reports the CIEDE2000 difference between two colors of one space.
func Distance(a, b colorspace.RGB, space colorspace.Space) float64 {
	return deltae.CIE2000(space.Lab(a), space.Lab(b), klch)
}
