package palette

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/prism/colorspace"
	"github.com/mmuldo/prism/splitrand"
)

var spaces = []colorspace.Space{colorspace.SRGB, colorspace.DisplayP3, colorspace.Rec2020}

func TestSampleColorDeterministic(t *testing.T) {
	st := splitrand.StateAt(42, 3)
	require.Equal(t, SampleColor(st, colorspace.SRGB), SampleColor(st, colorspace.SRGB))
}

func TestSampleColorInGamut(t *testing.T) {
	for _, sp := range spaces {
		for _, seed := range []uint64{0, 1, 42, 1337} {
			for k := uint64(0); k < 100; k++ {
				c := SampleColor(splitrand.StateAt(seed, k), sp)
				require.True(t, sp.InGamut(c), "%s seed %d index %d: %+v", sp.Name, seed, k, c)
			}
		}
	}
}

func TestSamplePaletteDistinct(t *testing.T) {
	const minDist = 20.0

	colors, err := SamplePalette(splitrand.Root(42), 6, colorspace.SRGB, minDist)
	require.NoError(t, err)
	require.Len(t, colors, 6)

	for i := 0; i < len(colors); i++ {
		require.True(t, colorspace.SRGB.InGamut(colors[i]))
		for j := i + 1; j < len(colors); j++ {
			d := Distance(colors[i], colors[j], colorspace.SRGB)
			require.True(t, d >= minDist-1e-9, "colors %d and %d only %v apart", i, j, d)
		}
	}
}

func TestSamplePaletteDeterministic(t *testing.T) {
	st := splitrand.Root(42)
	a, err := SamplePalette(st, 8, colorspace.SRGB, DefaultMinDistance)
	require.NoError(t, err)
	b, err := SamplePalette(st, 8, colorspace.SRGB, DefaultMinDistance)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSamplePaletteFirstAlwaysAccepted(t *testing.T) {
	// an absurd distance still yields at least the unconditional first color
	colors, err := SamplePalette(splitrand.Root(42), 5, colorspace.SRGB, 1e9)
	require.NoError(t, err)
	require.Len(t, colors, 1)
}

func TestSamplePaletteShortOnExhaustedBudget(t *testing.T) {
	// nothing like 50 colors fit at a pairwise distance of 90; the budget
	// runs out and the partial palette comes back without an error
	colors, err := SamplePalette(splitrand.Root(42), 50, colorspace.SRGB, 90)
	require.NoError(t, err)
	require.True(t, len(colors) >= 1)
	require.True(t, len(colors) < 50, "got %d colors", len(colors))

	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			require.True(t, Distance(colors[i], colors[j], colorspace.SRGB) >= 90-1e-9)
		}
	}
}

func TestSamplePaletteInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := SamplePalette(splitrand.Root(42), n, colorspace.SRGB, DefaultMinDistance)
		require.Error(t, err)
		require.Equal(t, ErrInvalidCount, errors.Cause(err))
	}
}
