package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInGamut(t *testing.T) {
	require.True(t, SRGB.InGamut(RGB{0, 0, 0}))
	require.True(t, SRGB.InGamut(RGB{1, 1, 1}))
	require.True(t, SRGB.InGamut(RGB{0.2, 0.5, 0.7}))
	require.False(t, SRGB.InGamut(RGB{1.1, 0.5, 0.5}))
	require.False(t, SRGB.InGamut(RGB{-0.1, 0.5, 0.5}))
}

func TestFitReturnsInGamut(t *testing.T) {
	cases := []LCh{
		{L: 50, C: 140, H: 30},
		{L: 95, C: 120, H: 130},
		{L: 10, C: 150, H: 310},
		{L: 70, C: 0, H: 0},
	}
	for _, sp := range []Space{SRGB, DisplayP3, Rec2020} {
		for _, c := range cases {
			rgb := sp.Fit(c)
			require.True(t, sp.InGamut(rgb), "%s %+v -> %+v", sp.Name, c, rgb)
		}
	}
}

func TestFitPreservesLightnessAndHue(t *testing.T) {
	in := LCh{L: 50, C: 140, H: 30} // far outside every gamut
	rgb := SRGB.Fit(in)
	require.True(t, SRGB.InGamut(rgb))

	out := SRGB.LCh(rgb)
	require.InDelta(t, in.L, out.L, 1e-4)
	require.InDelta(t, in.H, out.H, 1e-4)
	require.True(t, out.C < in.C, "fit must desaturate, got C %v", out.C)
}

func TestFitKeepsInGamutColor(t *testing.T) {
	in := LCh{L: 55, C: 30, H: 200}
	direct := SRGB.Convert(in)
	require.True(t, SRGB.InGamut(direct))

	fitted := SRGB.Fit(in)
	require.InDelta(t, direct.R, fitted.R, 1e-9)
	require.InDelta(t, direct.G, fitted.G, 1e-9)
	require.InDelta(t, direct.B, fitted.B, 1e-9)
}

func TestClampToGamutIdentityInGamut(t *testing.T) {
	c := RGB{0.2, 0.5, 0.7}
	require.Equal(t, c, SRGB.ClampToGamut(c))
}

func TestClampToGamutOutOfGamut(t *testing.T) {
	c := RGB{1.4, -0.2, 0.5}
	got := SRGB.ClampToGamut(c)
	require.True(t, SRGB.InGamut(got))
}

func TestGamutMapRoundTrip(t *testing.T) {
	for _, c := range []RGB{
		{0.2, 0.5, 0.7},
		{0.9, 0.1, 0.3},
		{0.5, 0.5, 0.5},
	} {
		got := GamutMap(c, SRGB, SRGB)
		require.InDelta(t, c.R, got.R, 1e-6)
		require.InDelta(t, c.G, got.G, 1e-6)
		require.InDelta(t, c.B, got.B, 1e-6)
	}
}

func TestGamutMapIntoWiderSpace(t *testing.T) {
	red := RGB{1, 0, 0}
	p3 := GamutMap(red, SRGB, DisplayP3)
	require.True(t, DisplayP3.InGamut(p3))

	// sRGB red sits inside Display-P3, so mapping must not desaturate it.
	back := GamutMap(p3, DisplayP3, SRGB)
	require.InDelta(t, red.R, back.R, 1e-4)
	require.InDelta(t, red.G, back.G, 1e-4)
	require.InDelta(t, red.B, back.B, 1e-4)
}

func TestGamutMapIntoNarrowerSpace(t *testing.T) {
	green := RGB{0, 1, 0} // P3 green is outside sRGB
	got := GamutMap(green, DisplayP3, SRGB)
	require.True(t, SRGB.InGamut(got))
}
