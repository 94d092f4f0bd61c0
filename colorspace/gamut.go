package colorspace

// gamutEps absorbs float noise at the cube faces so that a mapped color
// always tests in-gamut.
const gamutEps = 1e-9

// fitSteps bisection iterations; 20 is below 8-bit quantization error.
const fitSteps = 20

// InGamut reports whether all three channels lie in [0, 1]. The test is
// defined on the space's own cube; the XYZ matrix plays no part.
func (s Space) InGamut(c RGB) bool {
	return c.R >= -gamutEps && c.R <= 1+gamutEps &&
		c.G >= -gamutEps && c.G <= 1+gamutEps &&
		c.B >= -gamutEps && c.B <= 1+gamutEps
}

// Fit maps an LCh color into the space's gamut by searching the maximal
// chroma C' ≤ C at fixed lightness and hue whose RGB lands in the cube.
// Lightness and hue are preserved exactly; the color is only desaturated.
func (s Space) Fit(c LCh) RGB {
	if rgb := s.Convert(c); s.InGamut(rgb) {
		return clip(rgb)
	}

	lo, hi := 0.0, c.C
	best, haveBest := RGB{}, false
	for i := 0; i < fitSteps; i++ {
		mid := (lo + hi) / 2
		rgb := s.Convert(LCh{L: c.L, C: mid, H: c.H})
		if s.InGamut(rgb) {
			best, haveBest = rgb, true
			lo = mid
		} else {
			hi = mid
		}
	}
	if haveBest {
		return clip(best)
	}
	// Even the achromatic axis missed the cube (lightness out of range, or a
	// pathological custom space). Channel clipping is the fallback.
	return clip(s.Convert(LCh{L: c.L, C: 0, H: c.H}))
}

// ClampToGamut returns c unchanged when it is already in gamut, otherwise its
// chroma-reduced in-gamut replacement.
func (s Space) ClampToGamut(c RGB) RGB {
	if s.InGamut(c) {
		return clip(c)
	}
	return s.Fit(s.LCh(c))
}

// GamutMap converts a color between spaces through their shared XYZ
// connection and fits the result into the destination gamut.
func GamutMap(c RGB, from, to Space) RGB {
	return to.Fit(LabToLCh(from.Lab(c)))
}

func clip(c RGB) RGB {
	return RGB{R: clip01(c.R), G: clip01(c.G), B: clip01(c.B)}
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
