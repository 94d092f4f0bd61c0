// Package colorspace models RGB color spaces defined by chromaticity
// primaries and provides the gamut machinery to turn perceptual LCh colors
// into valid RGB triples: matrix derivation from primaries, in-gamut tests,
// chroma-reducing gamut mapping, and cross-space conversion through XYZ.
package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// Kind tags the closed set of supported space definitions.
type Kind int

const (
	KindSRGB Kind = iota
	KindDisplayP3
	KindRec2020
	KindCustom
)

// Chromaticity is a CIE xy coordinate.
type Chromaticity struct {
	X, Y float64
}

// D65 is the white point shared by all built-in spaces.
var D65 = Chromaticity{0.3127, 0.3290}

// RGB is a color in a space's own cube, channels nominally in [0, 1].
type RGB struct {
	R, G, B float64
}

// LCh is a CIE LCh(ab) color: lightness in [0, 100], chroma ≥ 0, hue in
// degrees [0, 360).
type LCh struct {
	L, C, H float64
}

// Space is an immutable RGB color space: primary and white-point
// chromaticities plus the RGB↔XYZ matrices derived from them at
// construction.
type Space struct {
	Name             string
	Kind             Kind
	Red, Green, Blue Chromaticity
	White            Chromaticity

	toXYZ   Matrix
	fromXYZ Matrix
}

var (
	// for LCh/Lab to XYZ conversion; all spaces here share the D65 reference.
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// Built-in spaces. Their primaries are well-conditioned, so construction
// cannot fail.
var (
	SRGB = mustSpace(Space{
		Name: "srgb", Kind: KindSRGB,
		Red: Chromaticity{0.640, 0.330}, Green: Chromaticity{0.300, 0.600}, Blue: Chromaticity{0.150, 0.060},
		White: D65,
	})
	DisplayP3 = mustSpace(Space{
		Name: "display-p3", Kind: KindDisplayP3,
		Red: Chromaticity{0.680, 0.320}, Green: Chromaticity{0.265, 0.690}, Blue: Chromaticity{0.150, 0.060},
		White: D65,
	})
	Rec2020 = mustSpace(Space{
		Name: "rec2020", Kind: KindRec2020,
		Red: Chromaticity{0.708, 0.292}, Green: Chromaticity{0.170, 0.797}, Blue: Chromaticity{0.131, 0.046},
		White: D65,
	})
)

// NewCustom builds a user-defined space over the D65 white point. Returns
// ErrDegeneratePrimaries when the primaries are collinear or otherwise leave
// the white-point system singular; other spaces and the generator are
// unaffected by such a failure.
func NewCustom(name string, red, green, blue Chromaticity) (Space, error) {
	s := Space{
		Name: name, Kind: KindCustom,
		Red: red, Green: green, Blue: blue,
		White: D65,
	}
	return deriveMatrices(s)
}

func deriveMatrices(s Space) (Space, error) {
	m, err := primariesToXYZ(s.Red, s.Green, s.Blue, s.White)
	if err != nil {
		return Space{}, err
	}
	inv, err := m.Inverse()
	if err != nil {
		return Space{}, err
	}
	s.toXYZ = m
	s.fromXYZ = inv
	return s, nil
}

func mustSpace(s Space) Space {
	out, err := deriveMatrices(s)
	if err != nil {
		panic("colorspace: built-in space " + s.Name + ": " + err.Error())
	}
	return out
}

// XYZMatrix returns the derived RGB→XYZ matrix.
func (s Space) XYZMatrix() Matrix {
	return s.toXYZ
}

// encode applies the space's transfer function to one linear channel.
func (s Space) encode(v float64) float64 {
	if s.Kind == KindRec2020 {
		return rec2020Encode(v)
	}
	return srgbEncode(v)
}

// decode inverts the space's transfer function for one channel.
func (s Space) decode(v float64) float64 {
	if s.Kind == KindRec2020 {
		return rec2020Decode(v)
	}
	return srgbDecode(v)
}

func srgbEncode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

func srgbDecode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020Encode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v < rec2020Beta {
		return sign * 4.5 * v
	}
	return sign * (rec2020Alpha*math.Pow(v, 0.45) - (rec2020Alpha - 1))
}

func rec2020Decode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v < 4.5*rec2020Beta {
		return sign * v / 4.5
	}
	return sign * math.Pow((v+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
}

// Lab returns the LCh color's rectangular CIE Lab form.
func (c LCh) Lab() chromath.Lab {
	h := c.H * math.Pi / 180
	return chromath.Lab{c.L, c.C * math.Cos(h), c.C * math.Sin(h)}
}

// LabToLCh converts rectangular Lab back to cylindrical LCh.
func LabToLCh(lab chromath.Lab) LCh {
	h := math.Atan2(lab.B(), lab.A()) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{
		L: lab.L(),
		C: math.Hypot(lab.A(), lab.B()),
		H: h,
	}
}

// Convert maps an LCh color into the space's encoded RGB cube without any
// gamut handling; channels may fall outside [0, 1].
func (s Space) Convert(c LCh) RGB {
	xyz := lab2Xyz.Convert(c.Lab())
	lin := s.fromXYZ.Mul([3]float64{xyz.X(), xyz.Y(), xyz.Z()})
	return RGB{
		R: s.encode(lin[0]),
		G: s.encode(lin[1]),
		B: s.encode(lin[2]),
	}
}

// LCh maps an encoded RGB color to its LCh form under this space.
func (s Space) LCh(c RGB) LCh {
	lin := [3]float64{s.decode(c.R), s.decode(c.G), s.decode(c.B)}
	v := s.toXYZ.Mul(lin)
	lab := lab2Xyz.Invert(chromath.XYZ{v[0], v[1], v[2]})
	return LabToLCh(lab)
}

// Lab maps an encoded RGB color to CIE Lab under this space.
func (s Space) Lab(c RGB) chromath.Lab {
	lin := [3]float64{s.decode(c.R), s.decode(c.G), s.decode(c.B)}
	v := s.toXYZ.Mul(lin)
	return lab2Xyz.Invert(chromath.XYZ{v[0], v[1], v[2]})
}
