package colorspace

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDegeneratePrimaries is returned when a space's primaries and white point
// are affinely dependent, so no RGB→XYZ matrix exists.
var ErrDegeneratePrimaries = errors.New("colorspace: degenerate primaries")

// Matrix is a row-major 3×3 matrix.
type Matrix [3][3]float64

// Mul applies the matrix to a column vector.
func (m Matrix) Mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Matrix) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the matrix inverse, or ErrDegeneratePrimaries if m is
// singular.
func (m Matrix) Inverse() (Matrix, error) {
	d := m.det()
	if math.Abs(d) < 1e-12 {
		return Matrix{}, ErrDegeneratePrimaries
	}
	inv := Matrix{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] /= d
		}
	}
	return inv, nil
}

// xyzOf lifts a chromaticity to XYZ with Y = 1.
func xyzOf(c Chromaticity) ([3]float64, error) {
	if math.Abs(c.Y) < 1e-12 {
		return [3]float64{}, errors.Wrap(ErrDegeneratePrimaries, "chromaticity y is zero")
	}
	return [3]float64{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}, nil
}

// primariesToXYZ derives the RGB→XYZ matrix from primary and white-point
// chromaticities: lift each primary to XYZ up to scale, solve for the scales
// that make R=G=B=1 reproduce the white point exactly, then scale the
// columns.
func primariesToXYZ(r, g, b, w Chromaticity) (Matrix, error) {
	rx, err := xyzOf(r)
	if err != nil {
		return Matrix{}, err
	}
	gx, err := xyzOf(g)
	if err != nil {
		return Matrix{}, err
	}
	bx, err := xyzOf(b)
	if err != nil {
		return Matrix{}, err
	}
	wx, err := xyzOf(w)
	if err != nil {
		return Matrix{}, err
	}

	p := Matrix{
		{rx[0], gx[0], bx[0]},
		{rx[1], gx[1], bx[1]},
		{rx[2], gx[2], bx[2]},
	}
	pinv, err := p.Inverse()
	if err != nil {
		return Matrix{}, err
	}
	s := pinv.Mul(wx)

	var m Matrix
	for i := 0; i < 3; i++ {
		m[i][0] = p[i][0] * s[0]
		m[i][1] = p[i][1] * s[1]
		m[i][2] = p[i][2] * s[2]
	}
	return m, nil
}
