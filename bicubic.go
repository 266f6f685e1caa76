package surface

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// bicubic is the tensor product of not-a-knot cubic splines interpolating a
// single coordinate over a (u, v) grid.
//
// Inside a grid cell, the interpolant is a combination of 16 node values:
// the samples f, their moments along u (fuu), along v (fvv), and the moments
// along v of fuu (fuuvv). Because spline interpolation is linear in the
// data, fuuvv also equals the moments along u of fvv.
type bicubic struct {
	f     *mat.Dense
	fuu   *mat.Dense
	fvv   *mat.Dense
	fuuvv *mat.Dense
}

func fitBicubic(u, v *knots, samples mat.Matrix) (*bicubic, error) {
	f := mat.DenseCopyOf(samples)
	fuu, err := u.moments(f)
	if err != nil {
		return nil, fmt.Errorf("along u: %w", err)
	}
	fvvT, err := v.moments(f.T())
	if err != nil {
		return nil, fmt.Errorf("along v: %w", err)
	}
	fuuvvT, err := v.moments(fuu.T())
	if err != nil {
		return nil, fmt.Errorf("along v: %w", err)
	}
	return &bicubic{
		f:     f,
		fuu:   fuu,
		fvv:   mat.DenseCopyOf(fvvT.T()),
		fuuvv: mat.DenseCopyOf(fuuvvT.T()),
	}, nil
}

// node returns the coefficient that pairs weight a of bu with weight b of bv.
func (bc *bicubic) node(i, j, a, b int) float64 {
	tab := bc.f
	switch {
	case a >= 2 && b >= 2:
		tab = bc.fuuvv
	case a >= 2:
		tab = bc.fuu
	case b >= 2:
		tab = bc.fvv
	}
	return tab.At(i+a%2, j+b%2)
}

// eval evaluates the partial derivative of order p in u and q in v, with
// p, q ≤ 2.
func (bc *bicubic) eval(bu, bv *basis, p, q int) float64 {
	wu, wv := &bu.w[p], &bv.w[q]
	var sum float64
	for a := range 4 {
		var row float64
		for b := range 4 {
			row += wv[b] * bc.node(bu.i, bv.i, a, b)
		}
		sum += wu[a] * row
	}
	return sum
}
