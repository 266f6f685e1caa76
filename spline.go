package surface

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// minKnots is the smallest number of samples per axis that determines a
// not-a-knot cubic spline.
const minKnots = 4

// knots is a parameter axis of a cubic spline.
//
// Splines are represented by their values and second derivatives (moments)
// at the knots. The moments follow from the data through a linear system
// that only depends on the knots, so the system is factorized once and
// shared by every spline over the same axis.
type knots struct {
	x  []float64
	h  []float64
	lu mat.LU
}

func newKnots(x []float64) (*knots, error) {
	if len(x) < minKnots {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewPoints, len(x), minKnots)
	}
	for i, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return nil, fmt.Errorf("%w: value %d is %g", ErrNonFinite, i, xi)
		}
		if i > 0 && xi <= x[i-1] {
			return nil, fmt.Errorf("%w: value %d (%g) follows %g", ErrNotIncreasing, i, xi, x[i-1])
		}
	}

	n := len(x)
	k := &knots{
		x: slices.Clone(x),
		h: make([]float64, n-1),
	}
	for i := range n - 1 {
		k.h[i] = x[i+1] - x[i]
	}
	h := k.h

	a := mat.NewDense(n, n, nil)
	// The third derivative is continuous across x[1] and x[n-2], which
	// makes the first two and the last two pieces the same cubic.
	a.Set(0, 0, h[1])
	a.Set(0, 1, -(h[0] + h[1]))
	a.Set(0, 2, h[0])
	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
	}
	a.Set(n-1, n-3, h[n-2])
	a.Set(n-1, n-2, -(h[n-3] + h[n-2]))
	a.Set(n-1, n-1, h[n-3])
	k.lu.Factorize(a)
	return k, nil
}

// domain returns the first and last knot.
func (k *knots) domain() (float64, float64) {
	return k.x[0], k.x[len(k.x)-1]
}

// moments returns the second derivatives at the knots of the splines
// interpolating each column of y.
func (k *knots) moments(y mat.Matrix) (*mat.Dense, error) {
	n, m := y.Dims()
	if n != len(k.x) {
		panic(fmt.Sprintf("got %d rows for %d knots", n, len(k.x)))
	}
	rhs := mat.NewDense(n, m, nil)
	for i := 1; i < n-1; i++ {
		for j := range m {
			s1 := (y.At(i+1, j) - y.At(i, j)) / k.h[i]
			s0 := (y.At(i, j) - y.At(i-1, j)) / k.h[i-1]
			rhs.Set(i, j, 6*(s1-s0))
		}
	}
	dst := mat.NewDense(n, m, nil)
	if err := k.lu.SolveTo(dst, false, rhs); err != nil {
		return nil, fmt.Errorf("solving for spline moments: %w", err)
	}
	return dst, nil
}

// basis holds the position of a parameter on a knot axis and the weights
// that combine (y[i], y[i+1], m[i], m[i+1]) into the value and the first
// and second derivative of the cubic piece i at that parameter.
type basis struct {
	i int
	w [3][4]float64
}

// basis computes the weights for parameter t.
func (k *knots) basis(t float64, ext Extrapolation) basis {
	n := len(k.x)
	if ext == Clamp {
		t = min(max(t, k.x[0]), k.x[n-1])
	}
	i := sort.SearchFloat64s(k.x, t) - 1
	i = min(max(i, 0), n-2)

	h := k.h[i]
	a := (k.x[i+1] - t) / h
	b := (t - k.x[i]) / h
	return basis{
		i: i,
		w: [3][4]float64{
			{a, b, (a*a*a - a) * h * h / 6, (b*b*b - b) * h * h / 6},
			{-1 / h, 1 / h, -(3*a*a - 1) * h / 6, (3*b*b - 1) * h / 6},
			{0, 0, a, b},
		},
	}
}

// spline is a set of cubic splines sharing one knot axis, one per column
// of the sampled values.
type spline struct {
	k *knots
	y *mat.Dense
	m *mat.Dense
}

func fitSpline(k *knots, y mat.Matrix) (*spline, error) {
	m, err := k.moments(y)
	if err != nil {
		return nil, err
	}
	return &spline{k: k, y: mat.DenseCopyOf(y), m: m}, nil
}

// eval evaluates the derivative of the given order of column j.
func (s *spline) eval(b *basis, order, j int) float64 {
	w := &b.w[order]
	return w[0]*s.y.At(b.i, j) + w[1]*s.y.At(b.i+1, j) +
		w[2]*s.m.At(b.i, j) + w[3]*s.m.At(b.i+1, j)
}
