package surface

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is a smooth surface in 3D space, interpolated from coordinates
// sampled on a rectangular grid of parameters (u, v).
//
// Each coordinate is interpolated by its own bicubic spline. The splines
// pass exactly through the samples and are twice continuously
// differentiable, so derivatives, normals and curvatures are available at
// any parameter pair, not just at grid nodes.
//
// A Surface is immutable and safe for concurrent use.
type Surface struct {
	u, v *knots
	// Interpolants of the x, y and z coordinates, in that order.
	axes [3]*bicubic
	opts Options

	cache memo[*Frame]
}

// New fits a surface to the grid u × v. Rows of x, y and z correspond to
// values of u, columns to values of v. u and v must be strictly increasing
// and have at least four values each.
func New(u, v []float64, x, y, z mat.Matrix) (*Surface, error) {
	return NewWithOptions(u, v, x, y, z, DefaultOptions)
}

// NewWithOptions is like [New] but allows configuring extrapolation and
// caching.
func NewWithOptions(u, v []float64, x, y, z mat.Matrix, opts Options) (*Surface, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	ku, err := newKnots(u)
	if err != nil {
		return nil, fmt.Errorf("u: %w", err)
	}
	kv, err := newKnots(v)
	if err != nil {
		return nil, fmt.Errorf("v: %w", err)
	}

	s := &Surface{u: ku, v: kv, opts: opts}
	for i, samples := range [3]mat.Matrix{x, y, z} {
		name := "xyz"[i : i+1]
		if err := checkSamples(samples, len(u), len(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		s.axes[i], err = fitBicubic(ku, kv, samples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return s, nil
}

func checkSamples(m mat.Matrix, rows, cols int) error {
	if m == nil {
		return fmt.Errorf("%w: missing", ErrShape)
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return fmt.Errorf("%w: got %d×%d, want %d×%d", ErrShape, r, c, rows, cols)
	}
	for i := range r {
		for j := range c {
			if f := m.At(i, j); math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: element (%d, %d) is %g", ErrNonFinite, i, j, f)
			}
		}
	}
	return nil
}

// FromRows returns a matrix with the given rows. It returns [ErrShape] if
// the rows don't all have the same, non-zero length.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShape)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), c)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

// DomainU returns the range of u covered by the grid.
func (s *Surface) DomainU() (min, max float64) {
	return s.u.domain()
}

// DomainV returns the range of v covered by the grid.
func (s *Surface) DomainV() (min, max float64) {
	return s.v.domain()
}

// Extrapolation returns the surface's extrapolation mode.
func (s *Surface) Extrapolation() Extrapolation {
	return s.opts.Extrapolation
}

// jet evaluates the three interpolants and their derivatives at (u, v).
func (s *Surface) jet(u, v float64) jet {
	bu := s.u.basis(u, s.opts.Extrapolation)
	bv := s.v.basis(v, s.opts.Extrapolation)
	vec := func(p, q int) r3.Vec {
		return r3.Vec{
			X: s.axes[0].eval(&bu, &bv, p, q),
			Y: s.axes[1].eval(&bu, &bv, p, q),
			Z: s.axes[2].eval(&bu, &bv, p, q),
		}
	}
	return jet{
		pos: vec(0, 0),
		du:  vec(1, 0),
		dv:  vec(0, 1),
		duu: vec(2, 0),
		dvv: vec(0, 2),
		duv: vec(1, 1),
	}
}

// frame computes, or fetches from the cache, the frame of a batch. The
// result is shared and must not be modified.
func (s *Surface) frame(u, v []float64) (*Frame, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("%w: %d u values, %d v values", ErrLength, len(u), len(v))
	}
	if !s.opts.DisableCache {
		if f, ok := s.cache.get(u, v); ok {
			return f, nil
		}
	}
	f := newFrame(u, v)
	forRange(len(u), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f.set(i, s.jet(f.U[i], f.V[i]))
		}
	})
	if !s.opts.DisableCache {
		s.cache.put(f, f.U, f.V)
	}
	return f, nil
}

// Frame evaluates every quantity at the points (u[i], v[i]).
//
// u and v are paired elementwise, they don't describe a grid. It returns
// [ErrLength] if they differ in length.
func (s *Surface) Frame(u, v []float64) (*Frame, error) {
	f, err := s.frame(u, v)
	if err != nil {
		return nil, err
	}
	return f.clone(), nil
}

func field[T any](s *Surface, u, v []float64, sel func(*Frame) []T) ([]T, error) {
	f, err := s.frame(u, v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(sel(f)), nil
}

// Position returns the points of the surface at (u[i], v[i]).
func (s *Surface) Position(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Position })
}

// PositionZYX is like [Surface.Position] but returns each point as
// (z, y, x). This is the column order of the pmetsurf Python package.
func (s *Surface) PositionZYX(u, v []float64) ([][3]float64, error) {
	pos, err := s.Position(u, v)
	if err != nil {
		return nil, err
	}
	out := make([][3]float64, len(pos))
	for i, p := range pos {
		out[i] = [3]float64{p.Z, p.Y, p.X}
	}
	return out, nil
}

// Du returns the first partial derivative with respect to u.
func (s *Surface) Du(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Du })
}

// Dv returns the first partial derivative with respect to v.
func (s *Surface) Dv(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Dv })
}

// Duu returns the second partial derivative with respect to u.
func (s *Surface) Duu(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Duu })
}

// Dvv returns the second partial derivative with respect to v.
func (s *Surface) Dvv(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Dvv })
}

// Duv returns the mixed second partial derivative.
func (s *Surface) Duv(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Duv })
}

// Normal returns unit normals, oriented along dv × du. At points where the
// parameterization is singular, the normal is (NaN, NaN, NaN).
func (s *Surface) Normal(u, v []float64) ([]r3.Vec, error) {
	return field(s, u, v, func(f *Frame) []r3.Vec { return f.Normal })
}

// E returns du·du, the first coefficient of the first fundamental form.
func (s *Surface) E(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.E })
}

// F returns du·dv.
func (s *Surface) F(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.F })
}

// G returns dv·dv.
func (s *Surface) G(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.G })
}

// L returns duu·n, the first coefficient of the second fundamental form.
func (s *Surface) L(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.L })
}

// M returns duv·n.
func (s *Surface) M(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.M })
}

// N returns dvv·n.
func (s *Surface) N(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.N })
}

// K returns the Gaussian curvature, (LN − M²) / (EG − F²).
//
// K is NaN where the metric is singular; see [Surface.Degeneracies].
func (s *Surface) K(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.K })
}

// H returns the mean curvature, (EN − 2FM + GL) / 2(EG − F²).
func (s *Surface) H(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.H })
}

// KMin returns the smaller principal curvature, H − √(H² − K).
func (s *Surface) KMin(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.KMin })
}

// KMax returns the larger principal curvature, H + √(H² − K).
func (s *Surface) KMax(u, v []float64) ([]float64, error) {
	return field(s, u, v, func(f *Frame) []float64 { return f.KMax })
}

// Degeneracies reports, for every point, which quantities are undefined.
func (s *Surface) Degeneracies(u, v []float64) ([]Degeneracy, error) {
	return field(s, u, v, func(f *Frame) []Degeneracy { return f.Degenerate })
}
