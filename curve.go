package surface

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Curve is a smooth plane curve interpolated from points sampled at
// increasing values of a parameter t. It is the one-parameter counterpart
// of [Surface].
//
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	// Column 0 interpolates x, column 1 interpolates y.
	spl *spline
	ext Extrapolation
}

// NewCurve fits a curve through the points (x[i], y[i]) at parameters
// t[i]. t must be strictly increasing and have at least four values.
func NewCurve(t, x, y []float64) (*Curve, error) {
	return NewCurveWithOptions(t, x, y, DefaultOptions)
}

// NewCurveWithOptions is like [NewCurve] but allows configuring
// extrapolation. Curves don't cache, so DisableCache has no effect.
func NewCurveWithOptions(t, x, y []float64, opts Options) (*Curve, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	k, err := newKnots(t)
	if err != nil {
		return nil, fmt.Errorf("t: %w", err)
	}
	if len(x) != len(t) || len(y) != len(t) {
		return nil, fmt.Errorf("%w: got %d x and %d y values for %d parameters", ErrShape, len(x), len(y), len(t))
	}
	xy := mat.NewDense(len(t), 2, nil)
	xy.SetCol(0, x)
	xy.SetCol(1, y)
	if err := checkSamples(xy, len(t), 2); err != nil {
		return nil, err
	}
	spl, err := fitSpline(k, xy)
	if err != nil {
		return nil, err
	}
	return &Curve{spl: spl, ext: opts.Extrapolation}, nil
}

// Domain returns the range of t covered by the samples.
func (c *Curve) Domain() (min, max float64) {
	return c.spl.k.domain()
}

func (c *Curve) eval(ts []float64, order int) []Vec2 {
	out := make([]Vec2, len(ts))
	forRange(len(ts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			b := c.spl.k.basis(ts[i], c.ext)
			out[i] = Vec2{
				X: c.spl.eval(&b, order, 0),
				Y: c.spl.eval(&b, order, 1),
			}
		}
	})
	return out
}

// Position returns the points of the curve at the parameters ts.
func (c *Curve) Position(ts []float64) []Point {
	vs := c.eval(ts, 0)
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Point(v)
	}
	return out
}

// PositionYX is like [Curve.Position] but returns each point as (y, x),
// the column order of the pmetsurf Python package.
func (c *Curve) PositionYX(ts []float64) [][2]float64 {
	vs := c.eval(ts, 0)
	out := make([][2]float64, len(vs))
	for i, v := range vs {
		out[i] = [2]float64{v.Y, v.X}
	}
	return out
}

// Deriv returns the first derivatives with respect to t.
func (c *Curve) Deriv(ts []float64) []Vec2 {
	return c.eval(ts, 1)
}

// Deriv2 returns the second derivatives with respect to t.
func (c *Curve) Deriv2(ts []float64) []Vec2 {
	return c.eval(ts, 2)
}

// Normal returns unit normals: the unit tangents turned counter-clockwise.
// On a clockwise circle they point outwards. Where the derivative vanishes
// the normal is NaN.
func (c *Curve) Normal(ts []float64) []Vec2 {
	out := c.eval(ts, 1)
	for i, d := range out {
		out[i] = d.TurnCCW().Normalize()
	}
	return out
}

// Curvature returns the signed curvature, positive where the curve turns
// clockwise. A clockwise circle of radius r has curvature 1/r, a
// counter-clockwise one -1/r. Where the derivative vanishes the curvature
// is NaN.
func (c *Curve) Curvature(ts []float64) []float64 {
	d1 := c.eval(ts, 1)
	d2 := c.eval(ts, 2)
	out := make([]float64, len(ts))
	for i := range out {
		speed2 := d1[i].Hypot2()
		if speed2 == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = -d1[i].Cross(d2[i]) / (speed2 * math.Sqrt(speed2))
	}
	return out
}
