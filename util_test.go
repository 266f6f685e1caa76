package surface

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside r3.Vec, with an absolute
// tolerance. NaNs compare equal to each other.
func approx(tol float64) cmp.Options {
	return cmp.Options{cmpopts.EquateApprox(0, tol), cmpopts.EquateNaNs()}
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// grid samples fn at every node of u × v.
func grid(u, v []float64, fn func(u, v float64) (x, y, z float64)) (x, y, z *mat.Dense) {
	x = mat.NewDense(len(u), len(v), nil)
	y = mat.NewDense(len(u), len(v), nil)
	z = mat.NewDense(len(u), len(v), nil)
	for i, ui := range u {
		for j, vj := range v {
			xi, yi, zi := fn(ui, vj)
			x.Set(i, j, xi)
			y.Set(i, j, yi)
			z.Set(i, j, zi)
		}
	}
	return x, y, z
}

func mustSurface(t testing.TB, u, v []float64, opts Options, fn func(u, v float64) (x, y, z float64)) *Surface {
	t.Helper()
	x, y, z := grid(u, v, fn)
	s, err := NewWithOptions(u, v, x, y, z, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// makeDome samples part of a sphere of radius 10 around the origin, with
// x = 10u, y = 10v and u, v ∈ [−1/√2, 1/√2].
func makeDome(t testing.TB, opts Options) *Surface {
	t.Helper()
	u := linspace(-1/math.Sqrt2, 1/math.Sqrt2, 100)
	v := linspace(-1/math.Sqrt2, 1/math.Sqrt2, 100)
	return mustSurface(t, u, v, opts, func(u, v float64) (float64, float64, float64) {
		x, y := 10*u, 10*v
		// The corners of the grid lie on the equator, where round-off
		// could produce a tiny negative radicand.
		return x, y, math.Sqrt(max(100-x*x-y*y, 0))
	})
}
