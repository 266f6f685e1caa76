package surface

import (
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Degeneracy describes why some of a query point's quantities are NaN.
type Degeneracy uint8

const (
	// SingularNormal is set when du × dv is the zero vector, as happens at
	// the poles of a parameterization. The normal and L, M, N are NaN.
	SingularNormal Degeneracy = 1 << iota
	// SingularMetric is set when EG − F² is zero. K, H, KMin and KMax are
	// NaN. A singular normal implies a singular metric.
	SingularMetric
)

func (d Degeneracy) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	if d&SingularNormal != 0 {
		parts = append(parts, "singular normal")
	}
	if d&SingularMetric != 0 {
		parts = append(parts, "singular metric")
	}
	return strings.Join(parts, ", ")
}

var nanVec = r3.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}

// jet is the position of a surface point and its partial derivatives up to
// second order.
type jet struct {
	pos r3.Vec
	du  r3.Vec
	dv  r3.Vec
	duu r3.Vec
	dvv r3.Vec
	duv r3.Vec
}

// Frame holds every quantity of a batch of query points. Element i of each
// slice belongs to the point (U[i], V[i]).
//
// Vectors are in (x, y, z) order. Quantities that are undefined at a point
// are NaN, and the reason is recorded in Degenerate.
type Frame struct {
	U []float64
	V []float64

	Position []r3.Vec
	Du       []r3.Vec
	Dv       []r3.Vec
	Duu      []r3.Vec
	Dvv      []r3.Vec
	Duv      []r3.Vec

	// Normal is the unit normal, oriented along dv × du.
	Normal []r3.Vec

	// E, F, G are the coefficients of the first fundamental form.
	E []float64
	F []float64
	G []float64
	// L, M, N are the coefficients of the second fundamental form.
	L []float64
	M []float64
	N []float64

	K    []float64
	H    []float64
	KMin []float64
	KMax []float64

	Degenerate []Degeneracy
}

func newFrame(u, v []float64) *Frame {
	n := len(u)
	vecs := func() []r3.Vec { return make([]r3.Vec, n) }
	scalars := func() []float64 { return make([]float64, n) }
	return &Frame{
		U:          slices.Clone(u),
		V:          slices.Clone(v),
		Position:   vecs(),
		Du:         vecs(),
		Dv:         vecs(),
		Duu:        vecs(),
		Dvv:        vecs(),
		Duv:        vecs(),
		Normal:     vecs(),
		E:          scalars(),
		F:          scalars(),
		G:          scalars(),
		L:          scalars(),
		M:          scalars(),
		N:          scalars(),
		K:          scalars(),
		H:          scalars(),
		KMin:       scalars(),
		KMax:       scalars(),
		Degenerate: make([]Degeneracy, n),
	}
}

// Len returns the number of query points.
func (f *Frame) Len() int {
	return len(f.U)
}

func (f *Frame) clone() *Frame {
	return &Frame{
		U:          slices.Clone(f.U),
		V:          slices.Clone(f.V),
		Position:   slices.Clone(f.Position),
		Du:         slices.Clone(f.Du),
		Dv:         slices.Clone(f.Dv),
		Duu:        slices.Clone(f.Duu),
		Dvv:        slices.Clone(f.Dvv),
		Duv:        slices.Clone(f.Duv),
		Normal:     slices.Clone(f.Normal),
		E:          slices.Clone(f.E),
		F:          slices.Clone(f.F),
		G:          slices.Clone(f.G),
		L:          slices.Clone(f.L),
		M:          slices.Clone(f.M),
		N:          slices.Clone(f.N),
		K:          slices.Clone(f.K),
		H:          slices.Clone(f.H),
		KMin:       slices.Clone(f.KMin),
		KMax:       slices.Clone(f.KMax),
		Degenerate: slices.Clone(f.Degenerate),
	}
}

// set derives the fundamental forms and curvatures of point i from its jet.
func (f *Frame) set(i int, j jet) {
	f.Position[i] = j.pos
	f.Du[i] = j.du
	f.Dv[i] = j.dv
	f.Duu[i] = j.duu
	f.Dvv[i] = j.dvv
	f.Duv[i] = j.duv

	e := r3.Dot(j.du, j.du)
	ff := r3.Dot(j.du, j.dv)
	g := r3.Dot(j.dv, j.dv)
	f.E[i], f.F[i], f.G[i] = e, ff, g

	var deg Degeneracy
	n := nanVec
	if c := r3.Cross(j.dv, j.du); c != (r3.Vec{}) {
		n = r3.Scale(1/r3.Norm(c), c)
	} else {
		deg |= SingularNormal
	}
	f.Normal[i] = n

	l := r3.Dot(j.duu, n)
	m := r3.Dot(j.duv, n)
	nn := r3.Dot(j.dvv, n)
	f.L[i], f.M[i], f.N[i] = l, m, nn

	k, h := math.NaN(), math.NaN()
	det := e*g - ff*ff
	if det == 0 || deg&SingularNormal != 0 {
		deg |= SingularMetric
	} else {
		k = (l*nn - m*m) / det
		h = (e*nn - 2*ff*m + g*l) / (2 * det)
	}
	// H² − K ≥ 0 on real surfaces; round-off can push it below zero at
	// umbilics.
	disc := math.Sqrt(max(h*h-k, 0))
	f.K[i] = k
	f.H[i] = h
	f.KMax[i] = h + disc
	f.KMin[i] = h - disc
	f.Degenerate[i] = deg
}
