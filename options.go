package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned when a parameter axis has fewer values than
	// a cubic spline needs.
	ErrTooFewPoints = errors.New("too few grid points for a cubic spline")
	// ErrNotIncreasing is returned when a parameter axis repeats a value or
	// is out of order.
	ErrNotIncreasing = errors.New("grid coordinates are not strictly increasing")
	// ErrShape is returned when a coordinate matrix doesn't have one row per
	// u value and one column per v value.
	ErrShape = errors.New("coordinate matrix doesn't match the grid")
	// ErrNonFinite is returned when the grid or the sampled coordinates
	// contain NaN or infinite values.
	ErrNonFinite = errors.New("grid contains non-finite values")
	// ErrLength is returned by queries whose u and v slices have different
	// lengths.
	ErrLength = errors.New("u and v have different lengths")
)

// Extrapolation selects how a surface or curve is evaluated at parameters
// outside of the sampled grid.
type Extrapolation int

const (
	// Clamp moves a parameter that lies outside the grid to the nearest grid
	// boundary. Positions and derivatives are those of the boundary point.
	Clamp Extrapolation = iota
	// Extend continues the first and last cubic pieces as polynomials.
	// Results grow without bound as parameters move away from the grid.
	Extend
)

func (e Extrapolation) String() string {
	switch e {
	case Clamp:
		return "Clamp"
	case Extend:
		return "Extend"
	default:
		return fmt.Sprintf("Extrapolation(%d)", int(e))
	}
}

type Options struct {
	// Extrapolation controls evaluation outside of the grid.
	Extrapolation Extrapolation
	// DisableCache makes every query recompute its results, even when it
	// repeats the previous query.
	DisableCache bool
}

// DefaultOptions clamps queries to the grid, which matches the behavior of
// FITPACK-based interpolators, and caches the most recent query.
var DefaultOptions = Options{Extrapolation: Clamp}

func (opts Options) validate() error {
	switch opts.Extrapolation {
	case Clamp, Extend:
		return nil
	default:
		return fmt.Errorf("invalid extrapolation mode %v", opts.Extrapolation)
	}
}
