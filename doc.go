// Package surface computes normals and curvatures of surfaces that are only
// known through samples on a grid.
//
// A [Surface] is built from two strictly increasing parameter axes u and v
// and three matrices holding the x, y and z coordinates sampled at every
// grid node. Each coordinate is interpolated by a bicubic spline, and all
// quantities are computed by differentiating the splines analytically. This
// allows evaluating them at any parameter pair, not just at grid nodes.
//
// # Interpolation
//
// The splines are tensor products of not-a-knot cubic splines. They pass
// exactly through the samples and are twice continuously differentiable.
// They are the same splines that FITPACK, and thus scipy's
// RectBivariateSpline, produces for cubic interpolation without smoothing.
// Smoothing of noisy samples is not supported.
//
// Every axis needs at least four samples.
//
// # Queries
//
// Queries take two slices u and v of equal length and evaluate the surface
// at the points (u[i], v[i]). The slices are paired elementwise; they don't
// describe a grid. Results have one element per point.
//
// The available quantities are:
//   - the position and the partial derivatives du, dv, duu, dvv and duv
//     (see [Surface.Position], [Surface.Du], ...)
//   - the unit normal ([Surface.Normal])
//   - the coefficients E, F, G of the first and L, M, N of the second
//     fundamental form
//   - the Gaussian curvature K, the mean curvature H and the principal
//     curvatures KMin and KMax
//
// [Surface.Frame] computes all of them at once.
//
// Vectors are [r3.Vec] values in (x, y, z) order. The pmetsurf Python
// package, which this package can replace, returned positions as (z, y, x);
// [Surface.PositionZYX] returns that layout.
//
// # Orientation
//
// The normal is dv × du, normalized. With this orientation, a dome sampled
// as x = 10u, y = 10v, z = √(100 − x² − y²) has a downwards pointing normal
// and both principal curvatures equal +0.1. This matches pmetsurf, which
// computed du × dv on vectors in (z, y, x) order.
//
// # Extrapolation
//
// By default, parameters outside of the grid are clamped to the nearest
// grid boundary, which is what FITPACK does. [Extend] instead continues the
// boundary polynomials. See [Options].
//
// # Degenerate points
//
// Where du × dv vanishes, for example at a pole of the parameterization,
// the normal and L, M, N are NaN. Where EG − F² vanishes, K, H, KMin and
// KMax are NaN. Such points are flagged in [Surface.Degeneracies]; the rest
// of the batch is unaffected. Degenerate quantities are always NaN, never
// infinite.
//
// Round-off can make H² − K slightly negative at umbilic points. The
// discriminant is clamped to zero, so principal curvatures of
// well-conditioned points are never NaN.
//
// # Caching
//
// Each surface remembers the results of its most recent query. Repeating a
// query with equal parameter values, for example asking for K and then for
// H at the same points, reuses the results. The cache compares values, not
// slice identity, and never changes results. It can be disabled with
// [Options].DisableCache.
//
// # Curves
//
// [Curve] is the one-parameter counterpart of Surface: a plane curve
// interpolated through points sampled at increasing parameters, with
// derivatives, normals and curvature.
package surface
