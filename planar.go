// Package planar provides generic 2D geometric primitives and the
// algorithms that operate on them.
//
// Every shape is parameterized over both a scalar type and a
// coordinate [Space]. A space may declare a quantum, a grid step that
// all coordinates in the space are snapped to when they are
// constructed or derived. Snapping happens at construction only, so
// shapes that should share a boundary, such as stacked rectangles,
// reproduce it bit for bit instead of drifting apart through
// accumulated floating-point error.
//
// All types are immutable values. Operations with no well-defined
// answer, such as the unit direction of a zero vector or the centroid
// of a degenerate polygon, report their failure with an extra boolean
// result rather than returning a sentinel value.
package planar

import (
	"golang.org/x/exp/constraints"

	"deedles.dev/planar/fmath"
)

// Scalar is a constraint for the coordinate types that planar's
// shapes and functions can handle.
type Scalar interface {
	constraints.Float
}

// eps is the comparison tolerance used by every approximate predicate
// in the package: 1e-10 for 64-bit scalars, 1e-6 for 32-bit ones.
func eps[T Scalar]() T { return fmath.Epsilon[T]() }

func near[T Scalar](a, b T) bool { return fmath.Abs(a-b) <= eps[T]() }

func nearZero[T Scalar](v T) bool { return fmath.Abs(v) <= eps[T]() }
