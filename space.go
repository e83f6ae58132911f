package planar

import "deedles.dev/planar/fmath"

// Space identifies the coordinate space that a shape's coordinates
// live in. A space is declared as an empty struct type whose Quantum
// method returns the space's grid step:
//
//	type Millimeters struct{}
//
//	func (Millimeters) Quantum() float64 { return 0.01 }
//
// A quantum of zero means the space is unconstrained and values pass
// through quantization unchanged. Because the space appears as a type
// parameter on every shape, mixing coordinates from different spaces
// is a compile error, and carrying the space costs nothing at
// runtime.
type Space[T Scalar] interface {
	// Quantum returns the grid step that coordinates in this space
	// are snapped to, or zero if the space is unquantized. It must
	// be callable on the space's zero value and always return the
	// same result.
	Quantum() T
}

// Continuous is the space with no quantum. It is the space to use
// when no grid snapping is wanted.
type Continuous[T Scalar] struct{}

// Quantum returns zero.
func (Continuous[T]) Quantum() T { return 0 }

func quantum[S Space[T], T Scalar]() T {
	var s S
	return s.Quantum()
}

// Quantize rounds v to the nearest integer multiple of S's quantum,
// rounding halves away from zero. It is the identity when S declares
// no quantum, or a quantum that is not positive and finite.
//
// Quantize is idempotent: applying it twice gives the same result as
// applying it once.
func Quantize[S Space[T], T Scalar](v T) T {
	q := quantum[S, T]()
	if q <= 0 || fmath.IsNaN(q) || fmath.IsInf(q, 0) {
		return v
	}
	return fmath.Round(v/q) * q
}
