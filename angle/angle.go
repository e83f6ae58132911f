// Package angle provides a small generic angle representation used by
// the rotation-aware parts of planar. An Angle wraps a radian value
// of any floating-point type and evaluates its own trigonometry, so
// callers never have to remember which unit a bare scalar is in.
package angle

import (
	"deedles.dev/planar/fmath"
	"golang.org/x/exp/constraints"
)

// Angle is a planar angle. The zero value is a zero angle.
type Angle[T constraints.Float] struct {
	rad T
}

// Rad returns the angle of v radians.
func Rad[T constraints.Float](v T) Angle[T] { return Angle[T]{rad: v} }

// Deg returns the angle of v degrees.
func Deg[T constraints.Float](v T) Angle[T] {
	return Angle[T]{rad: v * fmath.Pi[T]() / 180}
}

// Zero returns the zero angle.
func Zero[T constraints.Float]() Angle[T] { return Angle[T]{} }

// HalfPi returns a quarter turn, π/2 radians.
func HalfPi[T constraints.Float]() Angle[T] { return Angle[T]{rad: fmath.Pi[T]() / 2} }

// Pi returns a half turn, π radians.
func Pi[T constraints.Float]() Angle[T] { return Angle[T]{rad: fmath.Pi[T]()} }

// FullCircle returns a full turn, 2π radians.
func FullCircle[T constraints.Float]() Angle[T] { return Angle[T]{rad: 2 * fmath.Pi[T]()} }

// Radians returns the angle in radians.
func (a Angle[T]) Radians() T { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle[T]) Degrees() T { return a.rad * 180 / fmath.Pi[T]() }

// Sin returns the sine of the angle.
func (a Angle[T]) Sin() T { return fmath.Sin(a.rad) }

// Cos returns the cosine of the angle.
func (a Angle[T]) Cos() T { return fmath.Cos(a.rad) }

// Sincos returns the sine and cosine of the angle.
func (a Angle[T]) Sincos() (sin, cos T) { return fmath.Sincos(a.rad) }

// Tan returns the tangent of the angle.
func (a Angle[T]) Tan() T { return fmath.Tan(a.rad) }

// Add returns the sum of the two angles.
func (a Angle[T]) Add(b Angle[T]) Angle[T] { return Angle[T]{rad: a.rad + b.rad} }

// Sub returns the difference of the two angles.
func (a Angle[T]) Sub(b Angle[T]) Angle[T] { return Angle[T]{rad: a.rad - b.rad} }

// Neg returns the negated angle.
func (a Angle[T]) Neg() Angle[T] { return Angle[T]{rad: -a.rad} }

// Scaled returns the angle multiplied by k.
func (a Angle[T]) Scaled(k T) Angle[T] { return Angle[T]{rad: a.rad * k} }

// Normalized returns the equivalent angle in [0, 2π).
func (a Angle[T]) Normalized() Angle[T] {
	full := 2 * fmath.Pi[T]()
	r := fmath.Mod(a.rad, full)
	if r < 0 {
		r += full
	}
	return Angle[T]{rad: r}
}
