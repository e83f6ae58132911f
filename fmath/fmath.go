// Package fmath provides math functions that are generic over the
// floating-point type, dispatching float32 arguments to
// github.com/chewxy/math32 and float64 arguments to the standard
// library's math package. Named float types fall back to the float64
// implementations.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Pi returns π as a T.
func Pi[T constraints.Float]() T { return T(math.Pi) }

// Epsilon returns the comparison tolerance appropriate for T: 1e-6
// for 32-bit floats and 1e-10 for 64-bit floats. The split exists
// because a float32 cannot meaningfully distinguish values 1e-10
// apart anywhere near magnitude 1.
func Epsilon[T constraints.Float]() T {
	// 2^24+1 is the first integer that float32 cannot represent.
	if T(1<<24+1) == T(1<<24) {
		return 1e-6
	}
	return 1e-10
}

func unary[T constraints.Float](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(f32(v))
	case float64:
		return T(f64(v))
	default:
		return T(f64(float64(x)))
	}
}

func binary[T constraints.Float](x, y T, f32 func(float32, float32) float32, f64 func(float64, float64) float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(f32(v, float32(y)))
	case float64:
		return T(f64(v, float64(y)))
	default:
		return T(f64(float64(x), float64(y)))
	}
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x.
func Sqrt[T constraints.Float](x T) T { return unary(x, math32.Sqrt, math.Sqrt) }

// Round returns the nearest integer to x, rounding halves away from
// zero.
func Round[T constraints.Float](x T) T { return unary(x, math32.Round, math.Round) }

// Floor returns the greatest integer value less than or equal to x.
func Floor[T constraints.Float](x T) T { return unary(x, math32.Floor, math.Floor) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T constraints.Float](x T) T { return unary(x, math32.Ceil, math.Ceil) }

// Trunc returns the integer value of x.
func Trunc[T constraints.Float](x T) T { return unary(x, math32.Trunc, math.Trunc) }

// Sin returns the sine of x, in radians.
func Sin[T constraints.Float](x T) T { return unary(x, math32.Sin, math.Sin) }

// Cos returns the cosine of x, in radians.
func Cos[T constraints.Float](x T) T { return unary(x, math32.Cos, math.Cos) }

// Tan returns the tangent of x, in radians.
func Tan[T constraints.Float](x T) T { return unary(x, math32.Tan, math.Tan) }

// Sincos returns the sine and cosine of x, in radians.
func Sincos[T constraints.Float](x T) (sin, cos T) {
	switch v := any(x).(type) {
	case float32:
		s, c := math32.Sincos(v)
		return T(s), T(c)
	case float64:
		s, c := math.Sincos(v)
		return T(s), T(c)
	default:
		s, c := math.Sincos(float64(x))
		return T(s), T(c)
	}
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the result.
func Atan2[T constraints.Float](y, x T) T { return binary(y, x, math32.Atan2, math.Atan2) }

// Hypot returns sqrt(x*x + y*y), avoiding unnecessary overflow and
// underflow.
func Hypot[T constraints.Float](x, y T) T { return binary(x, y, math32.Hypot, math.Hypot) }

// Mod returns the floating-point remainder of x/y, with the sign of
// x.
func Mod[T constraints.Float](x, y T) T { return binary(x, y, math32.Mod, math.Mod) }

// Copysign returns a value with the magnitude of x and the sign of
// sign.
func Copysign[T constraints.Float](x, sign T) T {
	return binary(x, sign, math32.Copysign, math.Copysign)
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T constraints.Float](x T) bool { return x != x }

// IsInf reports whether x is an infinity. Like math.IsInf, sign > 0
// checks only for positive infinity, sign < 0 only for negative, and
// sign == 0 for either.
func IsInf[T constraints.Float](x T, sign int) bool {
	return (sign >= 0 && x > maxFinite[T]()) || (sign <= 0 && x < -maxFinite[T]())
}

func maxFinite[T constraints.Float]() T {
	if T(1<<24+1) == T(1<<24) {
		return T(math.MaxFloat32)
	}
	max := math.MaxFloat64
	return T(max)
}
