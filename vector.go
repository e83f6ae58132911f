package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Vector is a displacement in the coordinate space S. Unlike a
// [Point] it has no position.
type Vector[T Scalar, S Space[T]] struct {
	DX, DY T
}

// Vec returns the displacement (dx, dy), snapped to S's grid.
func Vec[S Space[T], T Scalar](dx, dy T) Vector[T, S] {
	return Vector[T, S]{DX: Quantize[S](dx), DY: Quantize[S](dy)}
}

// Add returns the sum of the two displacements.
func (v Vector[T, S]) Add(w Vector[T, S]) Vector[T, S] {
	return Vec[S](v.DX+w.DX, v.DY+w.DY)
}

// Sub returns the difference of the two displacements.
func (v Vector[T, S]) Sub(w Vector[T, S]) Vector[T, S] {
	return Vec[S](v.DX-w.DX, v.DY-w.DY)
}

// Neg returns the displacement pointing the opposite way.
func (v Vector[T, S]) Neg() Vector[T, S] {
	return Vector[T, S]{DX: -v.DX, DY: -v.DY}
}

// Scaled returns the displacement multiplied by k, snapped to S's
// grid.
func (v Vector[T, S]) Scaled(k T) Vector[T, S] {
	return Vec[S](v.DX*k, v.DY*k)
}

// Dot returns the dot product of the two displacements.
func (v Vector[T, S]) Dot(w Vector[T, S]) T {
	return v.DX*w.DX + v.DY*w.DY
}

// Cross returns the z component of the cross product of the two
// displacements. Its sign tells which side of v the displacement w
// points to: positive means counter-clockwise.
func (v Vector[T, S]) Cross(w Vector[T, S]) T {
	return v.DX*w.DY - v.DY*w.DX
}

// Length returns the Euclidean length of the displacement.
func (v Vector[T, S]) Length() T {
	return fmath.Hypot(v.DX, v.DY)
}

// LengthSquared returns the squared length of the displacement,
// avoiding the square root when only comparisons are needed.
func (v Vector[T, S]) LengthSquared() T {
	return v.DX*v.DX + v.DY*v.DY
}

// IsZero reports whether the displacement is zero to within the
// package tolerance.
func (v Vector[T, S]) IsZero() bool {
	return nearZero(v.DX) && nearZero(v.DY)
}

// Unit returns the displacement scaled to length one. It reports
// false for a zero displacement, which has no direction. The result
// is a dimensionless ratio and is deliberately not snapped to S's
// grid; snapping could collapse it back to zero.
func (v Vector[T, S]) Unit() (Vector[T, S], bool) {
	l := v.Length()
	if nearZero(l) {
		return Vector[T, S]{}, false
	}
	return Vector[T, S]{DX: v.DX / l, DY: v.DY / l}, true
}

// Perp returns the displacement rotated a quarter turn
// counter-clockwise.
func (v Vector[T, S]) Perp() Vector[T, S] {
	return Vector[T, S]{DX: -v.DY, DY: v.DX}
}

// Rotated returns the displacement rotated by the given angle.
func (v Vector[T, S]) Rotated(by angle.Angle[T]) Vector[T, S] {
	sin, cos := by.Sincos()
	return Vec[S](v.DX*cos-v.DY*sin, v.DX*sin+v.DY*cos)
}

// Angle returns the direction of the displacement as an angle
// counter-clockwise from the positive x axis.
func (v Vector[T, S]) Angle() angle.Angle[T] {
	return angle.Rad(fmath.Atan2(v.DY, v.DX))
}
