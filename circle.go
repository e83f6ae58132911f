package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Circle is the set of points at distance Radius from Center. A zero
// radius is permitted and describes a degenerate point-circle.
type Circle[T Scalar, S Space[T]] struct {
	Center Point[T, S]
	Radius T
}

// CircleOf returns the circle with the given center and radius, the
// radius snapped to S's grid.
func CircleOf[T Scalar, S Space[T]](center Point[T, S], radius T) Circle[T, S] {
	return Circle[T, S]{Center: center, Radius: Quantize[S](radius)}
}

// IsValid reports whether the radius is non-negative.
func (c Circle[T, S]) IsValid() bool { return c.Radius >= 0 }

// Diameter returns twice the radius.
func (c Circle[T, S]) Diameter() T { return 2 * c.Radius }

// Area returns πr².
func (c Circle[T, S]) Area() T {
	return fmath.Pi[T]() * c.Radius * c.Radius
}

// Circumference returns 2πr.
func (c Circle[T, S]) Circumference() T {
	return 2 * fmath.Pi[T]() * c.Radius
}

// Contains reports whether p is inside the circle or on its
// boundary, to within the package tolerance.
func (c Circle[T, S]) Contains(p Point[T, S]) bool {
	return c.Center.DistanceTo(p) <= c.Radius+eps[T]()
}

// OnBoundary reports whether p lies on the circle itself.
func (c Circle[T, S]) OnBoundary(p Point[T, S]) bool {
	return near(c.Center.DistanceTo(p), c.Radius)
}

// PointAt returns the point on the circle at the given angle
// counter-clockwise from the positive x axis.
func (c Circle[T, S]) PointAt(theta angle.Angle[T]) Point[T, S] {
	sin, cos := theta.Sincos()
	return Pt[S](c.Center.X+c.Radius*cos, c.Center.Y+c.Radius*sin)
}

// Translated returns the circle shifted by v.
func (c Circle[T, S]) Translated(v Vector[T, S]) Circle[T, S] {
	return Circle[T, S]{Center: c.Center.Add(v), Radius: c.Radius}
}

// Scaled returns the circle with its radius multiplied by k, centered
// at the same point.
func (c Circle[T, S]) Scaled(k T) Circle[T, S] {
	return CircleOf(c.Center, c.Radius*k)
}

// Rotated returns the circle rotated by the given angle about the
// point about. Only the center moves.
func (c Circle[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Circle[T, S] {
	return Circle[T, S]{Center: c.Center.Rotated(by, about), Radius: c.Radius}
}

// BoundingBox returns the smallest rectangle containing the circle.
func (c Circle[T, S]) BoundingBox() Rect[T, S] {
	return Rt[S](c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}
