package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Ellipse is an ellipse with the given center, semi-major and
// semi-minor axis lengths, and rotation of the major axis
// counter-clockwise from the positive x axis. A well-formed ellipse
// has SemiMajor ≥ SemiMinor ≥ 0; see [Ellipse.IsValid].
type Ellipse[T Scalar, S Space[T]] struct {
	Center    Point[T, S]
	SemiMajor T
	SemiMinor T
	Rotation  angle.Angle[T]
}

// EllipseOf returns the ellipse with the given center, axis lengths,
// and rotation, the axis lengths snapped to S's grid.
func EllipseOf[T Scalar, S Space[T]](center Point[T, S], semiMajor, semiMinor T, rotation angle.Angle[T]) Ellipse[T, S] {
	return Ellipse[T, S]{
		Center:    center,
		SemiMajor: Quantize[S](semiMajor),
		SemiMinor: Quantize[S](semiMinor),
		Rotation:  rotation,
	}
}

// AsEllipse returns the circle as an ellipse with equal axes and no
// rotation.
func (c Circle[T, S]) AsEllipse() Ellipse[T, S] {
	return Ellipse[T, S]{Center: c.Center, SemiMajor: c.Radius, SemiMinor: c.Radius}
}

// IsValid reports whether SemiMajor ≥ SemiMinor ≥ 0.
func (e Ellipse[T, S]) IsValid() bool {
	return e.SemiMajor >= e.SemiMinor && e.SemiMinor >= 0
}

// IsCircle reports whether the two axes are equal to within the
// package tolerance.
func (e Ellipse[T, S]) IsCircle() bool {
	return near(e.SemiMajor, e.SemiMinor)
}

// AsCircle returns the circle the ellipse describes. It reports
// false when the axes differ by more than the package tolerance.
func (e Ellipse[T, S]) AsCircle() (Circle[T, S], bool) {
	if !e.IsCircle() {
		return Circle[T, S]{}, false
	}
	return Circle[T, S]{Center: e.Center, Radius: e.SemiMajor}, true
}

// Eccentricity returns sqrt(1 − (b/a)²), the deviation of the
// ellipse from circularity. It is zero for a circle, including the
// degenerate case of a zero semi-major axis.
func (e Ellipse[T, S]) Eccentricity() T {
	if e.SemiMajor <= 0 || e.SemiMajor <= e.SemiMinor {
		return 0
	}
	r := e.SemiMinor / e.SemiMajor
	return fmath.Sqrt(1 - r*r)
}

// FocalDistance returns the distance from the center to either
// focus: sqrt(a² − b²), or zero for a circle.
func (e Ellipse[T, S]) FocalDistance() T {
	if e.SemiMajor <= e.SemiMinor {
		return 0
	}
	return fmath.Sqrt(e.SemiMajor*e.SemiMajor - e.SemiMinor*e.SemiMinor)
}

// Foci returns the ellipse's two foci, on the major axis at the
// focal distance from the center. For a circle both coincide with
// the center.
func (e Ellipse[T, S]) Foci() (Point[T, S], Point[T, S]) {
	c := e.FocalDistance()
	sin, cos := e.Rotation.Sincos()
	f1 := Pt[S](e.Center.X+c*cos, e.Center.Y+c*sin)
	f2 := Pt[S](e.Center.X-c*cos, e.Center.Y-c*sin)
	return f1, f2
}

// PointAt returns the point on the ellipse at parameter theta:
// center + R(rotation)·(a·cos θ, b·sin θ). Note that theta is the
// parametric angle, not the geometric angle from the center except
// for circles.
func (e Ellipse[T, S]) PointAt(theta angle.Angle[T]) Point[T, S] {
	ts, tc := theta.Sincos()
	rs, rc := e.Rotation.Sincos()
	x := e.SemiMajor * tc
	y := e.SemiMinor * ts
	return Pt[S](e.Center.X+x*rc-y*rs, e.Center.Y+x*rs+y*rc)
}

// TangentAt returns the derivative of [Ellipse.PointAt] with respect
// to theta: the direction of travel along the ellipse at that
// parameter.
func (e Ellipse[T, S]) TangentAt(theta angle.Angle[T]) Vector[T, S] {
	ts, tc := theta.Sincos()
	rs, rc := e.Rotation.Sincos()
	x := -e.SemiMajor * ts
	y := e.SemiMinor * tc
	return Vec[S](x*rc-y*rs, x*rs+y*rc)
}

// Area returns πab.
func (e Ellipse[T, S]) Area() T {
	return fmath.Pi[T]() * e.SemiMajor * e.SemiMinor
}

// Perimeter returns the circumference of the ellipse using
// Ramanujan's approximation,
//
//	π(3(a+b) − sqrt((3a+b)(a+3b)))
//
// which is exact for a circle and accurate to a few parts per million
// for moderate eccentricities.
func (e Ellipse[T, S]) Perimeter() T {
	a, b := e.SemiMajor, e.SemiMinor
	if near(a, b) {
		return 2 * fmath.Pi[T]() * a
	}
	return fmath.Pi[T]() * (3*(a+b) - fmath.Sqrt((3*a+b)*(a+3*b)))
}

// Contains reports whether p is inside the ellipse or on its
// boundary, to within the package tolerance. It undoes the ellipse's
// translation and rotation and then evaluates the implicit
// inequality x²/a² + y²/b² ≤ 1.
func (e Ellipse[T, S]) Contains(p Point[T, S]) bool {
	if e.SemiMinor <= eps[T]() {
		if e.SemiMajor <= eps[T]() {
			return p.Near(e.Center)
		}
		// Degenerate: the major-axis segment with no interior.
		sin, cos := e.Rotation.Sincos()
		a := e.SemiMajor
		s := Segment[T, S]{
			A: Point[T, S]{X: e.Center.X - a*cos, Y: e.Center.Y - a*sin},
			B: Point[T, S]{X: e.Center.X + a*cos, Y: e.Center.Y + a*sin},
		}
		return s.Contains(p)
	}
	sin, cos := e.Rotation.Sincos()
	dx, dy := p.X-e.Center.X, p.Y-e.Center.Y
	x := dx*cos + dy*sin
	y := -dx*sin + dy*cos
	return x*x/(e.SemiMajor*e.SemiMajor)+y*y/(e.SemiMinor*e.SemiMinor) <= 1+eps[T]()
}

// Translated returns the ellipse shifted by v.
func (e Ellipse[T, S]) Translated(v Vector[T, S]) Ellipse[T, S] {
	e.Center = e.Center.Add(v)
	return e
}

// Rotated returns the ellipse rotated about its own center by the
// given angle.
func (e Ellipse[T, S]) Rotated(by angle.Angle[T]) Ellipse[T, S] {
	e.Rotation = e.Rotation.Add(by)
	return e
}
