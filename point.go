package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Point is a location in the coordinate space S.
type Point[T Scalar, S Space[T]] struct {
	X, Y T
}

// Pt returns the point (x, y), snapped to S's grid.
func Pt[S Space[T], T Scalar](x, y T) Point[T, S] {
	return Point[T, S]{X: Quantize[S](x), Y: Quantize[S](y)}
}

// Add returns the point shifted by the displacement v.
func (p Point[T, S]) Add(v Vector[T, S]) Point[T, S] {
	return Pt[S](p.X+v.DX, p.Y+v.DY)
}

// Sub returns the displacement from q to p.
func (p Point[T, S]) Sub(q Point[T, S]) Vector[T, S] {
	return Vec[S](p.X-q.X, p.Y-q.Y)
}

// To returns the displacement from p to q.
func (p Point[T, S]) To(q Point[T, S]) Vector[T, S] {
	return q.Sub(p)
}

// DistanceTo returns the Euclidean distance between the two points.
func (p Point[T, S]) DistanceTo(q Point[T, S]) T {
	return fmath.Hypot(q.X-p.X, q.Y-p.Y)
}

// Translated is equivalent to [Point.Add]. It exists to give every
// shape the same transform vocabulary.
func (p Point[T, S]) Translated(v Vector[T, S]) Point[T, S] { return p.Add(v) }

// Rotated returns the point rotated by the given angle about the
// point about.
func (p Point[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Point[T, S] {
	sin, cos := by.Sincos()
	dx, dy := p.X-about.X, p.Y-about.Y
	return Pt[S](about.X+dx*cos-dy*sin, about.Y+dx*sin+dy*cos)
}

// Near reports whether p and q coincide to within the package
// tolerance.
func (p Point[T, S]) Near(q Point[T, S]) bool {
	return near(p.X, q.X) && near(p.Y, q.Y)
}
