package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Line is an infinite line through P with direction Dir. The
// direction need not be unit length.
type Line[T Scalar, S Space[T]] struct {
	P   Point[T, S]
	Dir Vector[T, S]
}

// NewLine returns the line through p with direction dir.
func NewLine[T Scalar, S Space[T]](p Point[T, S], dir Vector[T, S]) Line[T, S] {
	return Line[T, S]{P: p, Dir: dir}
}

// LineThrough returns the line through the two points. Its direction
// is the displacement from a to b, so the line is degenerate if the
// points coincide.
func LineThrough[T Scalar, S Space[T]](a, b Point[T, S]) Line[T, S] {
	return Line[T, S]{P: a, Dir: a.To(b)}
}

// PointAt returns P + t·Dir.
func (l Line[T, S]) PointAt(t T) Point[T, S] {
	return Pt[S](l.P.X+t*l.Dir.DX, l.P.Y+t*l.Dir.DY)
}

// Unit returns the line's direction scaled to unit length. It
// reports false when the direction is the zero vector.
func (l Line[T, S]) Unit() (Vector[T, S], bool) {
	return l.Dir.Unit()
}

// paramOf returns the parameter of p's projection onto the line.
// The caller must ensure the direction is nonzero.
func (l Line[T, S]) paramOf(p Point[T, S]) T {
	return l.P.To(p).Dot(l.Dir) / l.Dir.LengthSquared()
}

// ClosestTo returns the point on the line closest to p. It reports
// false when the line is degenerate.
func (l Line[T, S]) ClosestTo(p Point[T, S]) (Point[T, S], bool) {
	if l.Dir.IsZero() {
		return Point[T, S]{}, false
	}
	return l.PointAt(l.paramOf(p)), true
}

// DistanceTo returns the perpendicular distance from p to the line.
// For a degenerate line it is the distance to P.
func (l Line[T, S]) DistanceTo(p Point[T, S]) T {
	if l.Dir.IsZero() {
		return l.P.DistanceTo(p)
	}
	d := l.P.To(p)
	return fmath.Abs(l.Dir.Cross(d)) / l.Dir.Length()
}

// Contains reports whether p lies on the line to within the package
// tolerance.
func (l Line[T, S]) Contains(p Point[T, S]) bool {
	return l.DistanceTo(p) <= eps[T]()
}

// Translated returns the line shifted by v.
func (l Line[T, S]) Translated(v Vector[T, S]) Line[T, S] {
	return Line[T, S]{P: l.P.Add(v), Dir: l.Dir}
}

// Rotated returns the line rotated by the given angle about the
// point about.
func (l Line[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Line[T, S] {
	return Line[T, S]{P: l.P.Rotated(by, about), Dir: l.Dir.Rotated(by)}
}
