package planar

import "deedles.dev/planar/angle"

// Ray is a half-line: the points Origin + t·Dir for t ≥ 0.
type Ray[T Scalar, S Space[T]] struct {
	Origin Point[T, S]
	Dir    Vector[T, S]
}

// NewRay returns the ray from origin with direction dir.
func NewRay[T Scalar, S Space[T]](origin Point[T, S], dir Vector[T, S]) Ray[T, S] {
	return Ray[T, S]{Origin: origin, Dir: dir}
}

// RayThrough returns the ray from from through the point through.
// The ray is degenerate if the two points coincide.
func RayThrough[T Scalar, S Space[T]](from, through Point[T, S]) Ray[T, S] {
	return Ray[T, S]{Origin: from, Dir: from.To(through)}
}

// An Axis is one of the four axis-aligned unit directions.
type Axis int

const (
	Right Axis = iota
	Up
	Left
	Down
)

// AxisVector returns the unit displacement along a in the space S.
func AxisVector[S Space[T], T Scalar](a Axis) Vector[T, S] {
	switch a {
	case Right:
		return Vector[T, S]{DX: 1}
	case Up:
		return Vector[T, S]{DY: 1}
	case Left:
		return Vector[T, S]{DX: -1}
	default:
		return Vector[T, S]{DY: -1}
	}
}

// AxisRay returns the axis-aligned ray from origin along a.
func AxisRay[T Scalar, S Space[T]](origin Point[T, S], a Axis) Ray[T, S] {
	return Ray[T, S]{Origin: origin, Dir: AxisVector[S, T](a)}
}

// Line returns the infinite line the ray lies on.
func (r Ray[T, S]) Line() Line[T, S] {
	return Line[T, S]{P: r.Origin, Dir: r.Dir}
}

// PointAt returns Origin + t·Dir. It is defined for all t, including
// negative values behind the origin; only containment is restricted
// to t ≥ 0.
func (r Ray[T, S]) PointAt(t T) Point[T, S] {
	return Pt[S](r.Origin.X+t*r.Dir.DX, r.Origin.Y+t*r.Dir.DY)
}

// Unit returns the ray's direction scaled to unit length. It reports
// false when the direction is the zero vector.
func (r Ray[T, S]) Unit() (Vector[T, S], bool) {
	return r.Dir.Unit()
}

// Contains reports whether p lies on the ray: on the underlying line
// to within the package tolerance, at a parameter that is not
// meaningfully negative. The origin itself is always contained.
func (r Ray[T, S]) Contains(p Point[T, S]) bool {
	if r.Dir.IsZero() {
		return r.Origin.Near(p)
	}
	l := r.Line()
	if !l.Contains(p) {
		return false
	}
	return l.paramOf(p) >= -eps[T]()
}

// Translated returns the ray shifted by v.
func (r Ray[T, S]) Translated(v Vector[T, S]) Ray[T, S] {
	return Ray[T, S]{Origin: r.Origin.Add(v), Dir: r.Dir}
}

// Rotated returns the ray rotated by the given angle about the point
// about.
func (r Ray[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Ray[T, S] {
	return Ray[T, S]{Origin: r.Origin.Rotated(by, about), Dir: r.Dir.Rotated(by)}
}
