package planar

import (
	"deedles.dev/planar/angle"
	"deedles.dev/planar/fmath"
)

// Segment is the straight path from A to B: the points
// A + t·(B − A) for t in [0, 1].
type Segment[T Scalar, S Space[T]] struct {
	A, B Point[T, S]
}

// Seg returns the segment from a to b.
func Seg[T Scalar, S Space[T]](a, b Point[T, S]) Segment[T, S] {
	return Segment[T, S]{A: a, B: b}
}

// Vector returns the displacement from A to B.
func (s Segment[T, S]) Vector() Vector[T, S] {
	return s.A.To(s.B)
}

// Length returns the Euclidean length of the segment.
func (s Segment[T, S]) Length() T {
	return s.A.DistanceTo(s.B)
}

// Midpoint returns the point halfway between the endpoints, snapped
// to S's grid.
func (s Segment[T, S]) Midpoint() Point[T, S] {
	return Pt[S]((s.A.X+s.B.X)/2, (s.A.Y+s.B.Y)/2)
}

// PointAt returns A + t·(B − A). Values of t outside [0, 1] evaluate
// the segment's supporting line beyond its endpoints.
func (s Segment[T, S]) PointAt(t T) Point[T, S] {
	return Pt[S](s.A.X+t*(s.B.X-s.A.X), s.A.Y+t*(s.B.Y-s.A.Y))
}

// Reversed returns the segment running the other way.
func (s Segment[T, S]) Reversed() Segment[T, S] {
	return Segment[T, S]{A: s.B, B: s.A}
}

// Line returns the segment's supporting line, directed from A to B.
func (s Segment[T, S]) Line() Line[T, S] {
	return Line[T, S]{P: s.A, Dir: s.Vector()}
}

// ClosestTo returns the point on the segment closest to p. For a
// degenerate segment that is A.
func (s Segment[T, S]) ClosestTo(p Point[T, S]) Point[T, S] {
	l := s.Line()
	if l.Dir.IsZero() {
		return s.A
	}
	t := l.paramOf(p)
	switch {
	case t <= 0:
		return s.A
	case t >= 1:
		return s.B
	}
	return l.PointAt(t)
}

// DistanceTo returns the distance from p to the nearest point of the
// segment. The computation is done in raw coordinates so that the
// result is not perturbed by grid snapping.
func (s Segment[T, S]) DistanceTo(p Point[T, S]) T {
	l := s.Line()
	if l.Dir.IsZero() {
		return s.A.DistanceTo(p)
	}
	t := l.paramOf(p)
	t = min(max(t, 0), 1)
	return fmath.Hypot(p.X-(s.A.X+t*l.Dir.DX), p.Y-(s.A.Y+t*l.Dir.DY))
}

// Contains reports whether p lies on the segment to within the
// package tolerance.
func (s Segment[T, S]) Contains(p Point[T, S]) bool {
	return s.DistanceTo(p) <= eps[T]()
}

// Translated returns the segment shifted by v.
func (s Segment[T, S]) Translated(v Vector[T, S]) Segment[T, S] {
	return Segment[T, S]{A: s.A.Add(v), B: s.B.Add(v)}
}

// Rotated returns the segment rotated by the given angle about the
// point about.
func (s Segment[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Segment[T, S] {
	return Segment[T, S]{A: s.A.Rotated(by, about), B: s.B.Rotated(by, about)}
}
