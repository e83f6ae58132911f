package planar

import "deedles.dev/planar/angle"

// The Map functions rebuild a shape with every underlying scalar
// passed through a conversion function and re-bound to a destination
// space, re-quantizing each converted value there. They are free
// functions because a method cannot introduce the destination type
// parameters. Mapping is structure preserving: mapping a shape and
// then reading a field gives the same value as converting that field
// directly.
//
// The destination space is usually the only type argument that needs
// to be spelled out:
//
//	q := planar.MapPoint[planar.Continuous[float32]](p, func(v float64) float32 {
//		return float32(v)
//	})

// MapPoint converts a point into the space S2.
func MapPoint[S2 Space[U], U Scalar, T Scalar, S Space[T]](p Point[T, S], f func(T) U) Point[U, S2] {
	return Pt[S2](f(p.X), f(p.Y))
}

// MapVector converts a vector into the space S2.
func MapVector[S2 Space[U], U Scalar, T Scalar, S Space[T]](v Vector[T, S], f func(T) U) Vector[U, S2] {
	return Vec[S2](f(v.DX), f(v.DY))
}

// MapLine converts a line into the space S2.
func MapLine[S2 Space[U], U Scalar, T Scalar, S Space[T]](l Line[T, S], f func(T) U) Line[U, S2] {
	return Line[U, S2]{P: MapPoint[S2](l.P, f), Dir: MapVector[S2](l.Dir, f)}
}

// MapRay converts a ray into the space S2.
func MapRay[S2 Space[U], U Scalar, T Scalar, S Space[T]](r Ray[T, S], f func(T) U) Ray[U, S2] {
	return Ray[U, S2]{Origin: MapPoint[S2](r.Origin, f), Dir: MapVector[S2](r.Dir, f)}
}

// MapSegment converts a segment into the space S2.
func MapSegment[S2 Space[U], U Scalar, T Scalar, S Space[T]](s Segment[T, S], f func(T) U) Segment[U, S2] {
	return Segment[U, S2]{A: MapPoint[S2](s.A, f), B: MapPoint[S2](s.B, f)}
}

// MapCircle converts a circle into the space S2.
func MapCircle[S2 Space[U], U Scalar, T Scalar, S Space[T]](c Circle[T, S], f func(T) U) Circle[U, S2] {
	return Circle[U, S2]{Center: MapPoint[S2](c.Center, f), Radius: Quantize[S2](f(c.Radius))}
}

// MapEllipse converts an ellipse into the space S2. The rotation
// angle's radian value is converted with the same function.
func MapEllipse[S2 Space[U], U Scalar, T Scalar, S Space[T]](e Ellipse[T, S], f func(T) U) Ellipse[U, S2] {
	return Ellipse[U, S2]{
		Center:    MapPoint[S2](e.Center, f),
		SemiMajor: Quantize[S2](f(e.SemiMajor)),
		SemiMinor: Quantize[S2](f(e.SemiMinor)),
		Rotation:  angle.Rad(f(e.Rotation.Radians())),
	}
}

// MapRect converts a rectangle into the space S2.
func MapRect[S2 Space[U], U Scalar, T Scalar, S Space[T]](r Rect[T, S], f func(T) U) Rect[U, S2] {
	return Rect[U, S2]{
		Min: MapPoint[S2](r.Min, f),
		W:   Quantize[S2](f(r.W)),
		H:   Quantize[S2](f(r.H)),
	}
}

// MapTriangle converts a triangle into the space S2.
func MapTriangle[S2 Space[U], U Scalar, T Scalar, S Space[T]](t Triangle[T, S], f func(T) U) Triangle[U, S2] {
	return Triangle[U, S2]{
		A: MapPoint[S2](t.A, f),
		B: MapPoint[S2](t.B, f),
		C: MapPoint[S2](t.C, f),
	}
}

// MapPolygon converts a polygon into the space S2.
func MapPolygon[S2 Space[U], U Scalar, T Scalar, S Space[T]](p Polygon[T, S], f func(T) U) Polygon[U, S2] {
	out := make(Polygon[U, S2], len(p))
	for i, pt := range p {
		out[i] = MapPoint[S2](pt, f)
	}
	return out
}
