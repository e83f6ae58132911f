package planar

import "deedles.dev/planar/fmath"

// All intersection routines are closed form. Single-point
// intersections report their success with a boolean; routines that
// can produce up to two points return a slice. Parallel lines,
// including collinear overlapping ones, never produce a single
// intersection point and so report none.

// IntersectRayLine returns the point where the ray crosses the line.
// It reports false when the two are parallel or the crossing lies
// behind the ray's origin.
func IntersectRayLine[T Scalar, S Space[T]](r Ray[T, S], l Line[T, S]) (Point[T, S], bool) {
	denom := r.Dir.Cross(l.Dir)
	if nearZero(denom) {
		return Point[T, S]{}, false
	}
	d := r.Origin.To(l.P)
	t := d.Cross(l.Dir) / denom
	if t < -eps[T]() {
		return Point[T, S]{}, false
	}
	return r.PointAt(t), true
}

// IntersectRaySegment returns the point where the ray crosses the
// segment. It reports false when they are parallel, the crossing is
// behind the ray's origin, or the crossing lies outside the
// segment's extent.
func IntersectRaySegment[T Scalar, S Space[T]](r Ray[T, S], seg Segment[T, S]) (Point[T, S], bool) {
	sd := seg.Vector()
	denom := r.Dir.Cross(sd)
	if nearZero(denom) {
		return Point[T, S]{}, false
	}
	d := r.Origin.To(seg.A)
	t := d.Cross(sd) / denom
	s := d.Cross(r.Dir) / denom
	e := eps[T]()
	if t < -e || s < -e || s > 1+e {
		return Point[T, S]{}, false
	}
	return r.PointAt(t), true
}

// IntersectSegments returns the point where the two segments cross.
// It reports false when they are parallel or the crossing lies
// outside either segment's extent.
func IntersectSegments[T Scalar, S Space[T]](a, b Segment[T, S]) (Point[T, S], bool) {
	ad, bd := a.Vector(), b.Vector()
	denom := ad.Cross(bd)
	if nearZero(denom) {
		return Point[T, S]{}, false
	}
	d := a.A.To(b.A)
	t := d.Cross(bd) / denom
	s := d.Cross(ad) / denom
	e := eps[T]()
	if t < -e || t > 1+e || s < -e || s > 1+e {
		return Point[T, S]{}, false
	}
	return a.PointAt(t), true
}

// IntersectRayCircle returns the points where the ray crosses the
// circle, nearest first. A ray that misses yields none, a tangent
// ray yields one, a ray through the interior yields two, and a ray
// whose origin is strictly inside the circle yields only the forward
// exit point.
func IntersectRayCircle[T Scalar, S Space[T]](r Ray[T, S], c Circle[T, S]) []Point[T, S] {
	ts := rayCircleParams(r, c)
	out := make([]Point[T, S], 0, len(ts))
	for _, t := range ts {
		if t >= -eps[T]() {
			out = append(out, r.PointAt(t))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IntersectLineCircle returns the points where the line crosses the
// circle: none, one for a tangent line, or two.
func IntersectLineCircle[T Scalar, S Space[T]](l Line[T, S], c Circle[T, S]) []Point[T, S] {
	ts := rayCircleParams(Ray[T, S]{Origin: l.P, Dir: l.Dir}, c)
	if len(ts) == 0 {
		return nil
	}
	out := make([]Point[T, S], len(ts))
	for i, t := range ts {
		out[i] = l.PointAt(t)
	}
	return out
}

// rayCircleParams solves |origin + t·dir − center|² = r² and returns
// the real roots in ascending order: zero, one for tangency, or two.
func rayCircleParams[T Scalar, S Space[T]](r Ray[T, S], c Circle[T, S]) []T {
	f := c.Center.To(r.Origin)
	a := r.Dir.Dot(r.Dir)
	if nearZero(a) {
		return nil
	}
	b := 2 * f.Dot(r.Dir)
	k := f.Dot(f) - c.Radius*c.Radius

	disc := b*b - 4*a*k
	switch {
	case disc < -eps[T]():
		return nil
	case disc <= eps[T]():
		return []T{-b / (2 * a)}
	}
	sq := fmath.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return []T{t1, t2}
}

// IntersectCircles returns the points where the two circles cross:
// none for separate, contained, or concentric circles, one for
// tangent circles, and two otherwise.
func IntersectCircles[T Scalar, S Space[T]](a, b Circle[T, S]) []Point[T, S] {
	d := a.Center.DistanceTo(b.Center)
	if nearZero(d) {
		return nil // concentric, or coincident with infinitely many points
	}
	e := eps[T]()
	if d > a.Radius+b.Radius+e || d < fmath.Abs(a.Radius-b.Radius)-e {
		return nil
	}

	// Distance from a's center to the chord through the crossings.
	m := (a.Radius*a.Radius - b.Radius*b.Radius + d*d) / (2 * d)
	h2 := a.Radius*a.Radius - m*m
	if h2 < -e {
		return nil
	}
	h := fmath.Sqrt(max(h2, 0))

	u, _ := a.Center.To(b.Center).Unit()
	mid := Point[T, S]{X: a.Center.X + m*u.DX, Y: a.Center.Y + m*u.DY}
	if h <= e {
		return []Point[T, S]{Pt[S](mid.X, mid.Y)}
	}
	p := u.Perp()
	return []Point[T, S]{
		Pt[S](mid.X+h*p.DX, mid.Y+h*p.DY),
		Pt[S](mid.X-h*p.DX, mid.Y-h*p.DY),
	}
}

// IntersectRayEllipse returns the points where the ray crosses the
// ellipse. The ray is mapped into the ellipse's canonical frame,
// where the ellipse is the unit circle, and the resulting quadratic
// is solved there; the ray parameter is unchanged by that affine map,
// so the crossings are evaluated back on the original ray.
func IntersectRayEllipse[T Scalar, S Space[T]](r Ray[T, S], el Ellipse[T, S]) []Point[T, S] {
	a, b := el.SemiMajor, el.SemiMinor
	if a <= eps[T]() || b <= eps[T]() {
		return nil
	}
	sin, cos := el.Rotation.Sincos()

	// Undo translation and rotation, then scale the axes to 1.
	ox, oy := r.Origin.X-el.Center.X, r.Origin.Y-el.Center.Y
	ox, oy = (ox*cos+oy*sin)/a, (-ox*sin+oy*cos)/b
	dx, dy := (r.Dir.DX*cos+r.Dir.DY*sin)/a, (-r.Dir.DX*sin+r.Dir.DY*cos)/b

	qa := dx*dx + dy*dy
	if nearZero(qa) {
		return nil
	}
	qb := 2 * (ox*dx + oy*dy)
	qk := ox*ox + oy*oy - 1

	disc := qb*qb - 4*qa*qk
	var ts []T
	switch {
	case disc < -eps[T]():
		return nil
	case disc <= eps[T]():
		ts = []T{-qb / (2 * qa)}
	default:
		sq := fmath.Sqrt(disc)
		ts = []T{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
	}

	out := make([]Point[T, S], 0, len(ts))
	for _, t := range ts {
		if t >= -eps[T]() {
			out = append(out, r.PointAt(t))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
