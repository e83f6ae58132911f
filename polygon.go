package planar

import (
	"iter"
	"slices"

	"deedles.dev/planar/angle"
)

// Polygon is an ordered sequence of vertices. Its edges are the
// segments between consecutive vertices, with the last vertex
// connecting back to the first. Construction never fails; a polygon
// with fewer than three vertices is simply not valid for area,
// centroid, or containment purposes.
//
// No method mutates the polygon; the ones that return a Polygon
// allocate a new one.
type Polygon[T Scalar, S Space[T]] []Point[T, S]

// PolygonOf returns the polygon with the given vertices.
func PolygonOf[T Scalar, S Space[T]](vertices ...Point[T, S]) Polygon[T, S] {
	return Polygon[T, S](slices.Clone(vertices))
}

// IsValid reports whether the polygon has at least three vertices.
func (p Polygon[T, S]) IsValid() bool { return len(p) >= 3 }

// Edge returns the i'th edge, from vertex i to vertex (i+1) mod N.
func (p Polygon[T, S]) Edge(i int) Segment[T, S] {
	return Segment[T, S]{A: p[i], B: p[(i+1)%len(p)]}
}

// Edges returns an iterator over the polygon's edges in order.
func (p Polygon[T, S]) Edges() iter.Seq[Segment[T, S]] {
	return func(yield func(Segment[T, S]) bool) {
		for i := range p {
			if !yield(p.Edge(i)) {
				return
			}
		}
	}
}

// SignedDoubleArea returns twice the polygon's signed area, computed
// with the shoelace formula. It is positive for counter-clockwise
// vertex order, negative for clockwise, and zero for degenerate
// polygons.
func (p Polygon[T, S]) SignedDoubleArea() T {
	if !p.IsValid() {
		return 0
	}
	var sum T
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Area returns the polygon's area. It is zero for degenerate
// polygons.
func (p Polygon[T, S]) Area() T {
	sda := p.SignedDoubleArea()
	if sda < 0 {
		sda = -sda
	}
	return sda / 2
}

// IsCounterClockwise reports whether the vertices wind
// counter-clockwise. It is false for degenerate polygons.
func (p Polygon[T, S]) IsCounterClockwise() bool {
	return p.SignedDoubleArea() > 0
}

// IsClockwise reports whether the vertices wind clockwise. It is
// false for degenerate polygons.
func (p Polygon[T, S]) IsClockwise() bool {
	return p.SignedDoubleArea() < 0
}

// Perimeter returns the sum of the lengths of the polygon's edges.
func (p Polygon[T, S]) Perimeter() T {
	if len(p) < 2 {
		return 0
	}
	var sum T
	for i := range p {
		sum += p.Edge(i).Length()
	}
	return sum
}

// Centroid returns the polygon's center of mass, snapped to S's
// grid. It reports false for degenerate polygons, including any with
// fewer than three vertices and any whose vertices are collinear.
func (p Polygon[T, S]) Centroid() (Point[T, S], bool) {
	sda := p.SignedDoubleArea()
	if nearZero(sda) {
		return Point[T, S]{}, false
	}
	var cx, cy T
	for i, a := range p {
		b := p[(i+1)%len(p)]
		w := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * w
		cy += (a.Y + b.Y) * w
	}
	return Pt[S](cx/(3*sda), cy/(3*sda)), true
}

// BoundingBox returns the smallest rectangle containing every
// vertex. It reports false for an empty polygon.
func (p Polygon[T, S]) BoundingBox() (Rect[T, S], bool) {
	if len(p) == 0 {
		return Rect[T, S]{}, false
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return Rt[S](minX, minY, maxX-minX, maxY-minY), true
}

// IsConvex reports whether the polygon is convex: every turn between
// consecutive edges goes the same way. Collinear vertices are
// allowed. Triangles are trivially convex, and degenerate polygons
// are not convex.
func (p Polygon[T, S]) IsConvex() bool {
	if !p.IsValid() {
		return false
	}
	var pos, neg bool
	for i := range p {
		a, b, c := p[i], p[(i+1)%len(p)], p[(i+2)%len(p)]
		cross := a.To(b).Cross(b.To(c))
		switch {
		case cross > eps[T]():
			pos = true
		case cross < -eps[T]():
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// OnBoundary reports whether pt lies on one of the polygon's edges,
// to within the package tolerance.
func (p Polygon[T, S]) OnBoundary(pt Point[T, S]) bool {
	if len(p) < 2 {
		return false
	}
	for i := range p {
		if p.Edge(i).Contains(pt) {
			return true
		}
	}
	return false
}

// Contains reports whether pt is inside the polygon or on its
// boundary. The interior test is a crossing-parity ray cast; the
// boundary is tested explicitly first because a parity test is
// unreliable for points exactly on an edge.
func (p Polygon[T, S]) Contains(pt Point[T, S]) bool {
	if !p.IsValid() {
		return false
	}
	if p.OnBoundary(pt) {
		return true
	}
	inside := false
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Reversed returns the polygon with its vertices in the opposite
// order. Orientation flips: the result is counter-clockwise exactly
// when p is clockwise.
func (p Polygon[T, S]) Reversed() Polygon[T, S] {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

// Translated returns the polygon shifted by v.
func (p Polygon[T, S]) Translated(v Vector[T, S]) Polygon[T, S] {
	out := make(Polygon[T, S], len(p))
	for i, pt := range p {
		out[i] = pt.Add(v)
	}
	return out
}

// Rotated returns the polygon rotated by the given angle about the
// point about.
func (p Polygon[T, S]) Rotated(by angle.Angle[T], about Point[T, S]) Polygon[T, S] {
	out := make(Polygon[T, S], len(p))
	for i, pt := range p {
		out[i] = pt.Rotated(by, about)
	}
	return out
}

// ScaledAbout returns the polygon with every vertex moved to
// about + k·(vertex − about), snapped to S's grid.
func (p Polygon[T, S]) ScaledAbout(k T, about Point[T, S]) Polygon[T, S] {
	out := make(Polygon[T, S], len(p))
	for i, pt := range p {
		out[i] = Pt[S](about.X+k*(pt.X-about.X), about.Y+k*(pt.Y-about.Y))
	}
	return out
}

// Scaled returns the polygon scaled by k about its centroid, which
// stays fixed while the area scales by k². When the centroid is
// undefined the origin is used instead.
func (p Polygon[T, S]) Scaled(k T) Polygon[T, S] {
	about, ok := p.Centroid()
	if !ok {
		about = Point[T, S]{}
	}
	return p.ScaledAbout(k, about)
}
