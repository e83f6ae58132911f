package planar

import "deedles.dev/planar/fmath"

// Triangle is three points. It is its own type rather than a
// three-vertex [Polygon] because triangulation produces a lot of
// them and they admit simpler closed forms.
type Triangle[T Scalar, S Space[T]] struct {
	A, B, C Point[T, S]
}

// signedDoubleArea is positive when the vertices wind
// counter-clockwise.
func (t Triangle[T, S]) signedDoubleArea() T {
	return t.A.To(t.B).Cross(t.A.To(t.C))
}

// Area returns the triangle's area.
func (t Triangle[T, S]) Area() T {
	return fmath.Abs(t.signedDoubleArea()) / 2
}

// Centroid returns the triangle's centroid, snapped to S's grid.
func (t Triangle[T, S]) Centroid() Point[T, S] {
	return Pt[S]((t.A.X+t.B.X+t.C.X)/3, (t.A.Y+t.B.Y+t.C.Y)/3)
}

// Contains reports whether p is inside the triangle or on its
// boundary, to within the package tolerance.
func (t Triangle[T, S]) Contains(p Point[T, S]) bool {
	d1 := t.A.To(t.B).Cross(t.A.To(p))
	d2 := t.B.To(t.C).Cross(t.B.To(p))
	d3 := t.C.To(t.A).Cross(t.C.To(p))
	e := eps[T]()
	hasNeg := d1 < -e || d2 < -e || d3 < -e
	hasPos := d1 > e || d2 > e || d3 > e
	return !(hasNeg && hasPos)
}

// AsPolygon returns the triangle as a three-vertex polygon.
func (t Triangle[T, S]) AsPolygon() Polygon[T, S] {
	return Polygon[T, S]{t.A, t.B, t.C}
}

// Triangulate splits the polygon into len(p)−2 triangles sharing the
// first vertex, a fan triangulation. It reports false for degenerate
// polygons.
//
// The fan is a correct triangulation only for polygons that are
// convex, or star-shaped as seen from the first vertex. For those,
// the triangle areas sum to the polygon's area. For general simple
// polygons use [Polygon.TriangulateEars].
func (p Polygon[T, S]) Triangulate() ([]Triangle[T, S], bool) {
	if !p.IsValid() {
		return nil, false
	}
	out := make([]Triangle[T, S], 0, len(p)-2)
	for i := 1; i < len(p)-1; i++ {
		out = append(out, Triangle[T, S]{A: p[0], B: p[i], C: p[i+1]})
	}
	return out, true
}

// TriangulateEars splits the polygon into len(p)−2 triangles by ear
// clipping. It handles any simple polygon, convex or concave, in
// either winding order. It reports false for degenerate polygons and
// for inputs on which no ear can be found, which indicates a
// self-intersecting boundary.
func (p Polygon[T, S]) TriangulateEars() ([]Triangle[T, S], bool) {
	if !p.IsValid() {
		return nil, false
	}

	// Work on a counter-clockwise copy so "convex corner" always
	// means a positive cross product.
	work := Polygon[T, S](p)
	if work.IsClockwise() {
		work = work.Reversed()
	}

	idx := make([]int, len(work))
	for i := range idx {
		idx[i] = i
	}

	out := make([]Triangle[T, S], 0, len(work)-2)
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			ear := Triangle[T, S]{A: work[prev], B: work[cur], C: work[next]}

			if ear.signedDoubleArea() <= eps[T]() {
				continue // reflex or collinear corner
			}
			if earContainsOther(ear, work, idx, prev, cur, next) {
				continue
			}

			out = append(out, ear)
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}
	out = append(out, Triangle[T, S]{A: work[idx[0]], B: work[idx[1]], C: work[idx[2]]})
	return out, true
}

func earContainsOther[T Scalar, S Space[T]](ear Triangle[T, S], p Polygon[T, S], idx []int, prev, cur, next int) bool {
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if ear.Contains(p[j]) {
			return true
		}
	}
	return false
}
