package planar

// Rect is an axis-aligned rectangle described by its lower-left
// corner Min and its width and height. The opposite corner is
// derived, not stored, and each of its coordinates is independently
// snapped to S's grid. That is what lets independently constructed
// rectangles that should share an edge, such as one stacked on top of
// another, agree on the shared coordinate bit for bit.
//
// Negative width or height is representable; see [Rect.IsValid] and
// [Rect.Canon].
type Rect[T Scalar, S Space[T]] struct {
	Min  Point[T, S]
	W, H T
}

// Rt returns the rectangle with lower-left corner (x, y), width w,
// and height h, each snapped to S's grid.
func Rt[S Space[T], T Scalar](x, y, w, h T) Rect[T, S] {
	return Rect[T, S]{Min: Pt[S](x, y), W: Quantize[S](w), H: Quantize[S](h)}
}

// RectBetween returns the canonical rectangle with the two points as
// opposite corners.
func RectBetween[T Scalar, S Space[T]](a, b Point[T, S]) Rect[T, S] {
	return Rt[S](a.X, a.Y, b.X-a.X, b.Y-a.Y).Canon()
}

// IsValid reports whether the rectangle has non-negative width and
// height.
func (r Rect[T, S]) IsValid() bool { return r.W >= 0 && r.H >= 0 }

// Canon returns the canonical version of the rectangle: one with the
// same corners but non-negative width and height.
func (r Rect[T, S]) Canon() Rect[T, S] {
	x, y, w, h := r.Min.X, r.Min.Y, r.W, r.H
	if w < 0 {
		x, w = Quantize[S](x+w), -w
	}
	if h < 0 {
		y, h = Quantize[S](y+h), -h
	}
	return Rect[T, S]{Min: Point[T, S]{X: x, Y: y}, W: w, H: h}
}

// Dx returns the rectangle's width.
func (r Rect[T, S]) Dx() T { return r.W }

// Dy returns the rectangle's height.
func (r Rect[T, S]) Dy() T { return r.H }

// LLX returns the x coordinate of the lower-left corner.
func (r Rect[T, S]) LLX() T { return r.Min.X }

// LLY returns the y coordinate of the lower-left corner.
func (r Rect[T, S]) LLY() T { return r.Min.Y }

// URX returns the x coordinate of the upper-right corner, snapped to
// S's grid.
func (r Rect[T, S]) URX() T { return Quantize[S](r.Min.X + r.W) }

// URY returns the y coordinate of the upper-right corner, snapped to
// S's grid.
func (r Rect[T, S]) URY() T { return Quantize[S](r.Min.Y + r.H) }

// Max returns the corner opposite Min.
func (r Rect[T, S]) Max() Point[T, S] {
	return Point[T, S]{X: r.URX(), Y: r.URY()}
}

// Center returns the rectangle's center, snapped to S's grid.
func (r Rect[T, S]) Center() Point[T, S] {
	return Pt[S](r.Min.X+r.W/2, r.Min.Y+r.H/2)
}

// Area returns the rectangle's area. It is negative only if exactly
// one of width and height is negative.
func (r Rect[T, S]) Area() T { return r.W * r.H }

// Perimeter returns the length of the rectangle's boundary.
func (r Rect[T, S]) Perimeter() T {
	c := r.Canon()
	return 2 * (c.W + c.H)
}

// ContainsPoint reports whether p is inside the rectangle or on its
// boundary, to within the package tolerance.
func (r Rect[T, S]) ContainsPoint(p Point[T, S]) bool {
	c := r.Canon()
	e := eps[T]()
	return p.X >= c.LLX()-e && p.X <= c.URX()+e &&
		p.Y >= c.LLY()-e && p.Y <= c.URY()+e
}

// Contains reports whether every point of o is inside r.
func (r Rect[T, S]) Contains(o Rect[T, S]) bool {
	rc, oc := r.Canon(), o.Canon()
	e := eps[T]()
	return oc.LLX() >= rc.LLX()-e && oc.URX() <= rc.URX()+e &&
		oc.LLY() >= rc.LLY()-e && oc.URY() <= rc.URY()+e
}

// Overlaps reports whether the interiors of the two rectangles share
// any point. Rectangles that merely touch along an edge do not
// overlap.
func (r Rect[T, S]) Overlaps(o Rect[T, S]) bool {
	rc, oc := r.Canon(), o.Canon()
	e := eps[T]()
	return rc.LLX() < oc.URX()-e && oc.LLX() < rc.URX()-e &&
		rc.LLY() < oc.URY()-e && oc.LLY() < rc.URY()-e
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect[T, S]) Union(o Rect[T, S]) Rect[T, S] {
	rc, oc := r.Canon(), o.Canon()
	x := min(rc.LLX(), oc.LLX())
	y := min(rc.LLY(), oc.LLY())
	return Rt[S](x, y, max(rc.URX(), oc.URX())-x, max(rc.URY(), oc.URY())-y)
}

// Intersect returns the largest rectangle contained in both r and o.
// It reports false when the rectangles do not overlap.
func (r Rect[T, S]) Intersect(o Rect[T, S]) (Rect[T, S], bool) {
	if !r.Overlaps(o) {
		return Rect[T, S]{}, false
	}
	rc, oc := r.Canon(), o.Canon()
	x := max(rc.LLX(), oc.LLX())
	y := max(rc.LLY(), oc.LLY())
	return Rt[S](x, y, min(rc.URX(), oc.URX())-x, min(rc.URY(), oc.URY())-y), true
}

// Translated returns the rectangle shifted by v.
func (r Rect[T, S]) Translated(v Vector[T, S]) Rect[T, S] {
	return Rect[T, S]{Min: r.Min.Add(v), W: r.W, H: r.H}
}

// Resized returns a rectangle with the same lower-left corner and the
// given width and height.
func (r Rect[T, S]) Resized(w, h T) Rect[T, S] {
	return Rect[T, S]{Min: r.Min, W: Quantize[S](w), H: Quantize[S](h)}
}

// Vertices returns the rectangle's corners in counter-clockwise
// order starting from Min, assuming a canonical rectangle.
func (r Rect[T, S]) Vertices() [4]Point[T, S] {
	return [4]Point[T, S]{
		r.Min,
		{X: r.URX(), Y: r.LLY()},
		r.Max(),
		{X: r.LLX(), Y: r.URY()},
	}
}

// AsPolygon returns the rectangle's boundary as a counter-clockwise
// polygon.
func (r Rect[T, S]) AsPolygon() Polygon[T, S] {
	v := r.Canon().Vertices()
	return Polygon[T, S](v[:])
}
