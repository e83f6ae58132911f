package planar_test

import (
	"testing"

	"deedles.dev/planar"
	"deedles.dev/planar/angle"
	"github.com/stretchr/testify/require"
)

func TestIntersectRayLine(t *testing.T) {
	r := planar.RayThrough(planar.Pt[cont](0.0, 0.0), planar.Pt[cont](1.0, 1.0))
	l := planar.NewLine(planar.Pt[cont](0.0, 2.0), planar.Vec[cont](1.0, 0.0))

	p, ok := planar.IntersectRayLine(r, l)
	require.True(t, ok)
	require.True(t, p.Near(planar.Pt[cont](2.0, 2.0)))

	// Parallel, including collinear overlap, is never a single point.
	par := planar.NewLine(planar.Pt[cont](0.0, 1.0), planar.Vec[cont](2.0, 2.0))
	_, ok = planar.IntersectRayLine(r, par)
	require.False(t, ok)

	col := planar.NewLine(planar.Pt[cont](5.0, 5.0), planar.Vec[cont](1.0, 1.0))
	_, ok = planar.IntersectRayLine(r, col)
	require.False(t, ok)

	// A crossing behind the origin does not count.
	behind := planar.NewLine(planar.Pt[cont](0.0, -2.0), planar.Vec[cont](1.0, 0.0))
	_, ok = planar.IntersectRayLine(r, behind)
	require.False(t, ok)

	// The origin itself does.
	through := planar.NewLine(planar.Pt[cont](-1.0, 1.0), planar.Vec[cont](1.0, -1.0))
	p, ok = planar.IntersectRayLine(r, through)
	require.True(t, ok)
	require.True(t, p.Near(planar.Pt[cont](0.0, 0.0)))
}

func TestIntersectRaySegment(t *testing.T) {
	r := planar.AxisRay(planar.Pt[cont](0.0, 0.0), planar.Right)

	hit := planar.Seg(planar.Pt[cont](2.0, -1.0), planar.Pt[cont](2.0, 1.0))
	p, ok := planar.IntersectRaySegment(r, hit)
	require.True(t, ok)
	require.True(t, p.Near(planar.Pt[cont](2.0, 0.0)))

	// On the segment's line but beyond its extent.
	short := planar.Seg(planar.Pt[cont](2.0, 1.0), planar.Pt[cont](2.0, 3.0))
	_, ok = planar.IntersectRaySegment(r, short)
	require.False(t, ok)

	// Behind the ray.
	behind := planar.Seg(planar.Pt[cont](-2.0, -1.0), planar.Pt[cont](-2.0, 1.0))
	_, ok = planar.IntersectRaySegment(r, behind)
	require.False(t, ok)

	// An endpoint exactly on the ray still hits.
	end := planar.Seg(planar.Pt[cont](3.0, 0.0), planar.Pt[cont](3.0, 5.0))
	p, ok = planar.IntersectRaySegment(r, end)
	require.True(t, ok)
	require.True(t, p.Near(planar.Pt[cont](3.0, 0.0)))
}

func TestIntersectSegments(t *testing.T) {
	a := planar.Seg(planar.Pt[cont](0.0, 0.0), planar.Pt[cont](2.0, 2.0))
	b := planar.Seg(planar.Pt[cont](0.0, 2.0), planar.Pt[cont](2.0, 0.0))

	p, ok := planar.IntersectSegments(a, b)
	require.True(t, ok)
	require.True(t, p.Near(planar.Pt[cont](1.0, 1.0)))

	c := planar.Seg(planar.Pt[cont](3.0, 0.0), planar.Pt[cont](3.0, 5.0))
	_, ok = planar.IntersectSegments(a, c)
	require.False(t, ok)
}

func TestIntersectRayCircleCardinality(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](5.0, 0.0), 1.0)

	// Through the center: two points, nearest first.
	through := planar.AxisRay(planar.Pt[cont](0.0, 0.0), planar.Right)
	hits := planar.IntersectRayCircle(through, c)
	require.Len(t, hits, 2)
	require.True(t, hits[0].Near(planar.Pt[cont](4.0, 0.0)))
	require.True(t, hits[1].Near(planar.Pt[cont](6.0, 0.0)))

	// Tangent: exactly one.
	tangent := planar.AxisRay(planar.Pt[cont](0.0, 1.0), planar.Right)
	hits = planar.IntersectRayCircle(tangent, c)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(planar.Pt[cont](5.0, 1.0)))

	// Miss: none.
	miss := planar.AxisRay(planar.Pt[cont](0.0, 3.0), planar.Right)
	require.Empty(t, planar.IntersectRayCircle(miss, c))

	// Pointing away: none.
	away := planar.AxisRay(planar.Pt[cont](0.0, 0.0), planar.Left)
	require.Empty(t, planar.IntersectRayCircle(away, c))
}

func TestIntersectRayCircleOriginInside(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 2.0)

	inside := planar.AxisRay(planar.Pt[cont](1.0, 0.0), planar.Right)
	hits := planar.IntersectRayCircle(inside, c)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(planar.Pt[cont](2.0, 0.0)))

	center := planar.AxisRay(planar.Pt[cont](0.0, 0.0), planar.Up)
	hits = planar.IntersectRayCircle(center, c)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(planar.Pt[cont](0.0, 2.0)))
}

func TestIntersectLineCircle(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 2.0)

	// A line is not direction limited, so it exits both sides.
	l := planar.NewLine(planar.Pt[cont](1.0, 0.0), planar.Vec[cont](1.0, 0.0))
	hits := planar.IntersectLineCircle(l, c)
	require.Len(t, hits, 2)
	require.True(t, hits[0].Near(planar.Pt[cont](-2.0, 0.0)))
	require.True(t, hits[1].Near(planar.Pt[cont](2.0, 0.0)))

	miss := planar.NewLine(planar.Pt[cont](0.0, 3.0), planar.Vec[cont](1.0, 0.0))
	require.Empty(t, planar.IntersectLineCircle(miss, c))
}

func TestIntersectCircles(t *testing.T) {
	a := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 2.0)
	b := planar.CircleOf(planar.Pt[cont](3.0, 0.0), 2.0)

	hits := planar.IntersectCircles(a, b)
	require.Len(t, hits, 2)
	for _, p := range hits {
		require.InDelta(t, 1.5, p.X, 1e-10)
		require.InDelta(t, 2, a.Center.DistanceTo(p), 1e-10)
		require.InDelta(t, 2, b.Center.DistanceTo(p), 1e-10)
	}

	// Externally tangent.
	tang := planar.CircleOf(planar.Pt[cont](4.0, 0.0), 2.0)
	hits = planar.IntersectCircles(a, tang)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(planar.Pt[cont](2.0, 0.0)))

	// Separate and concentric.
	require.Empty(t, planar.IntersectCircles(a, planar.CircleOf(planar.Pt[cont](10.0, 0.0), 2.0)))
	require.Empty(t, planar.IntersectCircles(a, planar.CircleOf(planar.Pt[cont](0.0, 0.0), 1.0)))
}

func TestIntersectRayEllipse(t *testing.T) {
	e := planar.EllipseOf(planar.Pt[cont](0.0, 0.0), 2.0, 1.0, angle.Zero[float64]())

	through := planar.AxisRay(planar.Pt[cont](-5.0, 0.0), planar.Right)
	hits := planar.IntersectRayEllipse(through, e)
	require.Len(t, hits, 2)
	require.True(t, hits[0].Near(planar.Pt[cont](-2.0, 0.0)))
	require.True(t, hits[1].Near(planar.Pt[cont](2.0, 0.0)))

	tangent := planar.AxisRay(planar.Pt[cont](-5.0, 1.0), planar.Right)
	hits = planar.IntersectRayEllipse(tangent, e)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(planar.Pt[cont](0.0, 1.0)))

	require.Empty(t, planar.IntersectRayEllipse(planar.AxisRay(planar.Pt[cont](-5.0, 2.0), planar.Right), e))

	// Rotating the ellipse a quarter turn swaps its extents.
	rot := e.Rotated(angle.HalfPi[float64]())
	vert := planar.AxisRay(planar.Pt[cont](0.0, -5.0), planar.Up)
	hits = planar.IntersectRayEllipse(vert, rot)
	require.Len(t, hits, 2)
	require.True(t, hits[0].Near(planar.Pt[cont](0.0, -2.0)))
	require.True(t, hits[1].Near(planar.Pt[cont](0.0, 2.0)))
}

func TestRayContains(t *testing.T) {
	r := planar.RayThrough(planar.Pt[cont](1.0, 1.0), planar.Pt[cont](2.0, 2.0))
	require.True(t, r.Contains(planar.Pt[cont](1.0, 1.0)))
	require.True(t, r.Contains(planar.Pt[cont](3.0, 3.0)))
	require.False(t, r.Contains(planar.Pt[cont](0.0, 0.0)))
	require.False(t, r.Contains(planar.Pt[cont](2.0, 3.0)))

	// A zero direction cannot be normalized.
	zero := planar.NewRay(planar.Pt[cont](0.0, 0.0), planar.Vec[cont](0.0, 0.0))
	_, ok := zero.Unit()
	require.False(t, ok)
}
