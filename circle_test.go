package planar_test

import (
	"math"
	"testing"

	"deedles.dev/planar"
	"deedles.dev/planar/angle"
	"github.com/stretchr/testify/require"
)

func TestCircleMetrics(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](1.0, 2.0), 3.0)
	require.True(t, c.IsValid())
	require.Equal(t, 6.0, c.Diameter())
	require.InDelta(t, 9*math.Pi, c.Area(), 1e-10)
	require.InDelta(t, 6*math.Pi, c.Circumference(), 1e-10)
}

func TestCircleContains(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 2.0)
	require.True(t, c.Contains(planar.Pt[cont](1.0, 1.0)))
	require.True(t, c.Contains(planar.Pt[cont](2.0, 0.0)))
	require.False(t, c.Contains(planar.Pt[cont](2.0, 0.1)))
	require.True(t, c.OnBoundary(planar.Pt[cont](0.0, 2.0)))
	require.False(t, c.OnBoundary(planar.Pt[cont](0.0, 1.0)))
}

func TestCirclePointAt(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 1.0)
	p := c.PointAt(angle.HalfPi[float64]())
	require.InDelta(t, 0, p.X, 1e-10)
	require.InDelta(t, 1, p.Y, 1e-10)
}

func TestDegeneratePointCircle(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](1.0, 1.0), 0.0)
	require.True(t, c.IsValid())
	require.Equal(t, 0.0, c.Area())
	require.True(t, c.Contains(planar.Pt[cont](1.0, 1.0)))
	require.False(t, c.Contains(planar.Pt[cont](1.0, 1.1)))

	r := planar.AxisRay(planar.Pt[cont](-5.0, 1.0), planar.Right)
	hits := planar.IntersectRayCircle(r, c)
	require.Len(t, hits, 1)
	require.True(t, hits[0].Near(c.Center))
}

func TestCircleTransforms(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](1.0, 0.0), 1.0)
	moved := c.Translated(planar.Vec[cont](2.0, 3.0))
	require.Equal(t, planar.Pt[cont](3.0, 3.0), moved.Center)
	require.Equal(t, 1.0, moved.Radius)

	grown := c.Scaled(2.5)
	require.Equal(t, 2.5, grown.Radius)
	require.Equal(t, c.Center, grown.Center)

	spun := c.Rotated(angle.HalfPi[float64](), planar.Pt[cont](0.0, 0.0))
	require.InDelta(t, 0, spun.Center.X, 1e-10)
	require.InDelta(t, 1, spun.Center.Y, 1e-10)
}
