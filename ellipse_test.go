package planar_test

import (
	"math"
	"testing"

	"deedles.dev/planar"
	"deedles.dev/planar/angle"
	"github.com/stretchr/testify/require"
)

func TestEllipseCircleDuality(t *testing.T) {
	c := planar.CircleOf(planar.Pt[cont](1.0, 2.0), 3.0)
	e := c.AsEllipse()

	require.True(t, e.IsCircle())
	require.InDelta(t, 0, e.Eccentricity(), 1e-10)
	require.Equal(t, 0.0, e.FocalDistance())

	f1, f2 := e.Foci()
	require.True(t, f1.Near(c.Center))
	require.True(t, f2.Near(c.Center))

	back, ok := e.AsCircle()
	require.True(t, ok)
	require.Equal(t, c, back)

	stretched := planar.EllipseOf(c.Center, 5.0, 3.0, angle.Zero[float64]())
	require.False(t, stretched.IsCircle())
	_, ok = stretched.AsCircle()
	require.False(t, ok)
}

func TestEllipseFociAndEccentricity(t *testing.T) {
	// a=5, b=3 gives the classic c=4, e=0.8.
	e := planar.EllipseOf(planar.Pt[cont](0.0, 0.0), 5.0, 3.0, angle.Zero[float64]())
	require.True(t, e.IsValid())
	require.InDelta(t, 0.8, e.Eccentricity(), 1e-10)
	require.InDelta(t, 4, e.FocalDistance(), 1e-10)

	f1, f2 := e.Foci()
	require.InDelta(t, 4, f1.X, 1e-10)
	require.InDelta(t, 0, f1.Y, 1e-10)
	require.InDelta(t, -4, f2.X, 1e-10)
	require.InDelta(t, 0, f2.Y, 1e-10)
}

func TestEllipseRotatedFoci(t *testing.T) {
	e := planar.EllipseOf(planar.Pt[cont](0.0, 0.0), 5.0, 3.0, angle.HalfPi[float64]())
	f1, f2 := e.Foci()
	require.InDelta(t, 0, f1.X, 1e-10)
	require.InDelta(t, 4, f1.Y, 1e-10)
	require.InDelta(t, 0, f2.X, 1e-10)
	require.InDelta(t, -4, f2.Y, 1e-10)
}

func TestEllipseParametricPoint(t *testing.T) {
	e := planar.EllipseOf(planar.Pt[cont](1.0, 1.0), 2.0, 1.0, angle.Zero[float64]())

	p := e.PointAt(angle.Zero[float64]())
	require.InDelta(t, 3, p.X, 1e-10)
	require.InDelta(t, 1, p.Y, 1e-10)

	p = e.PointAt(angle.HalfPi[float64]())
	require.InDelta(t, 1, p.X, 1e-10)
	require.InDelta(t, 2, p.Y, 1e-10)

	// The tangent at θ=0 points straight up the minor axis.
	v := e.TangentAt(angle.Zero[float64]())
	require.InDelta(t, 0, v.DX, 1e-10)
	require.InDelta(t, 1, v.DY, 1e-10)
}

func TestEllipseAreaAndPerimeter(t *testing.T) {
	e := planar.EllipseOf(planar.Pt[cont](0.0, 0.0), 3.0, 2.0, angle.Zero[float64]())
	require.InDelta(t, 6*math.Pi, e.Area(), 1e-10)

	// Ramanujan for a=3, b=2: π(15 − sqrt(11·9)).
	want := math.Pi * (15 - math.Sqrt(99))
	require.InDelta(t, want, e.Perimeter(), 1e-10)

	// Exactly 2πr for a circle.
	circ := planar.CircleOf(planar.Pt[cont](0.0, 0.0), 2.0).AsEllipse()
	require.Equal(t, 4*math.Pi, circ.Perimeter())
}

func TestEllipseContains(t *testing.T) {
	e := planar.EllipseOf(planar.Pt[cont](0.0, 0.0), 2.0, 1.0, angle.Zero[float64]())
	require.True(t, e.Contains(planar.Pt[cont](0.0, 0.0)))
	require.True(t, e.Contains(planar.Pt[cont](2.0, 0.0)))
	require.True(t, e.Contains(planar.Pt[cont](0.0, 1.0)))
	require.False(t, e.Contains(planar.Pt[cont](0.0, 1.1)))
	require.False(t, e.Contains(planar.Pt[cont](1.9, 0.9)))

	// Rotating a quarter turn swaps the roles of the axes.
	r := e.Rotated(angle.HalfPi[float64]())
	require.True(t, r.Contains(planar.Pt[cont](0.0, 2.0)))
	require.False(t, r.Contains(planar.Pt[cont](2.0, 0.0)))
}
