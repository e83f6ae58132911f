package angle_test

import (
	"math"
	"testing"

	"deedles.dev/planar/angle"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	require.InDelta(t, math.Pi, angle.Deg(180.0).Radians(), 1e-12)
	require.InDelta(t, 180, angle.Rad(math.Pi).Degrees(), 1e-12)
	require.Equal(t, 0.0, angle.Zero[float64]().Radians())
	require.Equal(t, math.Pi/2, angle.HalfPi[float64]().Radians())
	require.Equal(t, math.Pi, angle.Pi[float64]().Radians())
	require.Equal(t, 2*math.Pi, angle.FullCircle[float64]().Radians())
}

func TestTrig(t *testing.T) {
	require.InDelta(t, 1, angle.HalfPi[float64]().Sin(), 1e-12)
	require.InDelta(t, 0, angle.HalfPi[float64]().Cos(), 1e-12)
	require.InDelta(t, -1, angle.Pi[float64]().Cos(), 1e-12)

	s, c := angle.Zero[float64]().Sincos()
	require.Equal(t, 0.0, s)
	require.Equal(t, 1.0, c)

	require.InDelta(t, 1, angle.Deg(45.0).Tan(), 1e-12)
}

func TestArithmetic(t *testing.T) {
	a := angle.Deg(90.0).Add(angle.Deg(45.0))
	require.InDelta(t, 135, a.Degrees(), 1e-12)

	b := a.Sub(angle.Deg(180.0))
	require.InDelta(t, -45, b.Degrees(), 1e-12)

	require.InDelta(t, 270, angle.Deg(90.0).Scaled(3).Degrees(), 1e-12)
	require.InDelta(t, -90, angle.Deg(90.0).Neg().Degrees(), 1e-12)
}

func TestNormalized(t *testing.T) {
	n := angle.Deg(-90.0).Normalized()
	require.InDelta(t, 270, n.Degrees(), 1e-12)

	n = angle.Deg(725.0).Normalized()
	require.InDelta(t, 5, n.Degrees(), 1e-10)

	n = angle.Zero[float64]().Normalized()
	require.Equal(t, 0.0, n.Radians())
}

func TestFloat32(t *testing.T) {
	require.InDelta(t, 1, angle.HalfPi[float32]().Sin(), 1e-6)
	require.InDelta(t, 180, angle.Pi[float32]().Degrees(), 1e-4)
}
