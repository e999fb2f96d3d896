package spline_test

import (
	"testing"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/spline"
	"github.com/stretchr/testify/assert"
)

var zigzag = []core.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 2, Y: 1, Z: 0},
	{X: 4, Y: -1, Z: 2},
	{X: 6, Y: 0, Z: 3},
}

// TestPoint_Degenerates covers the no-point and single-point fallbacks.
func TestPoint_Degenerates(t *testing.T) {
	opts := spline.Options{Curve: spline.CurveCatmullRom}
	assert.Equal(t, core.Vec3{}, spline.Point(nil, 0.5, opts), "no points yields the origin")

	single := []core.Vec3{{X: 7, Y: 8, Z: 9}}
	assert.Equal(t, single[0], spline.Point(single, 0.5, opts), "one point is returned unchanged")
}

// TestPoint_ClampsParameter checks t outside [0,1] clamps to the ends.
func TestPoint_ClampsParameter(t *testing.T) {
	opts := spline.Options{Curve: spline.CurveLinear}
	assert.Equal(t, zigzag[0], spline.Point(zigzag, -3, opts))
	assert.Equal(t, zigzag[3], spline.Point(zigzag, 42, opts))
}

// TestPoint_LinearMidSegment verifies straight-segment interpolation.
func TestPoint_LinearMidSegment(t *testing.T) {
	pts := []core.Vec3{{X: 0}, {X: 2}, {X: 4}}
	got := spline.Point(pts, 0.25, spline.Options{Curve: spline.CurveLinear})
	assert.Equal(t, core.Vec3{X: 1}, got, "t=0.25 of two segments is halfway along the first")
}

// TestPoint_CatmullRomEndpointClamp verifies t=0 and t=1 return exactly
// the first and last control points regardless of tension.
func TestPoint_CatmullRomEndpointClamp(t *testing.T) {
	for _, tension := range []float64{0, 0.25, 0.5, 1, 2} {
		opts := spline.Options{Curve: spline.CurveCatmullRom, Tension: tension}
		assert.Equal(t, zigzag[0], spline.Point(zigzag, 0, opts), "tension %v start", tension)
		assert.Equal(t, zigzag[3], spline.Point(zigzag, 1, opts), "tension %v end", tension)
	}
}

// TestPoint_CatmullRomPassesThroughControls checks the curve hits every
// interior control point at its uniform parameter.
func TestPoint_CatmullRomPassesThroughControls(t *testing.T) {
	opts := spline.Options{Curve: spline.CurveCatmullRom, Tension: 0.5}
	for i, want := range zigzag {
		u := float64(i) / float64(len(zigzag)-1)
		got := spline.Point(zigzag, u, opts)
		assert.InDelta(t, want.X, got.X, 1e-12, "control %d X", i)
		assert.InDelta(t, want.Y, got.Y, 1e-12, "control %d Y", i)
		assert.InDelta(t, want.Z, got.Z, 1e-12, "control %d Z", i)
	}
}

// TestPoint_CatmullRomStaysOnCollinearLine checks collinear control
// points keep the curve on their line for any tension.
func TestPoint_CatmullRomStaysOnCollinearLine(t *testing.T) {
	line := []core.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	opts := spline.Options{Curve: spline.CurveCatmullRom, Tension: 0.5}
	for _, u := range []float64{0.1, 0.3, 0.62, 0.9} {
		p := spline.Point(line, u, opts)
		assert.Zero(t, p.Y, "t=%v drifts off the line in Y", u)
		assert.Zero(t, p.Z, "t=%v drifts off the line in Z", u)
	}
}

// TestPoint_BezierFallsBackToLinear pins the documented simplification:
// bezier evaluates through the linear algorithm.
func TestPoint_BezierFallsBackToLinear(t *testing.T) {
	for _, u := range []float64{0, 0.2, 0.5, 0.77, 1} {
		lin := spline.Point(zigzag, u, spline.Options{Curve: spline.CurveLinear})
		bez := spline.Point(zigzag, u, spline.Options{Curve: spline.CurveBezier})
		assert.Equal(t, lin, bez, "t=%v", u)
	}
}

// TestPoint_ZeroTensionDefaults checks Tension=0 means DefaultTension,
// not "no tangents".
func TestPoint_ZeroTensionDefaults(t *testing.T) {
	implicit := spline.Options{Curve: spline.CurveCatmullRom}
	explicit := spline.Options{Curve: spline.CurveCatmullRom, Tension: spline.DefaultTension}
	for _, u := range []float64{0.15, 0.5, 0.85} {
		assert.Equal(t,
			spline.Point(zigzag, u, explicit),
			spline.Point(zigzag, u, implicit), "t=%v", u)
	}
}
