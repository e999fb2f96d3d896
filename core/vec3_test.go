package core_test

import (
	"testing"

	"github.com/katalvlaran/cloner/core"
	"github.com/stretchr/testify/assert"
)

// TestVec3_BasicOps verifies the arithmetic building blocks the
// generators and effectors are written against.
func TestVec3_BasicOps(t *testing.T) {
	a := core.Vec3{X: 1, Y: 2, Z: 3}
	b := core.Vec3{X: 4, Y: -2, Z: 0.5}

	assert.Equal(t, core.Vec3{X: 5, Y: 0, Z: 3.5}, a.Add(b), "Add is component-wise")
	assert.Equal(t, core.Vec3{X: -3, Y: 4, Z: 2.5}, a.Sub(b), "Sub is component-wise")
	assert.Equal(t, core.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2), "Scale multiplies every component")
	assert.Equal(t, core.Vec3{X: 4, Y: -4, Z: 1.5}, a.Mul(b), "Mul is the Hadamard product")
	assert.Equal(t, 1.5, a.Dot(b), "Dot product")
	assert.Equal(t, 14.0, a.LengthSq(), "LengthSq")
}

// TestVec3_NormalizeZero ensures the zero vector survives Normalize
// unchanged — the engine's "skip normalization" degenerate rule.
func TestVec3_NormalizeZero(t *testing.T) {
	assert.Equal(t, core.Vec3{}, core.Vec3{}.Normalize(), "zero vector must pass through")
}

// TestVec3_NormalizeUnit checks Normalize yields a unit-length vector.
func TestVec3_NormalizeUnit(t *testing.T) {
	n := core.Vec3{X: 3, Y: 4, Z: 0}.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12, "normalized vector has unit length")
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

// TestVec3_Lerp checks endpoint and midpoint interpolation.
func TestVec3_Lerp(t *testing.T) {
	a := core.Vec3{X: 0, Y: 0, Z: 0}
	b := core.Vec3{X: 2, Y: -4, Z: 6}

	assert.Equal(t, a, a.Lerp(b, 0), "t=0 returns the start")
	assert.Equal(t, b, a.Lerp(b, 1), "t=1 returns the end")
	assert.Equal(t, core.Vec3{X: 1, Y: -2, Z: 3}, a.Lerp(b, 0.5), "t=0.5 is the midpoint")
}

// TestVec3_Chebyshev verifies the max-abs-component metric used by the
// box falloff.
func TestVec3_Chebyshev(t *testing.T) {
	assert.Equal(t, 7.0, core.Vec3{X: -7, Y: 2, Z: 3}.Chebyshev())
	assert.Equal(t, 9.0, core.Vec3{X: 1, Y: 2, Z: -9}.Chebyshev())
	assert.Equal(t, 0.0, core.Vec3{}.Chebyshev())
}

// TestAxis_Vec checks the principal-axis unit vectors.
func TestAxis_Vec(t *testing.T) {
	assert.Equal(t, core.Vec3{X: 1}, core.AxisX.Vec())
	assert.Equal(t, core.Vec3{Y: 1}, core.AxisY.Vec())
	assert.Equal(t, core.Vec3{Z: 1}, core.AxisZ.Vec())
}

// TestPlane_Normal checks plane→normal-axis mapping, which drives both
// radial alignment and the cylindrical falloff metric.
func TestPlane_Normal(t *testing.T) {
	assert.Equal(t, core.AxisZ, core.PlaneXY.Normal())
	assert.Equal(t, core.AxisY, core.PlaneXZ.Normal())
	assert.Equal(t, core.AxisX, core.PlaneYZ.Normal())
}
