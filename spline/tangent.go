package spline

import (
	"math"

	"github.com/katalvlaran/cloner/core"
)

// tangentEpsilon is the half-width of the symmetric finite difference
// used to estimate the direction of travel.
const tangentEpsilon = 0.001

// Tangent estimates the unit direction of travel along the curve at t by
// a small symmetric finite difference, with both sample parameters
// clamped to [0,1]. A degenerate (zero-length) difference returns the
// zero vector; callers treat that as "no orientation".
func Tangent(points []core.Vec3, t float64, opts Options) core.Vec3 {
	a := Point(points, clamp01(t-tangentEpsilon), opts)
	b := Point(points, clamp01(t+tangentEpsilon), opts)
	d := b.Sub(a)
	if d.IsZero() {
		return core.Vec3{}
	}
	return d.Normalize()
}

// RotationFromTangent derives a two-axis Euler rotation (pitch, yaw) that
// faces along the tangent direction: yaw from atan2(tx,tz), pitch from
// atan2(-ty, √(tx²+tz²)). Roll is always zero.
func RotationFromTangent(tangent core.Vec3) core.Vec3 {
	if tangent.IsZero() {
		return core.Vec3{}
	}
	yaw := math.Atan2(tangent.X, tangent.Z)
	pitch := math.Atan2(-tangent.Y, math.Sqrt(tangent.X*tangent.X+tangent.Z*tangent.Z))
	return core.Vec3{X: pitch, Y: yaw}
}
