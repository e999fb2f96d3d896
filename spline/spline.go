package spline

import (
	"github.com/katalvlaran/cloner/core"
)

// Point evaluates the poly-line points at parameter t in [0,1] (clamped)
// with the given curve options. With no points it returns the zero
// vector; with one point, that point.
func Point(points []core.Vec3, t float64, opts Options) core.Vec3 {
	n := len(points)
	if n == 0 {
		return core.Vec3{}
	}
	if n == 1 {
		return points[0]
	}
	t = clamp01(t)

	i, u := segment(t, n)
	if opts.Curve == CurveCatmullRom {
		return catmullRom(points, i, u, opts.Tension)
	}
	// CurveLinear, and CurveBezier via its linear fallback.
	return points[i].Lerp(points[i+1], u)
}

// segment maps global parameter t onto segment index i of n-1 segments
// and the local parameter u within it. t=1 lands on the last segment
// with u=1 so the final control point is returned exactly.
func segment(t float64, n int) (i int, u float64) {
	f := t * float64(n-1)
	i = int(f)
	if i > n-2 {
		i = n - 2
	}
	return i, f - float64(i)
}

// catmullRom blends segment i at local parameter u with tension τ,
// clamping the 4-point window to the poly-line's end control points.
func catmullRom(points []core.Vec3, i int, u, tension float64) core.Vec3 {
	if tension == 0 {
		tension = DefaultTension
	}
	n := len(points)
	p0 := points[clampIndex(i-1, n)]
	p1 := points[i]
	p2 := points[i+1]
	p3 := points[clampIndex(i+2, n)]

	m1 := p2.Sub(p0).Scale(tension)
	m2 := p3.Sub(p1).Scale(tension)

	uu := u * u
	uuu := uu * u
	h00 := 2*uuu - 3*uu + 1
	h10 := uuu - 2*uu + u
	h01 := -2*uuu + 3*uu
	h11 := uuu - uu

	return p1.Scale(h00).
		Add(m1.Scale(h10)).
		Add(p2.Scale(h01)).
		Add(m2.Scale(h11))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
