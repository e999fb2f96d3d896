package effector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/effector"
)

func baseScale() core.Instance {
	return core.Instance{Scale: core.Uniform(1), Visible: true}
}

// TestFalloff_CenterFullEffect verifies the center gets the full effect:
// scale halves and the instance is hidden (factor 1 ≥ 0.9).
func TestFalloff_CenterFullEffect(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true, Visibility: true}),
		Radius: 10,
	}
	got := f.Apply(baseScale())
	assert.InDelta(t, 0.5, got.Scale.X, 1e-12, "scale should halve at factor 1")
	assert.False(t, got.Visible, "center instance should be hidden")
}

// TestFalloff_BeyondRadiusUntouched verifies instances past the radius
// are left exactly as they came in.
func TestFalloff_BeyondRadiusUntouched(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true, Visibility: true}),
		Radius: 5,
	}
	in := baseScale()
	in.Position = core.Vec3{X: 50}
	got := f.Apply(in)
	assert.Equal(t, in, got)
}

// TestFalloff_SmoothMonotonic verifies the smooth curve decreases
// influence strictly with distance inside the radius: scale grows back
// toward 1 as instances sit farther out.
func TestFalloff_SmoothMonotonic(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 10,
		Curve:  effector.CurveSmooth,
	}
	prev := -1.0
	for _, d := range []float64{0, 2, 4, 6, 8, 9.5} {
		in := baseScale()
		in.Position = core.Vec3{X: d}
		got := f.Apply(in)
		require.Greater(t, got.Scale.X, prev, "influence must fall as distance grows (d=%g)", d)
		prev = got.Scale.X
	}
}

// TestFalloff_Invert flips the gradient: the center is untouched, the
// rim gets the full effect.
func TestFalloff_Invert(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 10,
		Invert: true,
	}
	center := f.Apply(baseScale())
	assert.InDelta(t, 1.0, center.Scale.X, 1e-12, "inverted falloff leaves the center alone")

	rim := baseScale()
	rim.Position = core.Vec3{X: 10}
	got := f.Apply(rim)
	assert.InDelta(t, 0.5, got.Scale.X, 1e-12, "inverted falloff is strongest at the rim")
}

// TestFalloff_CylindricalIgnoresHeight verifies a Y-axis cylinder
// measures only XZ distance, so height above the center changes nothing.
func TestFalloff_CylindricalIgnoresHeight(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 10,
		Metric: effector.MetricCylindrical,
		Axis:   core.AxisY,
	}
	high := baseScale()
	high.Position = core.Vec3{Y: 100}
	got := f.Apply(high)
	assert.InDelta(t, 0.5, got.Scale.X, 1e-12, "on the cylinder axis the effect is full regardless of height")
}

// TestFalloff_CylindricalAxis verifies each axis value drops its own
// component from the distance: an instance far out along the cylinder
// axis takes the full effect, while the same offset perpendicular to the
// axis puts it out of range.
func TestFalloff_CylindricalAxis(t *testing.T) {
	cases := []struct {
		name          string
		axis          core.Axis
		along, across core.Vec3
	}{
		{"x", core.AxisX, core.Vec3{X: 100}, core.Vec3{Y: 100}},
		{"y", core.AxisY, core.Vec3{Y: 100}, core.Vec3{Z: 100}},
		{"z", core.AxisZ, core.Vec3{Z: 100}, core.Vec3{X: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := effector.Falloff{
				Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
				Radius: 5,
				Metric: effector.MetricCylindrical,
				Axis:   tc.axis,
			}
			on := baseScale()
			on.Position = tc.along
			got := f.Apply(on)
			assert.InDelta(t, 0.5, got.Scale.X, 1e-12, "offset along the axis must not count")

			off := baseScale()
			off.Position = tc.across
			assert.Equal(t, off, f.Apply(off), "offset across the axis must count in full")
		})
	}
}

// TestFalloff_BoxMetric verifies the box metric uses the dominant axis:
// a point at (9,1,1) with radius 10 sits at normalized distance 0.9.
func TestFalloff_BoxMetric(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 10,
		Metric: effector.MetricBox,
		Curve:  effector.CurveLinear,
	}
	in := baseScale()
	in.Position = core.Vec3{X: 9, Y: 1, Z: 1}
	got := f.Apply(in)
	// factor = 1 - 0.9 = 0.1 → scale = 1 - 0.05
	assert.InDelta(t, 0.95, got.Scale.X, 1e-12)
}

// TestFalloff_SharpVsLinear verifies the sharp curve concentrates
// influence near the center: at half radius, sharp influence (0.25) is
// below linear influence (0.5).
func TestFalloff_SharpVsLinear(t *testing.T) {
	in := baseScale()
	in.Position = core.Vec3{X: 5}
	affects := effector.Affects{Scale: true}

	sharp := effector.Falloff{Base: effector.DefaultBase("s", "", affects), Radius: 10, Curve: effector.CurveSharp}
	linear := effector.Falloff{Base: effector.DefaultBase("l", "", affects), Radius: 10, Curve: effector.CurveLinear}

	assert.InDelta(t, 1-0.25*0.5, sharp.Apply(in).Scale.X, 1e-12)
	assert.InDelta(t, 1-0.5*0.5, linear.Apply(in).Scale.X, 1e-12)
}

// TestFalloff_ZeroRadiusNoOp verifies a non-positive radius disables the
// effector instead of dividing by zero.
func TestFalloff_ZeroRadiusNoOp(t *testing.T) {
	f := effector.Falloff{
		Base: effector.DefaultBase("f", "falloff", effector.Affects{Scale: true, Visibility: true}),
	}
	in := baseScale()
	assert.Equal(t, in, f.Apply(in))
}

// TestFalloff_StrengthScales verifies Strength attenuates the factor
// linearly.
func TestFalloff_StrengthScales(t *testing.T) {
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 10,
	}
	f.Strength = 0.5
	got := f.Apply(baseScale())
	assert.InDelta(t, 0.75, got.Scale.X, 1e-12, "half strength halves the center factor")
}
