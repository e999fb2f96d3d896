package place

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/spline"
)

// Spline places Count instances along a poly-line curve, sampling at
// t = i/(count-1) (t=0 when count is 1). AlignToCurve orients each
// instance by the curve tangent (pitch and yaw; roll stays zero).
func Spline(o SplineOptions) []core.Instance {
	if o.Count <= 0 {
		return nil
	}

	opts := spline.Options{Curve: o.Curve, Tension: o.Tension}
	step := scaleStep(o.ScaleStep)

	out := make([]core.Instance, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		t := 0.0
		if o.Count > 1 {
			t = float64(i) / float64(o.Count-1)
		}

		var rot core.Vec3
		if o.AlignToCurve {
			rot = spline.RotationFromTangent(spline.Tangent(o.Points, t, opts))
		}

		out = append(out, core.Instance{
			ID:       fmt.Sprintf("%s-%d", ModeSpline, i),
			Index:    i,
			Position: spline.Point(o.Points, t, opts),
			Rotation: rot,
			Scale:    core.Uniform(math.Pow(step, float64(i))),
			Visible:  true,
		})
	}
	return out
}
