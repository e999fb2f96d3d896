package place

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cloner/blend"
	"github.com/katalvlaran/cloner/core"
)

// Linear places Count instances along a principal axis or a custom
// direction, Spacing apart, starting at Offset.
//
// Scale progression: instance i gets uniform scale ScaleStepⁱ.
// Rotation progression: RotationStep (degrees per axis) × i.
// Color progression: ColorStart→ColorEnd at t = i/(count-1).
func Linear(o LinearOptions) []core.Instance {
	if o.Count <= 0 {
		return nil
	}

	dir := o.Axis.Vec()
	if !o.Direction.IsZero() {
		dir = o.Direction.Normalize()
	}
	step := scaleStep(o.ScaleStep)
	colorize := o.ColorStart != "" && o.ColorEnd != ""

	out := make([]core.Instance, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		fi := float64(i)

		color := ""
		if colorize {
			t := 0.0
			if o.Count > 1 {
				t = fi / float64(o.Count-1)
			}
			color = blend.Interpolate(o.ColorStart, o.ColorEnd, t, o.ColorMode)
		}

		out = append(out, core.Instance{
			ID:       fmt.Sprintf("%s-%d", ModeLinear, i),
			Index:    i,
			Position: o.Offset.Add(dir.Scale(o.Spacing * fi)),
			Rotation: o.RotationStep.Scale(fi * core.RadPerDeg),
			Scale:    core.Uniform(math.Pow(step, fi)),
			Color:    color,
			Visible:  true,
		})
	}
	return out
}
