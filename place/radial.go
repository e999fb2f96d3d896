package place

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cloner/core"
)

// Radial places Count instances around the arc [StartAngle, EndAngle] on
// the chosen plane. The angle for instance i is start + (end-start)·i/count;
// the divide-by-count convention means a full 360° ring leaves a one-step
// gap between the last instance and the start instead of doubling up.
//
// Spiral: height (along the plane normal) and radius grow linearly with
// the revolutions swept so far, at Pitch and Growth per revolution.
// AlignToRadius points each instance's outward axis away from center;
// RotationStep is added on top.
func Radial(o RadialOptions) []core.Instance {
	if o.Count <= 0 {
		return nil
	}

	start := o.StartAngle * core.RadPerDeg
	end := o.EndAngle * core.RadPerDeg
	step := scaleStep(o.ScaleStep)

	out := make([]core.Instance, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		fi := float64(i)
		theta := start + (end-start)*fi/float64(o.Count)
		rev := (theta - start) / (2 * math.Pi)

		radius := o.Radius + o.Growth*rev
		height := o.Pitch * rev
		cos, sin := math.Cos(theta), math.Sin(theta)

		var pos core.Vec3
		switch o.Plane {
		case core.PlaneXZ:
			pos = core.Vec3{X: radius * cos, Y: height, Z: radius * sin}
		case core.PlaneYZ:
			pos = core.Vec3{X: height, Y: radius * cos, Z: radius * sin}
		default: // PlaneXY
			pos = core.Vec3{X: radius * cos, Y: radius * sin, Z: height}
		}

		var rot core.Vec3
		if o.AlignToRadius {
			switch o.Plane.Normal() {
			case core.AxisX:
				rot.X = theta
			case core.AxisY:
				rot.Y = theta
			default:
				rot.Z = theta
			}
		}
		rot = rot.Add(o.RotationStep.Scale(fi * core.RadPerDeg))

		out = append(out, core.Instance{
			ID:       fmt.Sprintf("%s-%d", ModeRadial, i),
			Index:    i,
			Position: o.Center.Add(pos),
			Rotation: rot,
			Scale:    core.Uniform(math.Pow(step, fi)),
			Visible:  true,
		})
	}
	return out
}
