package place

import (
	"fmt"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/prand"
)

// Scatter places up to Count instances inside the bounding volume by
// rejection sampling, driven entirely by the caller-supplied Seed.
//
// With AvoidOverlap, a candidate within MinDistance of any already placed
// center is rejected (linear scan — O(n²) by design, fine for the low
// thousands). At most Count×10 attempts are made in total; when the
// budget runs out the returned list is shorter than requested, which is
// expected, not an error. Callers must treat the returned length as
// authoritative.
func Scatter(o ScatterOptions) []core.Instance {
	if o.Count <= 0 {
		return nil
	}

	rng := prand.New(o.Seed)
	budget := o.Count * scatterAttemptFactor

	positions := make([]core.Vec3, 0, o.Count)
	out := make([]core.Instance, 0, o.Count)

	for attempt := 0; attempt < budget && len(out) < o.Count; attempt++ {
		var p core.Vec3
		if o.Volume == VolumeSphere {
			// Sample the unit cube, reject outside the unit sphere,
			// then scale up. A rejected sample spends an attempt.
			p = core.Vec3{
				X: rng.Range(-1, 1),
				Y: rng.Range(-1, 1),
				Z: rng.Range(-1, 1),
			}
			if p.LengthSq() > 1 {
				continue
			}
			p = p.Scale(o.Radius)
		} else {
			p = core.Vec3{
				X: rng.Range(-o.Size.X/2, o.Size.X/2),
				Y: rng.Range(-o.Size.Y/2, o.Size.Y/2),
				Z: rng.Range(-o.Size.Z/2, o.Size.Z/2),
			}
		}
		p = p.Add(o.Center)

		if o.AvoidOverlap && o.MinDistance > 0 && tooClose(p, positions, o.MinDistance) {
			continue
		}

		scale := core.Uniform(1)
		if o.ScaleMax > 0 {
			if o.UniformScale {
				scale = core.Uniform(rng.Range(o.ScaleMin, o.ScaleMax))
			} else {
				scale = core.Vec3{
					X: rng.Range(o.ScaleMin, o.ScaleMax),
					Y: rng.Range(o.ScaleMin, o.ScaleMax),
					Z: rng.Range(o.ScaleMin, o.ScaleMax),
				}
			}
		}

		var rot core.Vec3
		if o.RandomRotation {
			rot = core.Vec3{X: rng.Angle(), Y: rng.Angle(), Z: rng.Angle()}
		}

		index := len(out)
		positions = append(positions, p)
		out = append(out, core.Instance{
			ID:       fmt.Sprintf("%s-%d", ModeScatter, index),
			Index:    index,
			Position: p,
			Rotation: rot,
			Scale:    scale,
			Visible:  true,
		})
	}
	return out
}

// tooClose reports whether p lies within minDistance of any placed center.
func tooClose(p core.Vec3, placed []core.Vec3, minDistance float64) bool {
	for _, q := range placed {
		if p.DistanceTo(q) < minDistance {
			return true
		}
	}
	return false
}
