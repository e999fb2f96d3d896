package effector

import (
	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/prand"
)

// Random jitters each instance with its own deterministic stream seeded
// as Seed+Index, so the result does not depend on how many instances
// exist or in what order they are processed.
//
// Draw order within a stream is fixed: position (x, y, z), then rotation
// (x, y, z), then scale — and draws happen only for fields the Affects
// mask enables, so toggling one flag never shifts another field's values
// between runs with the same configuration.
type Random struct {
	Base

	Seed int64

	// PositionRange is the half-extent of the per-axis position jitter;
	// each axis moves by ±PositionRange × Strength.
	PositionRange core.Vec3

	// RotationRange is the half-extent of the per-axis rotation jitter in
	// degrees, applied as ±RotationRange × Strength.
	RotationRange core.Vec3

	// ScaleMin/ScaleMax bound the scale multiplier draw. ScaleMax <= 0
	// disables scale jitter. The drawn multiplier folds into the current
	// scale and is deliberately not attenuated by Strength.
	ScaleMin float64
	ScaleMax float64

	// UniformScale draws one factor for all three axes instead of three
	// independent ones.
	UniformScale bool
}

// Kind returns KindRandom.
func (r Random) Kind() Kind { return KindRandom }

// Apply jitters one instance from its private stream.
func (r Random) Apply(inst core.Instance) core.Instance {
	rng := prand.New(r.Seed + int64(inst.Index))
	if r.Affects.Position {
		inst.Position = inst.Position.Add(core.Vec3{
			X: rng.Range(-r.PositionRange.X, r.PositionRange.X) * r.Strength,
			Y: rng.Range(-r.PositionRange.Y, r.PositionRange.Y) * r.Strength,
			Z: rng.Range(-r.PositionRange.Z, r.PositionRange.Z) * r.Strength,
		})
	}
	if r.Affects.Rotation {
		inst.Rotation = inst.Rotation.Add(core.Vec3{
			X: rng.Range(-r.RotationRange.X, r.RotationRange.X) * r.Strength * core.RadPerDeg,
			Y: rng.Range(-r.RotationRange.Y, r.RotationRange.Y) * r.Strength * core.RadPerDeg,
			Z: rng.Range(-r.RotationRange.Z, r.RotationRange.Z) * r.Strength * core.RadPerDeg,
		})
	}
	if r.Affects.Scale && r.ScaleMax > 0 {
		if r.UniformScale {
			inst.Scale = inst.Scale.Scale(rng.Range(r.ScaleMin, r.ScaleMax))
		} else {
			inst.Scale = inst.Scale.Mul(core.Vec3{
				X: rng.Range(r.ScaleMin, r.ScaleMax),
				Y: rng.Range(r.ScaleMin, r.ScaleMax),
				Z: rng.Range(r.ScaleMin, r.ScaleMax),
			})
		}
	}
	return inst
}
