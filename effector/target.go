package effector

import "github.com/katalvlaran/cloner/core"

// Target pulls instances toward a fixed point (or pushes them away when
// Attraction is negative). Influence fades linearly from full at the
// point to zero at InfluenceRadius; instances outside the radius, or
// sitting exactly on the point, are untouched.
type Target struct {
	Base

	// Point is the attractor position.
	Point core.Vec3

	// InfluenceRadius bounds the effect; non-positive disables the
	// effector.
	InfluenceRadius float64

	// Attraction is the displacement magnitude at full influence.
	// Negative values repel.
	Attraction float64
}

// Kind returns KindTarget.
func (t Target) Kind() Kind { return KindTarget }

// Apply moves one instance along the direction to the point.
func (t Target) Apply(inst core.Instance) core.Instance {
	if !t.Affects.Position || t.InfluenceRadius <= 0 {
		return inst
	}
	dir := t.Point.Sub(inst.Position)
	dist := dir.Length()
	if dist == 0 || dist > t.InfluenceRadius {
		return inst
	}
	influence := (1 - dist/t.InfluenceRadius) * t.Strength
	inst.Position = inst.Position.Add(dir.Scale(1 / dist).Scale(t.Attraction * influence))
	return inst
}
