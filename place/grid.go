package place

import (
	"fmt"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/prand"
)

// gridJitterSeed is fixed on purpose: grid variation is reproducible for
// the same options without a caller-supplied seed, unlike Scatter. Known
// asymmetry inherited from the editor's behavior.
const gridJitterSeed = 12345

// Grid places CountX×CountY×CountZ instances on a rectilinear lattice
// with per-axis Spacing, iterating x-outer, y-middle, z-inner. Masked-out
// lattice points are skipped, so Index is dense over emitted instances,
// not over the full lattice.
//
// Shape masks measure the position normalized by the lattice half-extents
// (always about the lattice center): sphere drops points with Euclidean
// norm > 1, cylinder applies the same test on X/Z only. Predicate, when
// set, additionally filters by integer lattice indices.
func Grid(o GridOptions) []core.Instance {
	if o.CountX <= 0 || o.CountY <= 0 || o.CountZ <= 0 {
		return nil
	}

	extent := core.Vec3{
		X: o.Spacing.X * float64(o.CountX-1),
		Y: o.Spacing.Y * float64(o.CountY-1),
		Z: o.Spacing.Z * float64(o.CountZ-1),
	}
	half := extent.Scale(0.5)
	rng := prand.New(gridJitterSeed) // one stream shared by the whole grid

	out := make([]core.Instance, 0, o.CountX*o.CountY*o.CountZ)
	index := 0
	for x := 0; x < o.CountX; x++ {
		for y := 0; y < o.CountY; y++ {
			for z := 0; z < o.CountZ; z++ {
				raw := core.Vec3{
					X: o.Spacing.X * float64(x),
					Y: o.Spacing.Y * float64(y),
					Z: o.Spacing.Z * float64(z),
				}
				centered := raw.Sub(half)

				if !insideShape(o.Shape, centered, half) {
					continue
				}
				if o.Predicate != nil && !o.Predicate(x, y, z) {
					continue
				}

				scale := 1.0
				if o.ScaleVariation > 0 {
					scale += rng.Range(-o.ScaleVariation, o.ScaleVariation)
				}
				var rot core.Vec3
				if o.RotationVariation > 0 {
					r := o.RotationVariation
					rot = core.Vec3{
						X: rng.Range(-r, r) * core.RadPerDeg,
						Y: rng.Range(-r, r) * core.RadPerDeg,
						Z: rng.Range(-r, r) * core.RadPerDeg,
					}
				}

				pos := raw
				if o.Centered {
					pos = centered
				}
				out = append(out, core.Instance{
					ID:       fmt.Sprintf("%s-%d", ModeGrid, index),
					Index:    index,
					Position: pos,
					Rotation: rot,
					Scale:    core.Uniform(scale),
					Visible:  true,
				})
				index++
			}
		}
	}
	return out
}

// insideShape reports whether the centered lattice position passes the
// shape mask. Axes with zero half-extent contribute nothing, so flat
// grids are not masked away entirely.
func insideShape(shape Shape, centered, half core.Vec3) bool {
	if shape == ShapeBox {
		return true
	}
	nx, ny, nz := 0.0, 0.0, 0.0
	if half.X > 0 {
		nx = centered.X / half.X
	}
	if half.Y > 0 {
		ny = centered.Y / half.Y
	}
	if half.Z > 0 {
		nz = centered.Z / half.Z
	}
	switch shape {
	case ShapeCylinder:
		return nx*nx+nz*nz <= 1
	default: // ShapeSphere
		return nx*nx+ny*ny+nz*nz <= 1
	}
}
