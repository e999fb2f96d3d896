package place

import (
	"github.com/katalvlaran/cloner/blend"
	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/spline"
)

// Mode discriminates the placement configuration union.
type Mode int

const (
	// ModeLinear places instances along a direction.
	ModeLinear Mode = iota
	// ModeRadial places instances around an arc on a coordinate plane.
	ModeRadial
	// ModeGrid places instances on a rectilinear lattice.
	ModeGrid
	// ModeScatter places instances randomly inside a bounding volume.
	ModeScatter
	// ModeSpline places instances along a poly-line curve.
	ModeSpline
	// ModeObject places instances on mesh features. Declared but not
	// implemented: mesh topology is owned by the external renderer.
	ModeObject
)

// String returns the lowercase mode name used as the instance-ID prefix
// and as the configuration discriminator.
func (m Mode) String() string {
	switch m {
	case ModeRadial:
		return "radial"
	case ModeGrid:
		return "grid"
	case ModeScatter:
		return "scatter"
	case ModeSpline:
		return "spline"
	case ModeObject:
		return "object"
	default:
		return "linear"
	}
}

// Config is the closed union of placement configurations. Exactly one
// mode is active per generation call; the facade dispatches on it.
type Config interface {
	// Mode returns the discriminator of this configuration variant.
	Mode() Mode
}

// Mode implementations; each options struct is one union variant.

func (LinearOptions) Mode() Mode  { return ModeLinear }
func (RadialOptions) Mode() Mode  { return ModeRadial }
func (GridOptions) Mode() Mode    { return ModeGrid }
func (ScatterOptions) Mode() Mode { return ModeScatter }
func (SplineOptions) Mode() Mode  { return ModeSpline }
func (ObjectOptions) Mode() Mode  { return ModeObject }

// LinearOptions configures the Linear generator.
type LinearOptions struct {
	// Count is the number of instances to place.
	Count int

	// Axis picks a principal direction; ignored when Direction is set.
	Axis core.Axis

	// Direction, when non-zero, overrides Axis and is normalized before
	// use. A zero Direction falls back to Axis.
	Direction core.Vec3

	// Spacing is the distance between consecutive instances.
	Spacing float64

	// Offset translates the whole row.
	Offset core.Vec3

	// ScaleStep s gives instance i the uniform scale sⁱ. Zero means
	// unset (uniform scale 1); s=1 is a no-op, s<1 shrinks with distance.
	ScaleStep float64

	// RotationStep is added per step, degrees per axis.
	RotationStep core.Vec3

	// ColorStart/ColorEnd, when both set, interpolate per instance at
	// t = i/(count-1) in ColorMode.
	ColorStart string
	ColorEnd   string
	ColorMode  blend.Mode
}

// RadialOptions configures the Radial generator.
type RadialOptions struct {
	// Count is the number of instances on the arc.
	Count int

	// Radius of the arc.
	Radius float64

	// StartAngle and EndAngle bound the sweep, in degrees. The angle for
	// instance i is start + (end-start)·i/count — dividing by count, not
	// count-1, so a 360° ring leaves a one-step gap before the start.
	StartAngle float64
	EndAngle   float64

	// Plane the arc lies on.
	Plane core.Plane

	// Center translates the whole arc.
	Center core.Vec3

	// Pitch lifts the arc along the plane normal per full revolution
	// swept; Growth widens the radius per full revolution. Both zero
	// means a flat, constant-radius arc.
	Pitch  float64
	Growth float64

	// AlignToRadius sets the plane-normal rotation axis to the instance
	// angle so each instance's outward axis points away from center.
	// RotationStep is added on top when both are set.
	AlignToRadius bool

	// RotationStep is added per step, degrees per axis.
	RotationStep core.Vec3

	// ScaleStep as in LinearOptions.
	ScaleStep float64
}

// Shape masks lattice points of the Grid generator.
type Shape int

const (
	// ShapeBox keeps every lattice point.
	ShapeBox Shape = iota
	// ShapeSphere drops points whose half-extent-normalized position has
	// Euclidean norm > 1.
	ShapeSphere
	// ShapeCylinder applies the sphere test on the X/Z components only;
	// Y is the cylinder's axis.
	ShapeCylinder
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	default:
		return "box"
	}
}

// GridOptions configures the Grid generator.
type GridOptions struct {
	// CountX, CountY, CountZ are the lattice dimensions; any value ≤ 0
	// yields an empty list.
	CountX, CountY, CountZ int

	// Spacing is the per-axis distance between neighboring points.
	Spacing core.Vec3

	// Centered subtracts half the total extent per axis so the lattice
	// is centered at the origin.
	Centered bool

	// Shape masks lattice points; masks always measure against the
	// lattice center regardless of Centered.
	Shape Shape

	// Predicate, when set, additionally filters by integer lattice
	// indices (not world coordinates).
	Predicate func(x, y, z int) bool

	// ScaleVariation v jitters each emitted instance's uniform scale
	// into [1-v, 1+v]. Zero disables.
	ScaleVariation float64

	// RotationVariation r jitters each axis rotation into [-r, +r]
	// degrees. Zero disables.
	RotationVariation float64
}

// Volume selects the Scatter bounding volume.
type Volume int

const (
	// VolumeBox scatters inside an axis-aligned box of Size around Center.
	VolumeBox Volume = iota
	// VolumeSphere scatters inside a sphere of Radius around Center.
	VolumeSphere
)

// String returns the lowercase volume name.
func (v Volume) String() string {
	if v == VolumeSphere {
		return "sphere"
	}
	return "box"
}

// scatterAttemptFactor bounds total placement attempts at count×10.
const scatterAttemptFactor = 10

// ScatterOptions configures the Scatter generator.
type ScatterOptions struct {
	// Count is the requested number of instances; the returned list may
	// be shorter when overlap avoidance exhausts the attempt budget.
	Count int

	// Seed drives every random draw; same seed, same output.
	Seed int64

	// Volume selects the bounding volume.
	Volume Volume

	// Size is the box volume's dimensions.
	Size core.Vec3

	// Radius is the sphere volume's radius.
	Radius float64

	// Center translates the volume.
	Center core.Vec3

	// AvoidOverlap rejects candidates within MinDistance of any already
	// placed instance center. Centers only — no real collision geometry.
	AvoidOverlap bool
	MinDistance  float64

	// ScaleMin/ScaleMax bound the per-instance random scale; ScaleMax = 0
	// means no scale randomization. UniformScale shares one draw across
	// all three axes, otherwise each axis draws independently.
	ScaleMin     float64
	ScaleMax     float64
	UniformScale bool

	// RandomRotation draws a fully random orientation: three independent
	// uniform angles over a full turn.
	RandomRotation bool
}

// SplineOptions configures the Spline generator.
type SplineOptions struct {
	// Points is the poly-line of control points.
	Points []core.Vec3

	// Curve and Tension select the interpolation; see package spline.
	Curve   spline.CurveType
	Tension float64

	// Count samples are taken at t = i/(count-1).
	Count int

	// AlignToCurve orients each instance along the curve tangent.
	AlignToCurve bool

	// ScaleStep as in LinearOptions.
	ScaleStep float64
}

// ObjectOptions configures the declared-but-unimplemented object mode.
type ObjectOptions struct {
	// MeshID is the opaque identifier of the host mesh.
	MeshID string
}

// scaleStep maps the "unset" zero value onto the no-op progression.
func scaleStep(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
