package core

import "math"

// RadPerDeg converts degrees to radians when used as a multiplier.
const RadPerDeg = math.Pi / 180

// DegPerRad converts radians to degrees when used as a multiplier.
const DegPerRad = 180 / math.Pi

// Axis selects one of the three principal axes.
type Axis int

const (
	// AxisX is the +X principal axis.
	AxisX Axis = iota
	// AxisY is the +Y principal axis.
	AxisY
	// AxisZ is the +Z principal axis.
	AxisZ
)

// Vec returns the unit vector along the axis.
func (a Axis) Vec() Vec3 {
	switch a {
	case AxisY:
		return Vec3{Y: 1}
	case AxisZ:
		return Vec3{Z: 1}
	default:
		return Vec3{X: 1}
	}
}

// String returns the lowercase axis name ("x", "y" or "z").
func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "x"
	}
}

// Plane selects one of the three coordinate planes.
type Plane int

const (
	// PlaneXY is the plane spanned by the X and Y axes (normal +Z).
	PlaneXY Plane = iota
	// PlaneXZ is the plane spanned by the X and Z axes (normal +Y).
	PlaneXZ
	// PlaneYZ is the plane spanned by the Y and Z axes (normal +X).
	PlaneYZ
)

// Normal returns the axis perpendicular to the plane.
func (p Plane) Normal() Axis {
	switch p {
	case PlaneXZ:
		return AxisY
	case PlaneYZ:
		return AxisX
	default:
		return AxisZ
	}
}

// String returns the lowercase plane name ("xy", "xz" or "yz").
func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

// Instance is one placed copy's transform and metadata — not the rendered
// mesh itself. Instances are produced fresh on every generation call;
// ID and Index do not survive an edit to the instance count.
type Instance struct {
	// ID is the generator-prefixed ordinal, e.g. "linear-0".
	ID string

	// Index is the 0-based position at generation time. Effectors key
	// deterministic per-instance randomness on it and never renumber it.
	Index int

	// Position in scene-space units.
	Position Vec3

	// Rotation as intrinsic XYZ Euler angles, radians.
	Rotation Vec3

	// Scale per component.
	Scale Vec3

	// Color is a "#rrggbb" hex string, or "" when no color is assigned.
	Color string

	// Visible reports whether the renderer should draw this instance.
	Visible bool
}
