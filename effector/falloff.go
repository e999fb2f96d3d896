package effector

import (
	"math"

	"github.com/katalvlaran/cloner/core"
)

// Metric selects the distance function used by Falloff.
type Metric int

const (
	// MetricSpherical measures Euclidean distance from the center.
	MetricSpherical Metric = iota
	// MetricCylindrical measures radial distance around the configured
	// Axis, ignoring that axis's component.
	MetricCylindrical
	// MetricBox measures Chebyshev (max-axis) distance from the center.
	MetricBox
)

// String returns the lowercase metric name.
func (m Metric) String() string {
	switch m {
	case MetricCylindrical:
		return "cylindrical"
	case MetricBox:
		return "box"
	default:
		return "spherical"
	}
}

// Curve reshapes the normalized falloff factor.
type Curve int

const (
	// CurveSmooth applies the smoothstep ease 3f² − 2f³.
	CurveSmooth Curve = iota
	// CurveSharp squares the factor, concentrating influence near the center.
	CurveSharp
	// CurveLinear leaves the factor unshaped.
	CurveLinear
)

// String returns the lowercase curve name.
func (c Curve) String() string {
	switch c {
	case CurveSharp:
		return "sharp"
	case CurveLinear:
		return "linear"
	default:
		return "smooth"
	}
}

// visibilityThreshold hides an instance once falloff influence reaches it.
const visibilityThreshold = 0.9

// Falloff weights its influence by distance from a center point: full
// effect at the center, fading to nothing at Radius. Influence shrinks
// scale (down to half at factor 1) and, past visibilityThreshold, hides
// the instance. Invert flips the gradient so the edge gets the full
// effect instead of the center.
type Falloff struct {
	Base

	Center core.Vec3
	Radius float64
	Metric Metric
	// Axis is the cylinder axis for MetricCylindrical; the other metrics
	// ignore it.
	Axis   core.Axis
	Curve  Curve
	Invert bool
}

// Kind returns KindFalloff.
func (f Falloff) Kind() Kind { return KindFalloff }

// distance measures the instance-to-center distance under the configured
// metric.
func (f Falloff) distance(p core.Vec3) float64 {
	d := p.Sub(f.Center)
	switch f.Metric {
	case MetricCylindrical:
		switch f.Axis {
		case core.AxisX:
			return math.Sqrt(d.Y*d.Y + d.Z*d.Z)
		case core.AxisZ:
			return math.Sqrt(d.X*d.X + d.Y*d.Y)
		default:
			return math.Sqrt(d.X*d.X + d.Z*d.Z)
		}
	case MetricBox:
		return d.Chebyshev()
	default:
		return d.Length()
	}
}

// factor computes the final influence in [0,1] for a point: normalized
// proximity, reshaped by the curve, optionally inverted, scaled by
// Strength.
func (f Falloff) factor(p core.Vec3) float64 {
	norm := math.Min(f.distance(p)/f.Radius, 1)
	fac := 1 - norm
	switch f.Curve {
	case CurveSmooth:
		fac = fac * fac * (3 - 2*fac)
	case CurveSharp:
		fac = fac * fac
	}
	if f.Invert {
		fac = 1 - fac
	}
	return fac * f.Strength
}

// Apply weights the instance by its distance factor. A non-positive
// Radius makes the effector a no-op rather than dividing by zero.
func (f Falloff) Apply(inst core.Instance) core.Instance {
	if f.Radius <= 0 {
		return inst
	}
	fac := f.factor(inst.Position)
	if f.Affects.Scale {
		inst.Scale = inst.Scale.Scale(1 - fac*0.5)
	}
	if f.Affects.Visibility && fac >= visibilityThreshold {
		inst.Visible = false
	}
	return inst
}
