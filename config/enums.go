package config

import (
	"fmt"

	"github.com/katalvlaran/cloner/blend"
	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/effector"
	"github.com/katalvlaran/cloner/place"
	"github.com/katalvlaran/cloner/spline"
)

// Every enum parser accepts the empty string as the engine's zero-value
// default, so presets only spell out what they change.

func parseAxis(s string) (core.Axis, error) {
	switch s {
	case "", "x":
		return core.AxisX, nil
	case "y":
		return core.AxisY, nil
	case "z":
		return core.AxisZ, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrBadDocument, s)
}

func parsePlane(s string) (core.Plane, error) {
	switch s {
	case "", "xy":
		return core.PlaneXY, nil
	case "xz":
		return core.PlaneXZ, nil
	case "yz":
		return core.PlaneYZ, nil
	}
	return 0, fmt.Errorf("%w: unknown plane %q", ErrBadDocument, s)
}

func parseShape(s string) (place.Shape, error) {
	switch s {
	case "", "box":
		return place.ShapeBox, nil
	case "sphere":
		return place.ShapeSphere, nil
	case "cylinder":
		return place.ShapeCylinder, nil
	}
	return 0, fmt.Errorf("%w: unknown grid shape %q", ErrBadDocument, s)
}

func parseVolume(s string) (place.Volume, error) {
	switch s {
	case "", "box":
		return place.VolumeBox, nil
	case "sphere":
		return place.VolumeSphere, nil
	}
	return 0, fmt.Errorf("%w: unknown scatter volume %q", ErrBadDocument, s)
}

func parseCurveType(s string) (spline.CurveType, error) {
	switch s {
	case "", "linear":
		return spline.CurveLinear, nil
	case "catmull-rom":
		return spline.CurveCatmullRom, nil
	case "bezier":
		return spline.CurveBezier, nil
	}
	return 0, fmt.Errorf("%w: unknown curve type %q", ErrBadDocument, s)
}

func parseColorMode(s string) (blend.Mode, error) {
	switch s {
	case "", "linear":
		return blend.ModeLinear, nil
	case "hsv":
		return blend.ModeHSV, nil
	}
	return 0, fmt.Errorf("%w: unknown color mode %q", ErrBadDocument, s)
}

func parseMetric(s string) (effector.Metric, error) {
	switch s {
	case "", "spherical":
		return effector.MetricSpherical, nil
	case "cylindrical":
		return effector.MetricCylindrical, nil
	case "box":
		return effector.MetricBox, nil
	}
	return 0, fmt.Errorf("%w: unknown falloff metric %q", ErrBadDocument, s)
}

func parseFalloffCurve(s string) (effector.Curve, error) {
	switch s {
	case "", "smooth":
		return effector.CurveSmooth, nil
	case "sharp":
		return effector.CurveSharp, nil
	case "linear":
		return effector.CurveLinear, nil
	}
	return 0, fmt.Errorf("%w: unknown falloff curve %q", ErrBadDocument, s)
}

func parseAffects(names []string) (effector.Affects, error) {
	var a effector.Affects
	for _, n := range names {
		switch n {
		case "position":
			a.Position = true
		case "rotation":
			a.Rotation = true
		case "scale":
			a.Scale = true
		case "color":
			a.Color = true
		case "visibility":
			a.Visibility = true
		default:
			return a, fmt.Errorf("%w: unknown affects field %q", ErrBadDocument, n)
		}
	}
	return a, nil
}
