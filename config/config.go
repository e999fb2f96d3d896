package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/effector"
	"github.com/katalvlaran/cloner/place"
)

var (
	// ErrBadDocument is returned for malformed YAML, unknown keys, a
	// missing mode section, or an unrecognized enum value.
	ErrBadDocument = errors.New("config: bad document")

	// ErrUnknownMode is returned when the mode discriminator names no
	// known placement generator.
	ErrUnknownMode = errors.New("config: unknown placement mode")

	// ErrUnknownKind is returned when an effector's kind discriminator
	// names no known effector.
	ErrUnknownKind = errors.New("config: unknown effector kind")
)

// Preset is a fully decoded document, ready for clone.Generate.
type Preset struct {
	Placement place.Config
	Effectors []effector.Effector
}

// vec3 is the YAML form of a vector: a three-element flow sequence.
type vec3 [3]float64

func (v vec3) vec() core.Vec3 { return core.Vec3{X: v[0], Y: v[1], Z: v[2]} }

type document struct {
	Mode      string      `yaml:"mode"`
	Linear    *linearDoc  `yaml:"linear,omitempty"`
	Radial    *radialDoc  `yaml:"radial,omitempty"`
	Grid      *gridDoc    `yaml:"grid,omitempty"`
	Scatter   *scatterDoc `yaml:"scatter,omitempty"`
	Spline    *splineDoc  `yaml:"spline,omitempty"`
	Object    *objectDoc  `yaml:"object,omitempty"`
	Effectors []yaml.Node `yaml:"effectors,omitempty"`
}

type linearDoc struct {
	Count        int     `yaml:"count"`
	Axis         string  `yaml:"axis,omitempty"`
	Direction    vec3    `yaml:"direction,omitempty"`
	Spacing      float64 `yaml:"spacing,omitempty"`
	Offset       vec3    `yaml:"offset,omitempty"`
	ScaleStep    float64 `yaml:"scale_step,omitempty"`
	RotationStep vec3    `yaml:"rotation_step,omitempty"`
	ColorStart   string  `yaml:"color_start,omitempty"`
	ColorEnd     string  `yaml:"color_end,omitempty"`
	ColorMode    string  `yaml:"color_mode,omitempty"`
}

type radialDoc struct {
	Count         int     `yaml:"count"`
	Radius        float64 `yaml:"radius,omitempty"`
	StartAngle    float64 `yaml:"start_angle,omitempty"`
	EndAngle      float64 `yaml:"end_angle,omitempty"`
	Plane         string  `yaml:"plane,omitempty"`
	Center        vec3    `yaml:"center,omitempty"`
	Pitch         float64 `yaml:"pitch,omitempty"`
	Growth        float64 `yaml:"growth,omitempty"`
	AlignToRadius bool    `yaml:"align_to_radius,omitempty"`
	RotationStep  vec3    `yaml:"rotation_step,omitempty"`
	ScaleStep     float64 `yaml:"scale_step,omitempty"`
}

type gridDoc struct {
	Count             [3]int  `yaml:"count"`
	Spacing           vec3    `yaml:"spacing,omitempty"`
	Centered          bool    `yaml:"centered,omitempty"`
	Shape             string  `yaml:"shape,omitempty"`
	ScaleVariation    float64 `yaml:"scale_variation,omitempty"`
	RotationVariation float64 `yaml:"rotation_variation,omitempty"`
}

type scatterDoc struct {
	Count          int     `yaml:"count"`
	Seed           int64   `yaml:"seed,omitempty"`
	Volume         string  `yaml:"volume,omitempty"`
	Size           vec3    `yaml:"size,omitempty"`
	Radius         float64 `yaml:"radius,omitempty"`
	Center         vec3    `yaml:"center,omitempty"`
	AvoidOverlap   bool    `yaml:"avoid_overlap,omitempty"`
	MinDistance    float64 `yaml:"min_distance,omitempty"`
	ScaleMin       float64 `yaml:"scale_min,omitempty"`
	ScaleMax       float64 `yaml:"scale_max,omitempty"`
	UniformScale   bool    `yaml:"uniform_scale,omitempty"`
	RandomRotation bool    `yaml:"random_rotation,omitempty"`
}

type splineDoc struct {
	Points       []vec3  `yaml:"points"`
	Curve        string  `yaml:"curve,omitempty"`
	Tension      float64 `yaml:"tension,omitempty"`
	Count        int     `yaml:"count"`
	AlignToCurve bool    `yaml:"align_to_curve,omitempty"`
	ScaleStep    float64 `yaml:"scale_step,omitempty"`
}

type objectDoc struct {
	MeshID string `yaml:"mesh_id"`
}

// Parse decodes one preset document. Decoding is strict: any key the
// schema does not know is an error.
func Parse(data []byte) (Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	placement, err := buildPlacement(&doc)
	if err != nil {
		return Preset{}, err
	}
	effectors, err := buildEffectors(doc.Effectors)
	if err != nil {
		return Preset{}, err
	}
	return Preset{Placement: placement, Effectors: effectors}, nil
}

// Load reads and parses a preset file.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// buildPlacement dispatches the mode discriminator to its section.
func buildPlacement(doc *document) (place.Config, error) {
	switch doc.Mode {
	case "linear":
		if doc.Linear == nil {
			return nil, fmt.Errorf("%w: missing linear section", ErrBadDocument)
		}
		return doc.Linear.build()
	case "radial":
		if doc.Radial == nil {
			return nil, fmt.Errorf("%w: missing radial section", ErrBadDocument)
		}
		return doc.Radial.build()
	case "grid":
		if doc.Grid == nil {
			return nil, fmt.Errorf("%w: missing grid section", ErrBadDocument)
		}
		return doc.Grid.build()
	case "scatter":
		if doc.Scatter == nil {
			return nil, fmt.Errorf("%w: missing scatter section", ErrBadDocument)
		}
		return doc.Scatter.build()
	case "spline":
		if doc.Spline == nil {
			return nil, fmt.Errorf("%w: missing spline section", ErrBadDocument)
		}
		return doc.Spline.build()
	case "object":
		if doc.Object == nil {
			return nil, fmt.Errorf("%w: missing object section", ErrBadDocument)
		}
		return &place.ObjectOptions{MeshID: doc.Object.MeshID}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, doc.Mode)
}

func (d *linearDoc) build() (place.Config, error) {
	axis, err := parseAxis(d.Axis)
	if err != nil {
		return nil, err
	}
	mode, err := parseColorMode(d.ColorMode)
	if err != nil {
		return nil, err
	}
	return &place.LinearOptions{
		Count:        d.Count,
		Axis:         axis,
		Direction:    d.Direction.vec(),
		Spacing:      d.Spacing,
		Offset:       d.Offset.vec(),
		ScaleStep:    d.ScaleStep,
		RotationStep: d.RotationStep.vec(),
		ColorStart:   d.ColorStart,
		ColorEnd:     d.ColorEnd,
		ColorMode:    mode,
	}, nil
}

func (d *radialDoc) build() (place.Config, error) {
	plane, err := parsePlane(d.Plane)
	if err != nil {
		return nil, err
	}
	return &place.RadialOptions{
		Count:         d.Count,
		Radius:        d.Radius,
		StartAngle:    d.StartAngle,
		EndAngle:      d.EndAngle,
		Plane:         plane,
		Center:        d.Center.vec(),
		Pitch:         d.Pitch,
		Growth:        d.Growth,
		AlignToRadius: d.AlignToRadius,
		RotationStep:  d.RotationStep.vec(),
		ScaleStep:     d.ScaleStep,
	}, nil
}

func (d *gridDoc) build() (place.Config, error) {
	shape, err := parseShape(d.Shape)
	if err != nil {
		return nil, err
	}
	return &place.GridOptions{
		CountX:            d.Count[0],
		CountY:            d.Count[1],
		CountZ:            d.Count[2],
		Spacing:           d.Spacing.vec(),
		Centered:          d.Centered,
		Shape:             shape,
		ScaleVariation:    d.ScaleVariation,
		RotationVariation: d.RotationVariation,
	}, nil
}

func (d *scatterDoc) build() (place.Config, error) {
	volume, err := parseVolume(d.Volume)
	if err != nil {
		return nil, err
	}
	return &place.ScatterOptions{
		Count:          d.Count,
		Seed:           d.Seed,
		Volume:         volume,
		Size:           d.Size.vec(),
		Radius:         d.Radius,
		Center:         d.Center.vec(),
		AvoidOverlap:   d.AvoidOverlap,
		MinDistance:    d.MinDistance,
		ScaleMin:       d.ScaleMin,
		ScaleMax:       d.ScaleMax,
		UniformScale:   d.UniformScale,
		RandomRotation: d.RandomRotation,
	}, nil
}

func (d *splineDoc) build() (place.Config, error) {
	curve, err := parseCurveType(d.Curve)
	if err != nil {
		return nil, err
	}
	points := make([]core.Vec3, len(d.Points))
	for i, p := range d.Points {
		points[i] = p.vec()
	}
	tension := d.Tension
	if tension == 0 {
		tension = 0.5
	}
	return &place.SplineOptions{
		Points:       points,
		Curve:        curve,
		Tension:      tension,
		Count:        d.Count,
		AlignToCurve: d.AlignToCurve,
		ScaleStep:    d.ScaleStep,
	}, nil
}
