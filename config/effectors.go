package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cloner/effector"
)

// baseDoc is the shared slice of every effector entry. Enabled and
// Strength are preset to their defaults before decoding, so absent keys
// keep an effector on at full strength.
type baseDoc struct {
	Kind           string   `yaml:"kind"`
	ID             string   `yaml:"id,omitempty"`
	Name           string   `yaml:"name,omitempty"`
	Enabled        bool     `yaml:"enabled,omitempty"`
	Strength       float64  `yaml:"strength,omitempty"`
	Affects        []string `yaml:"affects,omitempty"`
	AnimationSpeed float64  `yaml:"animation_speed,omitempty"`
}

// base converts the shared slice, falling back to the kind's
// conventional affects mask when the document names none.
func (d baseDoc) base(fallback effector.Affects) (effector.Base, error) {
	affects := fallback
	if len(d.Affects) > 0 {
		var err error
		if affects, err = parseAffects(d.Affects); err != nil {
			return effector.Base{}, err
		}
	}
	return effector.Base{
		ID:             d.ID,
		Name:           d.Name,
		Enabled:        d.Enabled,
		Strength:       d.Strength,
		Affects:        affects,
		AnimationSpeed: d.AnimationSpeed,
	}, nil
}

type falloffDoc struct {
	baseDoc `yaml:",inline"`
	Center  vec3    `yaml:"center,omitempty"`
	Radius  float64 `yaml:"radius,omitempty"`
	Metric  string  `yaml:"metric,omitempty"`
	Axis    string  `yaml:"axis,omitempty"`
	Curve   string  `yaml:"curve,omitempty"`
	Invert  bool    `yaml:"invert,omitempty"`
}

type randomDoc struct {
	baseDoc       `yaml:",inline"`
	Seed          int64   `yaml:"seed,omitempty"`
	PositionRange vec3    `yaml:"position_range,omitempty"`
	RotationRange vec3    `yaml:"rotation_range,omitempty"`
	ScaleMin      float64 `yaml:"scale_min,omitempty"`
	ScaleMax      float64 `yaml:"scale_max,omitempty"`
	UniformScale  bool    `yaml:"uniform_scale,omitempty"`
}

type noiseDoc struct {
	baseDoc     `yaml:",inline"`
	Frequency   float64 `yaml:"frequency,omitempty"`
	Amplitude   float64 `yaml:"amplitude,omitempty"`
	Octaves     int     `yaml:"octaves,omitempty"`
	Persistence float64 `yaml:"persistence,omitempty"`
}

type stepDoc struct {
	baseDoc  `yaml:",inline"`
	StepSize int `yaml:"step_size,omitempty"`
	Offset   int `yaml:"offset,omitempty"`
}

type targetDoc struct {
	baseDoc         `yaml:",inline"`
	Point           vec3    `yaml:"point,omitempty"`
	InfluenceRadius float64 `yaml:"influence_radius,omitempty"`
	Attraction      float64 `yaml:"attraction,omitempty"`
}

// decodeStrict re-runs a sub-node through a strict decoder so unknown
// keys inside effector entries are caught, not just top-level ones.
func decodeStrict(n *yaml.Node, out any) error {
	raw, err := yaml.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	return nil
}

// buildEffectors decodes the effector list in two phases: peek at the
// kind discriminator, then strict-decode the full entry into its
// kind-specific shape.
func buildEffectors(nodes []yaml.Node) ([]effector.Effector, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]effector.Effector, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		var header struct {
			Kind string `yaml:"kind"`
		}
		if err := n.Decode(&header); err != nil {
			return nil, fmt.Errorf("%w: effector %d: %v", ErrBadDocument, i, err)
		}
		e, err := buildEffector(header.Kind, n)
		if err != nil {
			return nil, fmt.Errorf("effector %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func buildEffector(kind string, n *yaml.Node) (effector.Effector, error) {
	switch kind {
	case "falloff":
		d := falloffDoc{baseDoc: defaultBaseDoc()}
		if err := decodeStrict(n, &d); err != nil {
			return nil, err
		}
		base, err := d.base(effector.Affects{Scale: true, Visibility: true})
		if err != nil {
			return nil, err
		}
		metric, err := parseMetric(d.Metric)
		if err != nil {
			return nil, err
		}
		axis, err := parseAxis(d.Axis)
		if err != nil {
			return nil, err
		}
		curve, err := parseFalloffCurve(d.Curve)
		if err != nil {
			return nil, err
		}
		return effector.Falloff{
			Base:   base,
			Center: d.Center.vec(),
			Radius: d.Radius,
			Metric: metric,
			Axis:   axis,
			Curve:  curve,
			Invert: d.Invert,
		}, nil

	case "random":
		d := randomDoc{baseDoc: defaultBaseDoc()}
		if err := decodeStrict(n, &d); err != nil {
			return nil, err
		}
		base, err := d.base(effector.Affects{Position: true, Rotation: true, Scale: true})
		if err != nil {
			return nil, err
		}
		return effector.Random{
			Base:          base,
			Seed:          d.Seed,
			PositionRange: d.PositionRange.vec(),
			RotationRange: d.RotationRange.vec(),
			ScaleMin:      d.ScaleMin,
			ScaleMax:      d.ScaleMax,
			UniformScale:  d.UniformScale,
		}, nil

	case "noise":
		d := noiseDoc{baseDoc: defaultBaseDoc()}
		if err := decodeStrict(n, &d); err != nil {
			return nil, err
		}
		base, err := d.base(effector.Affects{Position: true, Scale: true})
		if err != nil {
			return nil, err
		}
		return effector.Noise{
			Base:        base,
			Frequency:   d.Frequency,
			Amplitude:   d.Amplitude,
			Octaves:     d.Octaves,
			Persistence: d.Persistence,
		}, nil

	case "step":
		d := stepDoc{baseDoc: defaultBaseDoc()}
		if err := decodeStrict(n, &d); err != nil {
			return nil, err
		}
		base, err := d.base(effector.Affects{Scale: true, Visibility: true})
		if err != nil {
			return nil, err
		}
		return effector.Step{
			Base:     base,
			StepSize: d.StepSize,
			Offset:   d.Offset,
		}, nil

	case "target":
		d := targetDoc{baseDoc: defaultBaseDoc()}
		if err := decodeStrict(n, &d); err != nil {
			return nil, err
		}
		base, err := d.base(effector.Affects{Position: true})
		if err != nil {
			return nil, err
		}
		return effector.Target{
			Base:            base,
			Point:           d.Point.vec(),
			InfluenceRadius: d.InfluenceRadius,
			Attraction:      d.Attraction,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// defaultBaseDoc pre-sets the shared defaults so absent keys decode to
// an enabled, full-strength effector.
func defaultBaseDoc() baseDoc {
	return baseDoc{Enabled: true, Strength: 1}
}
