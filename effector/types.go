package effector

import "github.com/katalvlaran/cloner/core"

// Kind discriminates the effector union.
type Kind int

const (
	// KindFalloff is the distance-weighted influence effector.
	KindFalloff Kind = iota
	// KindRandom is the per-instance seeded jitter effector.
	KindRandom
	// KindNoise is the spatial noise displacement effector.
	KindNoise
	// KindStep is the index-banding effector.
	KindStep
	// KindTarget is the point attraction/repulsion effector.
	KindTarget
)

// String returns the lowercase kind name used as the configuration
// discriminator.
func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindNoise:
		return "noise"
	case KindStep:
		return "step"
	case KindTarget:
		return "target"
	default:
		return "falloff"
	}
}

// Affects masks which instance fields an effector may modify. The flags
// are independent; an effector honors the subset that makes sense for
// its kind.
type Affects struct {
	Position   bool
	Rotation   bool
	Scale      bool
	Color      bool
	Visibility bool
}

// Base carries the configuration shared by every effector kind.
// Effectors are stateless configuration values: they own no instance
// data and have no lifecycle beyond being passed into Pipeline.
type Base struct {
	// ID and Name identify the effector in the editing UI.
	ID   string
	Name string

	// Enabled effectors participate in the pipeline; disabled ones are
	// skipped entirely.
	Enabled bool

	// Strength in [0,1] globally scales this effector's influence.
	Strength float64

	// Affects gates the instance fields this effector may touch.
	Affects Affects

	// AnimationSpeed is a hint for an external animation driver. The
	// pipeline itself never reads it.
	AnimationSpeed float64
}

// Meta returns the shared configuration; embedding Base satisfies the
// Effector interface's metadata accessor.
func (b Base) Meta() Base { return b }

// DefaultBase returns an enabled, full-strength Base with the given
// identity and affects mask.
func DefaultBase(id, name string, affects Affects) Base {
	return Base{ID: id, Name: name, Enabled: true, Strength: 1, Affects: affects}
}

// Effector is one composable post-processing step. Apply must be a pure
// function: it receives an instance value and returns the modified
// value, never retaining or sharing state between calls.
type Effector interface {
	// Meta exposes the shared Base configuration.
	Meta() Base

	// Kind returns the union discriminator.
	Kind() Kind

	// Apply transforms a single instance and returns the result.
	Apply(inst core.Instance) core.Instance
}
