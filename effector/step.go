package effector

import "github.com/katalvlaran/cloner/core"

// Step bands instances by their original generation index: indices fall
// into blocks of StepSize, and alternating blocks receive the effect.
// Because it keys on Index rather than position, the banding survives
// any repositioning done by earlier effectors in the pipeline.
type Step struct {
	Base

	// StepSize is the band width in indices; values < 1 are treated as 1.
	StepSize int

	// Offset shifts the banding phase.
	Offset int
}

// Kind returns KindStep.
func (s Step) Kind() Kind { return KindStep }

// stepVisibilityThreshold hides an instance once the band factor
// reaches it.
const stepVisibilityThreshold = 0.5

// floorDiv rounds toward negative infinity so negative offsets band
// consistently with positive ones.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// factor is Strength on even bands, 0 on odd ones.
func (s Step) factor(index int) float64 {
	size := s.StepSize
	if size < 1 {
		size = 1
	}
	band := floorDiv(index+s.Offset, size)
	if band&1 == 0 {
		return s.Strength
	}
	return 0
}

// Apply shrinks and optionally hides instances on active bands.
func (s Step) Apply(inst core.Instance) core.Instance {
	fac := s.factor(inst.Index)
	if s.Affects.Scale {
		inst.Scale = inst.Scale.Scale(1 - fac*0.5)
	}
	if s.Affects.Visibility && fac >= stepVisibilityThreshold {
		inst.Visible = false
	}
	return inst
}
