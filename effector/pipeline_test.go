package effector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/effector"
	"github.com/katalvlaran/cloner/place"
)

func rowOfTen() []core.Instance {
	return place.Linear(place.LinearOptions{Count: 10, Axis: core.AxisX, Spacing: 1})
}

// TestPipeline_PreservesShape verifies the output keeps the input's
// length, order and indices, and that the input slice is not mutated.
func TestPipeline_PreservesShape(t *testing.T) {
	in := rowOfTen()
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 5,
	}
	out := effector.Pipeline(in, []effector.Effector{f})

	require.Len(t, out, len(in))
	for i := range out {
		assert.Equal(t, in[i].Index, out[i].Index)
		assert.Equal(t, in[i].ID, out[i].ID)
	}
	assert.Equal(t, core.Uniform(1), in[0].Scale, "input must not be mutated")
}

// TestPipeline_OrderMatters verifies [Falloff, Random] differs from
// [Random, Falloff]: Falloff reads positions, and Random moves them.
func TestPipeline_OrderMatters(t *testing.T) {
	in := rowOfTen()
	f := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true}),
		Radius: 4,
		Curve:  effector.CurveLinear,
	}
	r := effector.Random{
		Base:          effector.DefaultBase("r", "random", effector.Affects{Position: true}),
		Seed:          42,
		PositionRange: core.Uniform(3),
	}

	falloffFirst := effector.Pipeline(in, []effector.Effector{f, r})
	randomFirst := effector.Pipeline(in, []effector.Effector{r, f})
	assert.NotEqual(t, falloffFirst, randomFirst)
}

// TestPipeline_SkipsDisabled verifies disabled and nil entries are
// ignored.
func TestPipeline_SkipsDisabled(t *testing.T) {
	in := rowOfTen()
	off := effector.Falloff{
		Base:   effector.DefaultBase("f", "falloff", effector.Affects{Scale: true, Visibility: true}),
		Radius: 100,
	}
	off.Enabled = false
	out := effector.Pipeline(in, []effector.Effector{off, nil})
	assert.Equal(t, in, out)
}

// TestPipeline_Deterministic verifies repeated runs over the same input
// and stack are identical.
func TestPipeline_Deterministic(t *testing.T) {
	in := rowOfTen()
	stack := []effector.Effector{
		effector.Noise{
			Base:      effector.DefaultBase("n", "noise", effector.Affects{Position: true}),
			Frequency: 0.3,
			Amplitude: 1,
		},
		effector.Random{
			Base:          effector.DefaultBase("r", "random", effector.Affects{Rotation: true}),
			Seed:          9,
			RotationRange: core.Uniform(15),
		},
		effector.Step{
			Base:     effector.DefaultBase("s", "step", effector.Affects{Visibility: true}),
			StepSize: 3,
		},
	}
	assert.Equal(t, effector.Pipeline(in, stack), effector.Pipeline(in, stack))
}

// TestPipeline_StepKeysOnOriginalIndex verifies Step bands by Index even
// after an earlier effector rearranged positions.
func TestPipeline_StepKeysOnOriginalIndex(t *testing.T) {
	in := rowOfTen()
	r := effector.Random{
		Base:          effector.DefaultBase("r", "random", effector.Affects{Position: true}),
		Seed:          1,
		PositionRange: core.Uniform(50),
	}
	s := effector.Step{
		Base:     effector.DefaultBase("s", "step", effector.Affects{Visibility: true}),
		StepSize: 2,
	}
	out := effector.Pipeline(in, []effector.Effector{r, s})
	for i, inst := range out {
		want := (i/2)%2 != 0
		assert.Equal(t, want, inst.Visible, "index %d", i)
	}
}

// TestPipeline_EmptyInputs verifies empty instance lists and empty
// stacks are handled without surprises.
func TestPipeline_EmptyInputs(t *testing.T) {
	assert.Empty(t, effector.Pipeline(nil, nil))
	in := rowOfTen()
	assert.Equal(t, in, effector.Pipeline(in, nil))
}

// TestKindString covers the discriminator names used by configuration.
func TestKindString(t *testing.T) {
	assert.Equal(t, "falloff", effector.KindFalloff.String())
	assert.Equal(t, "random", effector.KindRandom.String())
	assert.Equal(t, "noise", effector.KindNoise.String())
	assert.Equal(t, "step", effector.KindStep.String())
	assert.Equal(t, "target", effector.KindTarget.String())
}
