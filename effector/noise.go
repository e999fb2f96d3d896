package effector

import (
	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/noise"
)

// decorrelate offsets the sample coordinate for the Y and Z displacement
// channels so the three axes do not move in lockstep.
const decorrelate = 100.0

// Noise displaces instances with the spatially continuous value-noise
// field, so neighbouring instances drift together instead of jittering
// independently. All samples derive from the instance's incoming
// position, which keeps the effector fully deterministic.
type Noise struct {
	Base

	// Frequency scales sample coordinates; higher values vary faster in
	// space.
	Frequency float64

	// Amplitude scales the displacement magnitude per axis.
	Amplitude float64

	// Octaves > 1 switches to fractal (summed-octave) sampling;
	// Persistence is the per-octave amplitude falloff, defaulting inside
	// the noise package.
	Octaves     int
	Persistence float64
}

// Kind returns KindNoise.
func (n Noise) Kind() Kind { return KindNoise }

// sample evaluates the configured field at a point.
func (n Noise) sample(x, y, z float64) float64 {
	if n.Octaves > 1 {
		return noise.Octave3D(x, y, z, n.Frequency, n.Octaves, n.Persistence)
	}
	return noise.Sample3D(x, y, z, n.Frequency)
}

// Apply displaces one instance by three decorrelated field samples taken
// at its incoming position. The primary (X-channel) value, already scaled
// by amplitude and strength, also breathes the scale when the Scale flag
// is on.
func (n Noise) Apply(inst core.Instance) core.Instance {
	p := inst.Position
	primary := n.sample(p.X, p.Y, p.Z) * n.Amplitude * n.Strength
	if n.Affects.Position {
		inst.Position = inst.Position.Add(core.Vec3{
			X: primary,
			Y: n.sample(p.X+decorrelate, p.Y, p.Z) * n.Amplitude * n.Strength,
			Z: n.sample(p.X, p.Y+decorrelate, p.Z) * n.Amplitude * n.Strength,
		})
	}
	if n.Affects.Scale {
		inst.Scale = inst.Scale.Scale(1 + primary*0.5)
	}
	return inst
}
