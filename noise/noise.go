package noise

import "math"

// splitmix-style mixing constants; stable lattice hashes across runs.
const (
	mixA uint64 = 0x9e3779b97f4a7c15
	mixB uint64 = 0xbf58476d1ce4e5b9
	mixC uint64 = 0x94d049bb13311eb3
)

// latticeHash maps an integer lattice corner to a pseudo-random value
// in [0,1]. Same corner, same value — always.
func latticeHash(x, y, z int64) float64 {
	v := uint64(x)*mixA ^ uint64(y)*mixB ^ uint64(z)*mixC
	v += mixA
	v = (v ^ (v >> 30)) * mixB
	v = (v ^ (v >> 27)) * mixC
	v ^= v >> 31
	return float64(v>>11) * 0x1p-53
}

// fade is the smoothstep blend 3t²-2t³, keeping the field C¹-continuous
// across cell boundaries.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sample3D returns one value-noise sample at (x,y,z) scaled by frequency.
// The result is deterministic, continuous, and approximately in [-1,1].
func Sample3D(x, y, z, frequency float64) float64 {
	x *= frequency
	y *= frequency
	z *= frequency

	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	x0, y0, z0 := int64(fx), int64(fy), int64(fz)

	tx := fade(x - fx)
	ty := fade(y - fy)
	tz := fade(z - fz)

	// Trilinear blend of the eight cell corners.
	c000 := latticeHash(x0, y0, z0)
	c100 := latticeHash(x0+1, y0, z0)
	c010 := latticeHash(x0, y0+1, z0)
	c110 := latticeHash(x0+1, y0+1, z0)
	c001 := latticeHash(x0, y0, z0+1)
	c101 := latticeHash(x0+1, y0, z0+1)
	c011 := latticeHash(x0, y0+1, z0+1)
	c111 := latticeHash(x0+1, y0+1, z0+1)

	v := lerp(
		lerp(lerp(c000, c100, tx), lerp(c010, c110, tx), ty),
		lerp(lerp(c001, c101, tx), lerp(c011, c111, tx), ty),
		tz,
	)

	// Map [0,1] onto [-1,1] so amplitudes perturb symmetrically.
	return v*2 - 1
}

// Octave3D layers octaves of Sample3D, doubling frequency and scaling
// amplitude by persistence per octave, normalized back to unit scale.
// octaves < 1 is treated as 1; persistence <= 0 defaults to 0.5.
func Octave3D(x, y, z, frequency float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	if persistence <= 0 {
		persistence = 0.5
	}
	total, amplitude, norm := 0.0, 1.0, 0.0
	for o := 0; o < octaves; o++ {
		total += Sample3D(x, y, z, frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / norm
}
