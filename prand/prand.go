package prand

import "math"

// Knuth's MMIX linear-congruential constants.
const (
	mmixMultiplier uint64 = 0x5851f42d4c957f2d
	mmixIncrement  uint64 = 0x14057b7ef767814f
)

// Source is a deterministic linear-congruential generator. The zero value
// is a valid generator seeded with 0; prefer New for clarity.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed. Every int64 seed is valid,
// including zero and negative values.
func New(seed int64) *Source {
	return &Source{state: uint64(seed)}
}

// next advances the LCG and returns the raw 64-bit state.
func (s *Source) next() uint64 {
	s.state = s.state*mmixMultiplier + mmixIncrement
	return s.state
}

// Float returns the next value in [0,1).
func (s *Source) Float() float64 {
	// Keep the top 53 bits so the value fits the float64 mantissa exactly.
	return float64(s.next()>>11) * 0x1p-53
}

// Range returns the next value in [min,max). When min == max it returns
// min; the underlying draw still happens, so call sequences stay aligned
// regardless of the configured ranges.
func (s *Source) Range(min, max float64) float64 {
	return min + s.Float()*(max-min)
}

// Angle returns the next value in [0,2π).
func (s *Source) Angle() float64 {
	return s.Float() * 2 * math.Pi
}
