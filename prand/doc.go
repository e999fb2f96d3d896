// Package prand provides the seeded pseudo-random streams the cloner
// engine draws from: a linear-congruential generator whose entire output
// is a pure function of (seed, call count).
//
// What:
//
//   - Source — 64-bit LCG state using Knuth's MMIX constants.
//   - Float — next value in [0,1).
//   - Range — next value in [min,max).
//   - Angle — next value in [0,2π), for fully random orientations.
//
// Why not math/rand:
//
//   - Reproducibility is part of the engine's public contract: the same
//     seed must yield the same instance list across runs, platforms and Go
//     releases. math/rand makes no cross-release stream guarantee, and the
//     engine re-seeds a fresh generator per instance (seed+index) in the
//     Random effector, which a two-word LCG makes essentially free.
//
// Determinism:
//
//   - Defined for every int64 seed, including zero and negative values.
//   - No hidden state; concurrent use of separate Sources is safe, a single
//     Source is not (the engine never shares one across goroutines).
//
// Complexity: O(1) per draw, zero allocations after New.
package prand
