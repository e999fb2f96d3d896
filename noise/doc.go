// Package noise implements deterministic 3D value noise: a hash-lattice
// field blended trilinearly, a pure function of the sample position.
//
// What:
//
//   - Sample3D(x, y, z, frequency) — one sample in roughly [-1,1].
//   - Octave3D(..., octaves, persistence) — layered sampling with doubling
//     frequency and decaying amplitude, for richer spatial variation.
//
// Why coordinate-hashed instead of seeded:
//
//   - The Noise effector must look spatially continuous: two instances at
//     the same position have to agree regardless of index or call order.
//     Deriving the lattice values from the coordinates themselves (rather
//     than from generator state) makes every sample independent of history.
//
// Guarantees:
//
//   - Deterministic and reproducible across runs and platforms.
//   - Continuous across cell boundaries: the eight lattice-corner hashes
//     are blended with a smoothstep fade, so there are no seams.
//   - No explicit range guarantee beyond "approximately unit scale";
//     callers multiply by an explicit amplitude.
//
// Complexity: O(1) per sample (8 corner hashes, 7 lerps), no allocations.
package noise
