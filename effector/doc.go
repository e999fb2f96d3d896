// Package effector post-processes an already-generated instance list: a
// stack of composable modifiers folded over every instance, strictly in
// list order.
//
// What:
//
//   - Falloff — distance-weighted influence (spherical / cylindrical / box
//     metric, smooth / sharp / linear curve, optional inversion).
//   - Random — per-instance seeded jitter of position, rotation and scale.
//   - Noise — spatially continuous displacement from the value-noise field.
//   - Step — on/off banding by original instance index.
//   - Target — attraction toward (or repulsion from) a fixed point.
//
// Composition rules:
//
//   - Pipeline applies enabled effectors left to right; order is
//     semantically significant because each effector reads the state
//     already modified by the ones before it. [Falloff, Random] and
//     [Random, Falloff] are different results on purpose.
//   - Each instance folds independently of its siblings, so running one
//     effector across instances in parallel is safe; reordering effectors
//     is not.
//   - Disabled effectors are skipped entirely. The instance list keeps its
//     length, order and Index values — Step keys its bands on the original
//     index even after earlier effectors moved everything around.
//
// Determinism:
//
//   - Random seeds a fresh generator per instance as seed+index, so its
//     output is independent of processing order. Noise derives everything
//     from the sampled position. Nothing here reads hidden state.
//
// Base.Strength ∈ [0,1] scales each effector's influence; the Affects
// mask gates which instance fields an effector may touch (not every
// effector honors every flag — see the per-kind docs).
package effector
