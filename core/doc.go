// Package core defines the shared primitives of the cloner engine:
// the Vec3 value type, the Instance record every generator emits and
// every effector transforms, and the Axis / Plane selectors.
//
// What:
//
//   - Vec3 — immutable-by-convention 3-component float64 vector with the
//     handful of operations the engine needs (Add, Sub, Scale, Dot, Lerp,
//     Normalize, distances). All methods return new values.
//   - Instance — one placed copy's transform plus metadata. Rotation is an
//     intrinsic XYZ Euler triple in radians; Color is a "#rrggbb" string or
//     "" when unset; Index is the stable per-generation ordinal used as a
//     deterministic seed offset by effectors.
//   - Axis, Plane — principal-axis and coordinate-plane selectors shared by
//     the placement generators and the effector pipeline.
//
// Why:
//
//   - Every subpackage (place, effector, spline) speaks these types; keeping
//     them in one leaf package avoids import cycles and keeps each algorithm
//     package focused on its own math.
//
// Degenerate input:
//
//   - Normalize of the zero vector returns the zero vector unchanged rather
//     than dividing by zero. Callers rely on this; do not "fix" it.
package core
