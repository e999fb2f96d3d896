// Package place implements the five placement generators of the cloner
// engine: Linear, Radial, Grid, Scatter and Spline. Each is a pure
// function of its options struct returning an ordered []core.Instance.
//
// What:
//
//   - Linear  — a row along an axis or custom direction, with optional
//     geometric scale progression, per-step rotation and color progression.
//   - Radial  — an arc or ring on a coordinate plane, with optional spiral
//     growth and align-to-radius orientation.
//   - Grid    — a rectilinear lattice with centering, box/sphere/cylinder
//     shape masks, a custom lattice predicate, and seeded jitter.
//   - Scatter — rejection-sampled points in a box or sphere with optional
//     minimum-distance overlap avoidance under a bounded attempt budget.
//   - Spline  — samples along a poly-line curve with optional
//     align-to-curve orientation.
//
// Shared contract:
//
//   - Deterministic: the same options always yield the same list (Scatter
//     and Grid jitter draw from explicit or fixed seeds precisely so this
//     holds).
//   - Never errors: degenerate input (count ≤ 0, zero direction, single
//     control point) degrades to a safe default instead of failing.
//   - IDs are "<mode>-<index>"; Index is contiguous over emitted instances.
//
// Mode quirks preserved on purpose:
//
//   - Radial divides the sweep by count, not count-1, so a full 360° ring
//     leaves a one-step gap between last and first — closed rings don't
//     double up.
//   - Grid jitter uses a fixed package-level seed, unlike Scatter's
//     caller-supplied one. A known asymmetry, not a bug.
//   - Scatter may return fewer than Count instances once the count×10
//     attempt budget runs out; the returned length is authoritative.
//   - ModeObject (clone-to-mesh-features) is declared but generates an
//     empty list: mesh topology belongs to the renderer.
//
// Complexity: O(count) for Linear/Radial/Spline, O(lattice) for Grid,
// O(count²) worst case for Scatter with overlap avoidance.
package place
