// Package spline evaluates a poly-line of 3D control points as a
// parametric curve at t ∈ [0,1] and estimates tangents for orienting
// instances along the curve.
//
// What:
//
//   - Point — position on the curve at parameter t.
//   - Tangent — unit direction of travel at t (symmetric finite difference).
//   - RotationFromTangent — pitch/yaw Euler rotation facing along a tangent.
//   - CurveLinear, CurveCatmullRom, CurveBezier curve types; Catmull-Rom
//     takes a tension parameter (default 0.5) over a 4-point window clamped
//     to the end control points — no wraparound.
//
// Algorithm outline (Catmull-Rom segment):
//
//  1. Map t onto segment i of n-1 segments, local parameter u ∈ [0,1].
//  2. Window p0..p3 = points[i-1..i+2], indices clamped to [0,n-1].
//  3. Tangents m1 = τ·(p2-p0), m2 = τ·(p3-p1).
//  4. Blend with the cubic Hermite basis:
//     h00·p1 + h10·m1 + h01·p2 + h11·m2.
//
// Known simplification:
//
//   - CurveBezier currently evaluates through the linear-segment algorithm.
//     This mirrors the behavior the renderer was built against; keep it
//     until true Bezier evaluation ships end to end.
//
// Degenerate input:
//
//   - No control points → the zero vector; a single point → that point;
//     t is clamped to [0,1]. Point(…, 0) and Point(…, 1) return exactly the
//     first and last control points for every curve type and tension.
//
// Complexity: O(1) per evaluation after segment lookup.
package spline
