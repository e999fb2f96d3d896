// Package blend interpolates between two hex colors, driving the
// per-instance color progression of the linear generator.
//
// What:
//
//   - Interpolate(start, end, t, mode) — "#rrggbb" in, "#rrggbb" out.
//   - ModeLinear — independent R/G/B channel interpolation.
//   - ModeHSV — hue/saturation/value interpolation where hue takes the
//     shorter arc around the color circle (0.95→0.05 passes through 0.0,
//     not through 0.5).
//
// Failure posture:
//
//   - Input failing the "#rrggbb" shape check returns start unchanged.
//     No error values anywhere: a bad color yields a flat progression,
//     never a crash — matching the engine-wide degrade-gracefully rule.
//
// Output is always a lowercase 6-digit "#rrggbb" built from rounded,
// clamped byte channels.
package blend
