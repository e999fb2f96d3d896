// Package config loads cloner presets from YAML: one placement section
// selected by a mode discriminator, plus an ordered effector stack.
//
// Document shape:
//
//	mode: grid
//	grid:
//	  count: [5, 1, 5]
//	  spacing: [2, 2, 2]
//	  centered: true
//	  shape: sphere
//	effectors:
//	  - kind: falloff
//	    name: center fade
//	    radius: 6
//	    curve: smooth
//	  - kind: random
//	    seed: 42
//	    position_range: [0.3, 0, 0.3]
//
// Decoding is strict: unknown keys anywhere in the document are errors,
// which catches typos like "spaceing" instead of silently ignoring them.
// Enum fields (axis, plane, shape, volume, curve, metric, color_mode)
// take the lowercase names used throughout the engine.
//
// Defaults: effectors are enabled at full strength unless the document
// says otherwise, and an omitted affects list falls back to the fields
// that kind conventionally touches. Spline tension defaults to the
// engine's 0.5. The grid predicate is code, not data, and has no YAML
// form.
//
// Errors:
//
//   - ErrBadDocument — malformed YAML, unknown keys, missing mode
//     section, or an unrecognized enum value.
//   - ErrUnknownMode — the mode discriminator names no known generator.
//   - ErrUnknownKind — an effector's kind discriminator names no known
//     effector.
package config
