// Package cloner is a deterministic procedural instancing engine:
// feed it a placement configuration, get back an ordered list of
// per-instance transforms ready for a renderer or a GPU instance buffer.
//
// 🚀 What is cloner?
//
//	A synchronous, allocation-light library that brings together:
//		• Placement generators: Linear, Radial, Grid, Scatter, Spline
//		• Effectors: Falloff, Random, Noise, Step, Target — stackable, order-sensitive
//		• Spline evaluation: linear segments & Catmull-Rom with tangent-based orientation
//		• Deterministic primitives: seeded LCG streams & coordinate-hashed value noise
//		• Color progression: linear and hue-aware (HSV, shortest arc) interpolation
//
// ✨ Why choose cloner?
//
//   - Reproducible – same configuration and seed always yield byte-identical output
//   - Never throws – degenerate input degrades gracefully instead of erroring
//   - Pure math – no I/O, no hidden state, trivially safe to run in parallel
//   - Composable – effectors fold left-to-right over the generated instances
//
// Everything is organized under small focused subpackages:
//
//	core/     — Vec3, the Instance record, axis & plane enums
//	prand/    — seeded linear-congruential random streams
//	noise/    — hash-lattice trilinear value noise
//	blend/    — hex color interpolation (linear / HSV shortest-arc)
//	spline/   — parametric curve evaluation and tangent estimation
//	place/    — the five placement generators and their options
//	effector/ — the effector kinds and the ordered pipeline
//	clone/    — the facade: tagged config in, instance list out
//	config/   — YAML presets for configurations and effector stacks
//
// Quick ASCII example:
//
//	○ ○ ○ ○ ○        ○   ○
//	○ ○ ○ ○ ○   -->    ○ ○     a grid generator followed by a
//	○ ○ ○ ○ ○        ○     ○   noise effector displacing positions
//
// Dive into examples/ for end-to-end scenarios, and each subpackage's
// doc.go for contracts, complexity and error semantics.
//
//	go get github.com/katalvlaran/cloner
package cloner
