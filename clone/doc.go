// Package clone is the top-level facade: one call that runs a placement
// configuration through its generator and then folds an effector stack
// over the result.
//
// What:
//
//	instances, err := clone.Generate(place.GridOptions{...}, []effector.Effector{...})
//
// The configuration union dispatches on its concrete type — linear,
// radial, grid, scatter, spline or object — and the effectors apply in
// list order. Everything downstream is deterministic, so the same
// configuration always yields the same instances.
//
// Errors:
//
//   - ErrNilConfig  — no configuration was supplied.
//   - ErrUnknownMode — the configuration type is not one of the known
//     placement variants.
//
// Degenerate configurations (zero counts, empty spline point lists, the
// not-yet-implemented object mode) are not errors: they yield an empty
// instance list, matching the generators' own posture.
package clone
