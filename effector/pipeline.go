package effector

import "github.com/katalvlaran/cloner/core"

// Pipeline folds the enabled effectors, in list order, over every
// instance and returns a new list of the same length and order. Input is
// never mutated; Index values are never renumbered. Applying the same
// pipeline to the same input always yields the same output.
//
// Order is a correctness requirement: each effector reads state already
// modified by earlier ones. Instances, by contrast, fold independently
// of each other.
//
// Complexity: O(len(instances) × enabled effectors).
func Pipeline(instances []core.Instance, effectors []Effector) []core.Instance {
	out := make([]core.Instance, len(instances))
	copy(out, instances)
	for _, e := range effectors {
		if e == nil || !e.Meta().Enabled {
			continue
		}
		for i := range out {
			out[i] = e.Apply(out[i])
		}
	}
	return out
}
