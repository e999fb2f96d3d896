package clone

import (
	"errors"

	"github.com/katalvlaran/cloner/core"
	"github.com/katalvlaran/cloner/effector"
	"github.com/katalvlaran/cloner/place"
)

var (
	// ErrNilConfig is returned when Generate receives no configuration.
	ErrNilConfig = errors.New("clone: nil placement config")

	// ErrUnknownMode is returned when the configuration's concrete type
	// is not one of the placement variants this package dispatches on.
	ErrUnknownMode = errors.New("clone: unknown placement mode")
)

// Generate runs one full cloner pass: dispatch cfg to its placement
// generator, then fold the effector stack over the result in order. A
// nil or empty effector stack is fine; the placement output passes
// through unchanged.
//
// Pointer and value forms of every options struct are accepted, since
// configurations loaded from files arrive as pointers.
func Generate(cfg place.Config, effectors []effector.Effector) ([]core.Instance, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	var instances []core.Instance
	switch c := cfg.(type) {
	case place.LinearOptions:
		instances = place.Linear(c)
	case *place.LinearOptions:
		instances = place.Linear(*c)
	case place.RadialOptions:
		instances = place.Radial(c)
	case *place.RadialOptions:
		instances = place.Radial(*c)
	case place.GridOptions:
		instances = place.Grid(c)
	case *place.GridOptions:
		instances = place.Grid(*c)
	case place.ScatterOptions:
		instances = place.Scatter(c)
	case *place.ScatterOptions:
		instances = place.Scatter(*c)
	case place.SplineOptions:
		instances = place.Spline(c)
	case *place.SplineOptions:
		instances = place.Spline(*c)
	case place.ObjectOptions:
		instances = place.Object(c)
	case *place.ObjectOptions:
		instances = place.Object(*c)
	default:
		return nil, ErrUnknownMode
	}
	return effector.Pipeline(instances, effectors), nil
}
