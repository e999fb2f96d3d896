package spline

// CurveType selects the interpolation algorithm across control points.
type CurveType int

const (
	// CurveLinear interpolates straight segments between control points.
	CurveLinear CurveType = iota

	// CurveCatmullRom passes a smooth curve through all control points
	// using a 4-point window and a tension parameter.
	CurveCatmullRom

	// CurveBezier is accepted but currently evaluates via the linear
	// algorithm — a known simplification, not a silent divergence.
	CurveBezier
)

// String returns the lowercase curve-type name.
func (c CurveType) String() string {
	switch c {
	case CurveCatmullRom:
		return "catmullrom"
	case CurveBezier:
		return "bezier"
	default:
		return "linear"
	}
}

// DefaultTension is the Catmull-Rom tension used when Options.Tension
// is left at zero.
const DefaultTension = 0.5

// Options configures curve evaluation.
type Options struct {
	// Curve selects the interpolation algorithm.
	Curve CurveType

	// Tension controls Catmull-Rom curvature; 0 means DefaultTension.
	Tension float64
}
