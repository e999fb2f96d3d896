package blend

import (
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects the interpolation color space.
type Mode int

const (
	// ModeLinear interpolates R, G and B channels independently.
	ModeLinear Mode = iota

	// ModeHSV interpolates hue/saturation/value, with hue taking the
	// shorter arc around the circle.
	ModeHSV
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m == ModeHSV {
		return "hsv"
	}
	return "linear"
}

// hexPattern is the only accepted color shape: "#" plus six hex digits.
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Interpolate blends start toward end at progress t in the given mode and
// returns a "#rrggbb" string. If either endpoint fails the hex shape
// check, start is returned unchanged.
func Interpolate(start, end string, t float64, mode Mode) string {
	if !hexPattern.MatchString(start) || !hexPattern.MatchString(end) {
		return start
	}
	a, errA := colorful.Hex(start)
	b, errB := colorful.Hex(end)
	if errA != nil || errB != nil {
		return start
	}

	if mode == ModeHSV {
		return hsvBlend(a, b, t)
	}
	mixed := colorful.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
	return mixed.Clamped().Hex()
}

// hsvBlend interpolates in HSV with hue normalized to [0,1) and wrapped
// onto the shorter arc before blending.
func hsvBlend(a, b colorful.Color, t float64) string {
	h1, s1, v1 := a.Hsv()
	h2, s2, v2 := b.Hsv()

	// Normalize hue from degrees to [0,1) turns.
	h1 /= 360
	h2 /= 360
	if d := h2 - h1; d > 0.5 {
		h2--
	} else if d < -0.5 {
		h2++
	}

	h := h1 + (h2-h1)*t
	h -= math.Floor(h) // re-wrap into [0,1)

	mixed := colorful.Hsv(h*360, s1+(s2-s1)*t, v1+(v2-v1)*t)
	return mixed.Clamped().Hex()
}
