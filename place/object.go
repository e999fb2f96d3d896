package place

import "github.com/katalvlaran/cloner/core"

// Object is the clone-to-mesh-features mode. It is part of the
// configuration union but intentionally generates nothing: placement on
// vertices/edges/faces needs mesh topology owned by the external
// renderer, which never crosses this engine's boundary. Returning an
// empty list keeps the gap visible instead of silently faking it.
func Object(ObjectOptions) []core.Instance {
	return []core.Instance{}
}
