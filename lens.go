package lens

import "github.com/jakecoffman/cp"

// View is the renderer-facing capability set shared by the two camera
// variants: the visible frame, the pixel ratio, and the conversions between
// game units and viewport pixels. Camera solves its ratio from a target
// dimension; OldCamera is told its ratio by the caller. The differing update
// policies stay on the concrete types; a renderer that only reads holds a
// View.
type View interface {
	Frame() Frame
	PixelRatio() float64
	ToScreen(p cp.Vector) cp.Vector
	ToGame(p cp.Vector) cp.Vector
}
