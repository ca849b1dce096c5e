// Package lens is a 2D camera and viewport geometry library for [Ebitengine]
// games.
//
// lens maps between the two coordinate spaces every 2D game juggles: game
// units, the resolution-independent logical space gameplay code works in,
// and screen pixels, the space the renderer draws in. It keeps the
// viewport's pixel dimensions, the pixel-to-game-unit ratio, the visible
// game-unit extents, and the camera position consistent with one another,
// and answers the visibility and framing queries a renderer asks each frame.
//
// # Quick start
//
// Create a camera from the viewport's pixel size and the game-unit width you
// want on screen, then hand its transform to your draw calls:
//
//	cam, err := lens.NewCamera(800, 600, lens.Target{Width: 8})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Each frame:
//	cam.Position = player.Position()
//	op := &ebiten.DrawImageOptions{GeoM: cam.GeoM()}
//	screen.DrawImage(world, op)
//
// The requested width is a target, not a guarantee: the pixel ratio is
// truncated to a whole number of pixels per game unit and the realized
// extents follow from that ratio. Read them back with [Camera.Width] and
// [Camera.Height], or see [Solve] for the exact rule.
//
// # Two camera variants
//
// [Camera] solves its integer pixel ratio from the viewport size and one
// target dimension; [Camera.SetWidth] and [Camera.SetHeight] re-solve the
// ratio holding the other axis's pixel count fixed. [OldCamera] is the
// legacy variant kept for projects that supply their own floating-point
// pixel ratio and mutate viewport dimensions independently. Both implement
// [View], the capability set renderers consume; pick one at construction
// rather than switching mid-scene.
//
// # Orientation
//
// Game-unit y grows upward; pixel y grows downward. [Mapper.ToScreen] and
// [Mapper.ToGame] perform the flip, and [Frame] edges follow the game-unit
// convention (Top is the largest visible y).
//
// Positions, points, and corners are cp.Vector values from
// github.com/jakecoffman/cp, so cameras plug into a Chipmunk physics space
// without conversion.
//
// Camera framing can be described in YAML and tuned while the game runs;
// see the preset subpackage.
//
// [Ebitengine]: https://ebitengine.org
package lens
