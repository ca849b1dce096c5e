package lens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// OldCamera is the legacy camera variant. Unlike Camera it never solves for
// a ratio: the caller supplies pixels-per-game-unit directly as a float and
// may retune it at any time, and the viewport's pixel width and height are
// mutated independently of each other. Frame extents are derived from the
// current ratio on every access rather than stored.
//
// It also carries the viewport's placement inside the window: ViewportOrigin
// is the top-left pixel of the render surface, and PointInViewport tests raw
// window pixels against it. Nothing else here reads the origin; frame math
// is origin-independent.
//
// New code should prefer Camera. OldCamera stays for scenes tuned against a
// hand-picked fractional ratio, which Camera's whole-number solve cannot
// represent.
type OldCamera struct {
	// Position is the game-unit point the frame centers on.
	Position cp.Vector
	// ViewportOrigin is the viewport's top-left pixel within the window.
	ViewportOrigin cp.Vector

	viewportWidth  int
	viewportHeight int
	pixelRatio     float64
	viewportOffset cp.Vector // cached half viewport size, kept in sync by the setters
}

// NewOldCamera creates an OldCamera with the given viewport placement and
// pixel size and a caller-chosen pixels-per-game-unit ratio. Position starts
// at the origin. The conventional arguments are (0, 0, 800, 600, 64).
func NewOldCamera(originX, originY, viewportW, viewportH int, pixelRatio float64) *OldCamera {
	c := &OldCamera{
		ViewportOrigin: cp.Vector{X: float64(originX), Y: float64(originY)},
		viewportWidth:  viewportW,
		viewportHeight: viewportH,
		pixelRatio:     pixelRatio,
	}
	c.syncOffset()
	return c
}

// syncOffset recomputes the cached half-viewport vector. Every mutation of a
// viewport dimension must call this before returning, so the cache is never
// observable stale.
func (c *OldCamera) syncOffset() {
	c.viewportOffset = cp.Vector{
		X: float64(c.viewportWidth) / 2,
		Y: float64(c.viewportHeight) / 2,
	}
}

// ViewportWidth returns the viewport's pixel width.
func (c *OldCamera) ViewportWidth() int { return c.viewportWidth }

// SetViewportWidth sets the viewport's pixel width and refreshes the cached
// offset. The height is untouched.
func (c *OldCamera) SetViewportWidth(w int) {
	c.viewportWidth = w
	c.syncOffset()
}

// ViewportHeight returns the viewport's pixel height.
func (c *OldCamera) ViewportHeight() int { return c.viewportHeight }

// SetViewportHeight sets the viewport's pixel height and refreshes the
// cached offset. The width is untouched.
func (c *OldCamera) SetViewportHeight(h int) {
	c.viewportHeight = h
	c.syncOffset()
}

// ViewportOffset returns half the viewport's pixel dimensions as a vector.
// It always reflects the current width and height.
func (c *OldCamera) ViewportOffset() cp.Vector { return c.viewportOffset }

// PixelRatio returns the caller-supplied pixels-per-game-unit ratio.
func (c *OldCamera) PixelRatio() float64 { return c.pixelRatio }

// SetPixelRatio replaces the pixels-per-game-unit ratio. Frame extents and
// conversions pick it up immediately.
func (c *OldCamera) SetPixelRatio(r float64) { c.pixelRatio = r }

// Frame returns the visible game-unit rectangle. The extents are derived
// from the viewport size and ratio at call time, so they track every
// SetViewportWidth, SetViewportHeight, and SetPixelRatio.
func (c *OldCamera) Frame() Frame {
	return Frame{
		Position: c.Position,
		Width:    float64(c.viewportWidth) / c.pixelRatio,
		Height:   float64(c.viewportHeight) / c.pixelRatio,
	}
}

// PointInViewport reports whether a raw window pixel point falls on the
// render surface, edges included. This is a pixel-space test against
// ViewportOrigin and the viewport size; for game-unit visibility use
// Frame().Contains.
func (c *OldCamera) PointInViewport(p cp.Vector) bool {
	return c.ViewportOrigin.X <= p.X && p.X <= c.ViewportOrigin.X+float64(c.viewportWidth) &&
		c.ViewportOrigin.Y <= p.Y && p.Y <= c.ViewportOrigin.Y+float64(c.viewportHeight)
}

// InFrame reports whether an entity's game-unit bounds overlap or touch the
// frame. See Frame.Overlaps for the boundary behavior.
func (c *OldCamera) InFrame(b Bounded) bool {
	return c.Frame().Overlaps(b)
}

// Mapper returns the coordinate mapper for the current frame and ratio.
func (c *OldCamera) Mapper() Mapper {
	return Mapper{Frame: c.Frame(), PixelRatio: c.pixelRatio}
}

// ToScreen converts a game-unit point to a viewport pixel point.
func (c *OldCamera) ToScreen(p cp.Vector) cp.Vector { return c.Mapper().ToScreen(p) }

// ToGame converts a viewport pixel point to a game-unit point.
func (c *OldCamera) ToGame(p cp.Vector) cp.Vector { return c.Mapper().ToGame(p) }

// GeoM returns the ebiten draw transform from game-unit space to the
// viewport's pixel space.
func (c *OldCamera) GeoM() ebiten.GeoM { return c.Mapper().GeoM() }
