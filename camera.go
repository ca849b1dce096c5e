package lens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Camera maps a scene's game-unit space onto a pixel viewport. One camera is
// created per scene/renderer pairing and mutated in place for the scene's
// lifetime: gameplay code moves Position, the renderer reads the frame, the
// ratio, and the coordinate conversions every frame.
//
// The viewport pixel size and the last-chosen target dimension are the
// source of truth; the pixel ratio and both game-unit extents are derived
// from them by Solve and change only through SetWidth, SetHeight,
// SetDimensions, or Resize. The ratio is a whole number of pixels per game
// unit, so a requested extent is a target, not a promise; read the realized
// values back with Width and Height.
type Camera struct {
	// Position is the game-unit point the frame centers on. Scene code
	// sets it freely between frames.
	Position cp.Vector

	viewportW int
	viewportH int
	target    Target     // the dimension the last solve was asked for
	dims      Dimensions // derived: solved ratio and realized extents
}

// NewCamera creates a Camera for a viewport of the given pixel size, fit to
// one target game-unit dimension. Position starts at the origin. The error
// wraps ErrInvalidTarget when t sets zero or two dimensions.
func NewCamera(viewportW, viewportH int, t Target) (*Camera, error) {
	dims, err := Solve(viewportW, viewportH, t)
	if err != nil {
		return nil, err
	}
	return &Camera{
		viewportW: viewportW,
		viewportH: viewportH,
		target:    t,
		dims:      dims,
	}, nil
}

// ViewportWidth returns the viewport's pixel width.
func (c *Camera) ViewportWidth() int { return c.viewportW }

// ViewportHeight returns the viewport's pixel height.
func (c *Camera) ViewportHeight() int { return c.viewportH }

// Dimensions returns the solved triple: the integer pixel ratio and the
// realized game-unit extents derived from it.
func (c *Camera) Dimensions() Dimensions { return c.dims }

// Width returns the realized game-unit width of the visible frame.
func (c *Camera) Width() float64 { return c.dims.Width }

// Height returns the realized game-unit height of the visible frame.
func (c *Camera) Height() float64 { return c.dims.Height }

// PixelRatio returns the solved pixels-per-game-unit ratio. For this variant
// it is always a whole number; Dimensions carries the exact integer.
func (c *Camera) PixelRatio() float64 { return float64(c.dims.PixelRatio) }

// SetWidth re-solves the dimensions so the frame shows about target game
// units across, holding the viewport's pixel width fixed. The height follows
// from the shared ratio and will change too.
func (c *Camera) SetWidth(target float64) error {
	return c.SetDimensions(Target{Width: target})
}

// SetHeight re-solves the dimensions so the frame shows about target game
// units vertically, holding the viewport's pixel height fixed. The width
// follows from the shared ratio and will change too.
func (c *Camera) SetHeight(target float64) error {
	return c.SetDimensions(Target{Height: target})
}

// SetDimensions re-solves the ratio and extents for one target dimension.
// When t sets zero or two dimensions the camera is left untouched and the
// error wraps ErrInvalidTarget.
func (c *Camera) SetDimensions(t Target) error {
	dims, err := Solve(c.viewportW, c.viewportH, t)
	if err != nil {
		return err
	}
	c.target = t
	c.dims = dims
	return nil
}

// Resize records a new viewport pixel size and re-solves with the retained
// target, so queries after a window resize never see stale dimensions.
func (c *Camera) Resize(viewportW, viewportH int) {
	c.viewportW = viewportW
	c.viewportH = viewportH
	// The stored target always has exactly one dimension set, so Solve
	// cannot fail here.
	c.dims, _ = Solve(viewportW, viewportH, c.target)
}

// Frame returns the visible game-unit rectangle, centered on Position.
func (c *Camera) Frame() Frame {
	return Frame{Position: c.Position, Width: c.dims.Width, Height: c.dims.Height}
}

// PointVisible reports whether a game-unit point is in view. Points exactly
// on a frame edge are visible.
func (c *Camera) PointVisible(p cp.Vector) bool {
	return c.Frame().Contains(p)
}

// Mapper returns the coordinate mapper for the current frame and ratio.
func (c *Camera) Mapper() Mapper {
	return Mapper{Frame: c.Frame(), PixelRatio: c.PixelRatio()}
}

// ToScreen converts a game-unit point to a viewport pixel point.
func (c *Camera) ToScreen(p cp.Vector) cp.Vector { return c.Mapper().ToScreen(p) }

// ToGame converts a viewport pixel point to a game-unit point.
func (c *Camera) ToGame(p cp.Vector) cp.Vector { return c.Mapper().ToGame(p) }

// GeoM returns the ebiten draw transform from game-unit space to the
// viewport's pixel space.
func (c *Camera) GeoM() ebiten.GeoM { return c.Mapper().GeoM() }
