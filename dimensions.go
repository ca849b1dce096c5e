package lens

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when a dimension solve is given zero or two
// target dimensions instead of exactly one.
var ErrInvalidTarget = errors.New("exactly one target dimension must be set")

// Target selects the game-unit extent a dimension solve aims for. Exactly
// one field must be non-zero: a viewport can only be fit to one axis at a
// time, and the other axis follows from the shared pixel ratio.
type Target struct {
	Width  float64
	Height float64
}

// Dimensions is a consistent pixel-ratio/width/height triple for a viewport.
// PixelRatio is a whole number of pixels per game unit; Width and Height are
// the realized game-unit extents, both derived from that one ratio.
type Dimensions struct {
	PixelRatio int
	Width      float64
	Height     float64
}

// Solve computes Dimensions for a viewport of the given pixel size, fit to
// one target game-unit extent.
//
// The target is an aim, not a promise. The ratio is truncated toward zero to
// whole pixels per game unit, so the realized extent can come out slightly
// larger than asked: an 800-pixel-wide viewport with a width target of 7
// solves to ratio 114 and width 800/114 ~ 7.018. The extent on the other
// axis is a consequence of the shared ratio, not a free choice.
//
// Targets must be positive and no larger than the pixel extent of their
// axis. Solve does not defend against degenerate values; only the
// exactly-one-target rule is checked.
func Solve(viewportW, viewportH int, t Target) (Dimensions, error) {
	switch {
	case t.Width != 0 && t.Height != 0:
		return Dimensions{}, fmt.Errorf("lens: width and height targets both set: %w", ErrInvalidTarget)
	case t.Width != 0:
		return solve(viewportW, viewportH, float64(viewportW)/t.Width), nil
	case t.Height != 0:
		return solve(viewportW, viewportH, float64(viewportH)/t.Height), nil
	default:
		return Dimensions{}, fmt.Errorf("lens: no target dimension set: %w", ErrInvalidTarget)
	}
}

// solve truncates the raw pixels-per-unit quotient and derives both extents
// from the shared ratio.
func solve(viewportW, viewportH int, pixelsPerUnit float64) Dimensions {
	ratio := int(pixelsPerUnit)
	return Dimensions{
		PixelRatio: ratio,
		Width:      float64(viewportW) / float64(ratio),
		Height:     float64(viewportH) / float64(ratio),
	}
}
