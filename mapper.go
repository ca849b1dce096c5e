package lens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Mapper converts points between game units and viewport pixels for a frame
// rendered at a given pixel ratio. Both camera variants hand one out from
// their Mapper method; it is a plain value, cheap to rebuild every frame.
type Mapper struct {
	Frame      Frame
	PixelRatio float64
}

// ToScreen converts a game-unit point to a viewport pixel point. The y axis
// flips: game-unit y grows upward and pixel y grows downward, so the top
// edge of the frame lands on pixel y 0.
func (m Mapper) ToScreen(p cp.Vector) cp.Vector {
	return cp.Vector{X: p.X - m.Frame.Left(), Y: m.Frame.Top() - p.Y}.Mult(m.PixelRatio)
}

// ToGame converts a viewport pixel point to a game-unit point: scale from
// pixels down to game units first, then reposition against the frame edges.
// ToGame and ToScreen are exact inverses up to floating-point rounding.
func (m Mapper) ToGame(p cp.Vector) cp.Vector {
	scaled := p.Mult(1 / m.PixelRatio)
	return cp.Vector{X: m.Frame.Left() + scaled.X, Y: m.Frame.Top() - scaled.Y}
}

// GeoM returns the ebiten draw transform equivalent to ToScreen, for mapping
// game-unit-space geometry into draw calls in one multiply.
func (m Mapper) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(m.PixelRatio, -m.PixelRatio)
	g.Translate(-m.Frame.Left()*m.PixelRatio, m.Frame.Top()*m.PixelRatio)
	return g
}
