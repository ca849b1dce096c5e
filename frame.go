package lens

import "github.com/jakecoffman/cp"

// Bounded is a read-only view of axis-aligned bounds in game units. Sprites
// and other entities expose their extents through it for framing queries;
// Frame implements it too, so frames can be tested against each other.
type Bounded interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Frame is the axis-aligned rectangle, in game units, visible through a
// camera. Position is the center of the rectangle. Game-unit y grows upward,
// so Top is the largest visible y, the opposite of pixel space.
type Frame struct {
	Position      cp.Vector
	Width, Height float64
}

// Left returns the smallest visible x.
func (f Frame) Left() float64 { return f.Position.X - f.Width/2 }

// Right returns the largest visible x.
func (f Frame) Right() float64 { return f.Position.X + f.Width/2 }

// Top returns the largest visible y.
func (f Frame) Top() float64 { return f.Position.Y + f.Height/2 }

// Bottom returns the smallest visible y.
func (f Frame) Bottom() float64 { return f.Position.Y - f.Height/2 }

// TopLeft returns the top-left corner.
func (f Frame) TopLeft() cp.Vector { return cp.Vector{X: f.Left(), Y: f.Top()} }

// TopRight returns the top-right corner.
func (f Frame) TopRight() cp.Vector { return cp.Vector{X: f.Right(), Y: f.Top()} }

// BottomLeft returns the bottom-left corner.
func (f Frame) BottomLeft() cp.Vector { return cp.Vector{X: f.Left(), Y: f.Bottom()} }

// BottomRight returns the bottom-right corner.
func (f Frame) BottomRight() cp.Vector { return cp.Vector{X: f.Right(), Y: f.Bottom()} }

// Contains reports whether the point lies inside the frame. Points exactly
// on an edge are inside.
func (f Frame) Contains(p cp.Vector) bool {
	return f.Left() <= p.X && p.X <= f.Right() &&
		f.Bottom() <= p.Y && p.Y <= f.Top()
}

// Overlaps reports whether b overlaps the frame. This is an overlap test,
// not containment: boxes that only touch an edge count, which is what
// culling wants for sprites that extend beyond a single point.
func (f Frame) Overlaps(b Bounded) bool {
	return f.Left() <= b.Right() && f.Right() >= b.Left() &&
		f.Top() >= b.Bottom() && f.Bottom() <= b.Top()
}
