package lens

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Follow moves position toward target by the given lerp factor and returns
// the new position. A lerp of 1 snaps immediately; lower values give
// smoother tracking. Call once per tick and assign the result back to the
// camera's Position.
func Follow(position, target cp.Vector, lerp float64) cp.Vector {
	return position.Add(target.Sub(position).Mult(lerp))
}

// ClampFrame returns the position closest to frame.Position that keeps the
// frame inside bounds. On an axis where bounds is narrower than the frame
// the result centers on bounds instead. Assign the result back to the
// camera's Position after moving it.
func ClampFrame(frame, bounds Frame) cp.Vector {
	halfW := frame.Width / 2
	halfH := frame.Height / 2

	minX := bounds.Left() + halfW
	maxX := bounds.Right() - halfW
	minY := bounds.Bottom() + halfH
	maxY := bounds.Top() - halfH

	p := frame.Position
	if minX > maxX {
		p.X = bounds.Position.X
	} else {
		p.X = math.Max(minX, math.Min(p.X, maxX))
	}
	if minY > maxY {
		p.Y = bounds.Position.Y
	} else {
		p.Y = math.Max(minY, math.Min(p.Y, maxY))
	}
	return p
}

// Scroll animates a camera position between two game-unit points. The two
// axes tween independently so either can finish first on reuse of a partly
// advanced tween.
type Scroll struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
	at     cp.Vector
}

// NewScroll starts a scroll from one position to another over duration
// seconds, shaped by easeFn (ease.Linear for constant speed).
func NewScroll(from, to cp.Vector, duration float32, easeFn ease.TweenFunc) *Scroll {
	return &Scroll{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, easeFn),
		at:     from,
	}
}

// Update advances the scroll by dt seconds and returns the current position
// and whether the scroll has finished. After finishing it keeps returning
// the destination.
func (s *Scroll) Update(dt float32) (cp.Vector, bool) {
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		s.at.X = float64(val)
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		s.at.Y = float64(val)
		s.doneY = done
	}
	return s.at, s.doneX && s.doneY
}
