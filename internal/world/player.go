package world

import (
	"math"

	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

// Update advances the player by dt seconds.
//
// Moving into a column taller than the player turns horizontal motion into
// a climb in the same direction. The climb continues until the player clears
// the column top or reverses, at which point the player snaps onto the
// column. Moves into x without materialized terrain are cancelled. Gravity
// pulls the player down at Speed until it lands on the surface.
func (w *World) Update(in core.InputState, dt float64) {
	if dt <= 0 {
		return
	}
	step := Speed * dt
	p := &w.player

	if dir := in.Direction(); dir != 0 {
		// World x decreases when moving right.
		dx := -float64(dir) * step
		dy := 0.0

		h := w.height(p.Pos.X)
		if p.Pos.Y+math.Abs(dx) < h && (p.ClimbDirection == dir || p.ClimbDirection == 0) {
			p.ClimbDirection = dir
			dy = math.Abs(dx)
			dx = 0
		} else {
			if p.Pos.Y <= h {
				p.Pos.Y = h
			}
			p.ClimbDirection = 0
		}

		if dx != 0 && !w.inRange(p.Pos.X+dx) {
			dx = 0
		}
		p.Pos = p.Pos.Add(core.Vec2{X: dx, Y: dy})
	}

	h := w.height(p.Pos.X)
	if h == terrain.OutOfRange {
		return
	}
	if p.Pos.Y > h {
		// Falls stop on the surface instead of sinking a partial step into it.
		p.Pos.Y = math.Max(p.Pos.Y-step, h)
	}
}
