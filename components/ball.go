package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

// SignSource supplies a uniformly chosen -1 or +1
type SignSource interface {
	Sign() int
}

// Ball is the single moving cell
// Velocity components are always -1 or +1; ticks only ever change their sign
type Ball struct {
	Position vmath.Vec2
	Velocity vmath.Vec2

	previous vmath.Vec2
	rng      SignSource
	canvas   *render.Canvas
	style    tcell.Style
}

// NewBall creates a ball; a nil canvas makes it headless
func NewBall(pos, vel vmath.Vec2, rng SignSource, canvas *render.Canvas, style tcell.Style) *Ball {
	return &Ball{
		Position: pos,
		Velocity: vmath.V(vmath.Sign(vel.X), vmath.Sign(vel.Y)),
		previous: pos,
		rng:      rng,
		canvas:   canvas,
		style:    style,
	}
}

// Previous returns the position before the last tick or reset
func (b *Ball) Previous() vmath.Vec2 {
	return b.previous
}

// Tick advances the ball one cell
// Order: erase current cell, resolve collisions on the pre-move position, step, draw
func (b *Ball) Tick(surfaceHeight int, left, right PaddleView) {
	b.erase()
	b.resolveCollision(surfaceHeight, left, right)
	b.previous = b.Position
	b.Position = b.Position.Add(b.Velocity)
	b.Render()
}

// resolveCollision flips at most one velocity component, first match wins:
// top/bottom wall, then left paddle face, then right paddle face.
// A paddle face only reflects a ball heading into it, and only when the paddle
// covers the ball's row; a miss lets the ball run on toward the goal
func (b *Ball) resolveCollision(surfaceHeight int, left, right PaddleView) {
	row, col := b.Position.Y, b.Position.X

	switch {
	case row <= constants.WallMargin && b.Velocity.Y < 0,
		row >= surfaceHeight-1-constants.WallMargin && b.Velocity.Y > 0:
		b.Velocity = b.Velocity.FlipY()

	case col == left.FrontEdge() && b.Velocity.X < 0:
		if left.Occupies(row) {
			b.Velocity = b.Velocity.FlipX()
		}

	case col == right.FrontEdge() && b.Velocity.X > 0:
		if right.Occupies(row) {
			b.Velocity = b.Velocity.FlipX()
		}
	}
}

// Reset recenters the ball on a width x height surface, reverses its horizontal
// direction and picks a fresh vertical direction
func (b *Ball) Reset(width, height int) {
	b.erase()
	b.Position = vmath.V(width/2, height/2)
	b.previous = b.Position
	b.Velocity = vmath.V(-b.Velocity.X, b.rng.Sign())
}

// Place moves the ball without erasing or drawing, forgetting its previous position
func (b *Ball) Place(pos vmath.Vec2) {
	b.Position = pos
	b.previous = pos
}

// OccupiesRow reports whether the ball's row lies within the paddle's span
func (b *Ball) OccupiesRow(p PaddleView) bool {
	return p.Occupies(b.Position.Y)
}

// Render draws the ball at its position
func (b *Ball) Render() {
	if b.canvas != nil {
		b.canvas.Fill(b.Position.X, b.Position.Y, b.style)
	}
}

func (b *Ball) erase() {
	if b.canvas != nil {
		b.canvas.Erase(b.Position.X, b.Position.Y)
	}
}
