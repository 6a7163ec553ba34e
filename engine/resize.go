package engine

import (
	"log"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Resize adapts the round to a new surface size
// Rows and the ball column are mapped proportionally (ceil) from the old extent to the new one,
// so relative positions survive. The left paddle stays at the padding column and the right
// paddle is re-anchored against the new right border. Entities pushed out of their legal
// range by rounding or a very small surface are clamped back in.
// A surface below MinWidth x MinHeight suspends play until a later resize restores it.
func (g *Game) Resize(width, height int) {
	wasPlayable := g.Playable()
	oldExtent := vmath.V(g.Width, g.Height)
	newExtent := vmath.V(width, height)

	paddleHeight := max(height/constants.PaddleHeightDivisor, 1)

	g.Left.Height = paddleHeight
	g.Left.Position = vmath.V(g.cfg.Padding, vmath.Rescale(g.Left.Position.Y, g.Height, height))

	g.Right.Height = paddleHeight
	g.Right.Position = vmath.V(width-g.cfg.Padding-1, vmath.Rescale(g.Right.Position.Y, g.Height, height))

	g.Ball.Place(vmath.RescaleVec(g.Ball.Position, oldExtent, newExtent))

	g.Width, g.Height = width, height
	g.clampPaddle(g.Left)
	g.clampPaddle(g.Right)
	g.clampBall()

	g.redraw()
	g.Ball.Render()

	switch {
	case wasPlayable && !g.Playable():
		log.Printf("Surface %v below %dx%d, play suspended", newExtent, constants.MinWidth, constants.MinHeight)
	case !wasPlayable && g.Playable():
		// Ball interval restarts on resume
		g.ballDue.Set(g.clock.Now().Add(g.cfg.TickInterval))
		log.Printf("Surface %v playable again, play resumed", newExtent)
	}

	log.Printf("Resized %v -> %v, paddle height %d", oldExtent, newExtent, paddleHeight)
}

// clampPaddle keeps the span inside rows [1, height-2]
func (g *Game) clampPaddle(p *components.Paddle) {
	inner := g.Height - 2*constants.BorderThickness
	p.Height = vmath.Clamp(p.Height, 1, max(inner, 1))
	lowest := g.Height - constants.BorderThickness - p.Height
	p.Position.Y = vmath.Clamp(p.Position.Y, constants.BorderThickness, lowest)
}

// clampBall keeps the ball inside the rows it can bounce in and short of both goal thresholds
func (g *Game) clampBall() {
	pos := g.Ball.Position
	pos.X = vmath.Clamp(pos.X, constants.GoalMargin, g.Width-constants.GoalMargin-1)
	pos.Y = vmath.Clamp(pos.Y, constants.WallMargin, g.Height-1-constants.WallMargin)
	g.Ball.Place(pos)
}
