package engine

import (
	"log"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
)

// checkGoal scores a ball that crossed a goal threshold and starts the next round
// The thresholds are disjoint for any width >= MinWidth, so at most one side scores
func (g *Game) checkGoal() (scorer *components.Paddle) {
	col := g.Ball.Position.X

	switch {
	case col < constants.GoalMargin:
		scorer = g.Right
	case col > g.Width-constants.GoalMargin-1:
		scorer = g.Left
	default:
		return nil
	}

	scorer.Score++
	g.Ball.Reset(g.Width, g.Height)
	g.Ball.Render()
	render.DrawScore(g.canvas, g.Width, g.Left.Score, g.Right.Score, g.palette)

	log.Printf("Goal for %s side at column %d, score %d:%d", scorer.Side, col, g.Left.Score, g.Right.Score)
	return scorer
}

// repairPassThrough redraws a paddle the ball has been drawn over or erased part of
// Both sides use one rule: the ball is within one cell width of the paddle column,
// is not on the front edge, and its current or previous row lies in the span
func (g *Game) repairPassThrough() {
	for _, p := range []*components.Paddle{g.Left, g.Right} {
		if g.overlapsPaddle(p) {
			p.Render()
		}
	}
}

func (g *Game) overlapsPaddle(p *components.Paddle) bool {
	col := g.Ball.Position.X
	if col == p.FrontEdge() {
		return false
	}
	dx := col - p.Position.X
	if dx < -constants.CellWidth || dx > constants.CellWidth {
		return false
	}
	return p.Occupies(g.Ball.Position.Y) || p.Occupies(g.Ball.Previous().Y)
}
