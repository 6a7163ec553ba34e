package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Side identifies which goal a paddle defends
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// PaddleView is a read-only snapshot of a paddle, handed to the ball for collision checks
type PaddleView struct {
	Side   Side
	Column int
	Top    int
	Height int
}

// Occupies reports whether row lies within the occupied span [Top, Top+Height-1]
func (v PaddleView) Occupies(row int) bool {
	return row >= v.Top && row <= v.Top+v.Height-1
}

// FrontEdge returns the column directly in front of the paddle face
func (v PaddleView) FrontEdge() int {
	if v.Side == SideLeft {
		return v.Column + constants.FrontEdgeOffset
	}
	return v.Column - constants.FrontEdgeOffset
}

// Paddle is a vertical bar; Position is its top cell
// Move methods do not check bounds: callers test CanMoveUp / CanMoveDown first,
// so an illegal move is rejected rather than clamped
type Paddle struct {
	Side     Side
	Position vmath.Vec2
	Height   int
	Score    int

	canvas *render.Canvas
	style  tcell.Style
}

// NewPaddle creates a paddle; a nil canvas makes it headless
func NewPaddle(side Side, pos vmath.Vec2, height int, canvas *render.Canvas, style tcell.Style) *Paddle {
	return &Paddle{
		Side:     side,
		Position: pos,
		Height:   max(height, 1),
		canvas:   canvas,
		style:    style,
	}
}

// View returns a read-only snapshot
func (p *Paddle) View() PaddleView {
	return PaddleView{
		Side:   p.Side,
		Column: p.Position.X,
		Top:    p.Position.Y,
		Height: p.Height,
	}
}

// Bottom returns the last occupied row
func (p *Paddle) Bottom() int {
	return p.Position.Y + p.Height - 1
}

// Occupies reports whether row lies within the occupied span
func (p *Paddle) Occupies(row int) bool {
	return p.View().Occupies(row)
}

// FrontEdge returns the collision column
func (p *Paddle) FrontEdge() int {
	return p.View().FrontEdge()
}

// CanMoveUp reports whether the top row may rise without touching the border
func (p *Paddle) CanMoveUp() bool {
	return p.Position.Y > constants.BorderThickness
}

// CanMoveDown reports whether the bottom row may drop without touching the border
func (p *Paddle) CanMoveDown(surfaceHeight int) bool {
	return p.Position.Y+p.Height < surfaceHeight-constants.BorderThickness
}

// MoveUp shifts the span one row up, erasing the vacated bottom cell and drawing the new top cell
func (p *Paddle) MoveUp() {
	p.erase(p.Bottom())
	p.Position.Y--
	p.draw(p.Position.Y)
}

// MoveDown shifts the span one row down, erasing the vacated top cell and drawing the new bottom cell
func (p *Paddle) MoveDown() {
	p.erase(p.Position.Y)
	p.Position.Y++
	p.draw(p.Bottom())
}

// AutoTrack moves one row toward targetRow unless the span already covers it
// Constant speed, no prediction. Returns whether the paddle moved
func (p *Paddle) AutoTrack(targetRow, surfaceHeight int) bool {
	if p.Occupies(targetRow) {
		return false
	}
	if p.Position.Y < targetRow {
		if !p.CanMoveDown(surfaceHeight) {
			return false
		}
		p.MoveDown()
		return true
	}
	if !p.CanMoveUp() {
		return false
	}
	p.MoveUp()
	return true
}

// Render draws every occupied cell
func (p *Paddle) Render() {
	for row := p.Position.Y; row <= p.Bottom(); row++ {
		p.draw(row)
	}
}

func (p *Paddle) draw(row int) {
	if p.canvas != nil {
		p.canvas.Fill(p.Position.X, row, p.style)
	}
}

func (p *Paddle) erase(row int) {
	if p.canvas != nil {
		p.canvas.Erase(p.Position.X, row)
	}
}
