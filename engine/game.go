package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/terminal"
	"github.com/lixenwraith/vi-pong/vmath"
)

// EventSource yields the next terminal event, or nil once timeout elapses
type EventSource interface {
	Poll(timeout time.Duration) tcell.Event
}

// Phase is the coarse loop state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseEnded
)

// Result is the final score handed back to the caller
type Result struct {
	Left  int
	Right int
}

func (r Result) String() string {
	return fmt.Sprintf(constants.SummaryLabel, r.Left, r.Right)
}

// Game owns the surface, both paddles and the ball, and drives the update cycle
// Everything is mutated from the goroutine calling Run/Step; no locking
type Game struct {
	cfg     Config
	canvas  *render.Canvas
	palette render.Palette
	events  EventSource
	decoder *input.Decoder
	clock   TimeProvider

	// Surface size in game columns and rows, border included
	Width, Height int

	Left  *components.Paddle
	Right *components.Paddle
	Ball  *components.Ball

	phase   Phase
	ballDue Deadline
	pollDue Deadline
}

// NewGame lays out a fresh round on a width x height surface
// width and height are surface dimensions, see terminal.SurfaceSize
func NewGame(cfg Config, canvas *render.Canvas, events EventSource, clock TimeProvider, width, height int) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width < constants.MinWidth || height < constants.MinHeight {
		return nil, fmt.Errorf("surface %dx%d is smaller than %dx%d", width, height, constants.MinWidth, constants.MinHeight)
	}
	if canvas == nil || events == nil || clock == nil {
		return nil, fmt.Errorf("canvas, event source and clock are required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	palette := render.DefaultPalette()
	paddleHeight := height / constants.PaddleHeightDivisor
	paddleTop := height/2 - height/constants.PaddleOffsetDivisor

	g := &Game{
		cfg:     cfg,
		canvas:  canvas,
		palette: palette,
		events:  events,
		decoder: input.NewDecoder(cfg.Keys),
		clock:   clock,
		Width:   width,
		Height:  height,
		Left: components.NewPaddle(components.SideLeft,
			vmath.V(cfg.Padding, paddleTop), paddleHeight, canvas, palette.LeftPaddle),
		Right: components.NewPaddle(components.SideRight,
			vmath.V(width-cfg.Padding-1, paddleTop), paddleHeight, canvas, palette.RightPaddle),
		Ball: components.NewBall(vmath.V(width/2, height/2), vmath.V(1, rng.Sign()),
			rng, canvas, palette.Ball),
		ballDue: NewDeadline("ball", time.Time{}),
		pollDue: NewDeadline("poll", time.Time{}),
	}
	return g, nil
}

// Phase returns the current loop phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns both score counters
func (g *Game) Score() Result {
	return Result{Left: g.Left.Score, Right: g.Right.Score}
}

// Start draws the initial frame and arms the ball deadline one interval out
func (g *Game) Start() {
	g.canvas.HideCursor()
	g.redraw()
	g.Ball.Render()
	g.canvas.Show()

	now := g.clock.Now()
	g.ballDue.Set(now.Add(g.cfg.TickInterval))
	g.pollDue.Set(now)

	log.Printf("Game started on %dx%d surface, paddle height %d", g.Width, g.Height, g.Left.Height)
}

// Run plays until an exit command, then shows the final score
func (g *Game) Run() Result {
	g.Start()
	for g.phase == PhasePlaying {
		g.Step()
	}
	return g.Finish()
}

// Step runs one loop iteration:
// ball tick if due, bounded input wait, command dispatch, autopilot, goal check, pass-through repair
// While the surface is below the minimum size play is suspended: the ball neither moves nor
// scores and only input is processed until a resize restores a legal size
func (g *Game) Step() {
	now := g.clock.Now()

	if g.Playable() && g.ballDue.Due(now) {
		g.Ball.Tick(g.Height, g.Left.View(), g.Right.View())
		g.ballDue.Set(now.Add(g.cfg.TickInterval))
	}

	// pollDue bounds every input wait; a running ball shortens it to its next tick
	g.pollDue.Set(now.Add(g.cfg.TickInterval))
	wake := g.pollDue
	if g.Playable() {
		wake = Earliest(g.pollDue, g.ballDue)
	}
	g.dispatch(g.decoder.Decode(g.events.Poll(wake.Remaining(now))))

	if g.phase == PhaseEnded || !g.Playable() {
		g.canvas.Show()
		return
	}

	g.autopilot(g.Left, g.cfg.LeftPilot)
	g.autopilot(g.Right, g.cfg.RightPilot)

	g.checkGoal()
	g.repairPassThrough()

	g.canvas.Show()
}

// Playable reports whether the surface is large enough for the ball to run
func (g *Game) Playable() bool {
	return g.Width >= constants.MinWidth && g.Height >= constants.MinHeight
}

// Finish clears the surface, centers the summary line and restores the cursor
func (g *Game) Finish() Result {
	g.phase = PhaseEnded
	result := g.Score()

	g.canvas.Clear()
	x, y := render.DrawSummary(g.canvas, g.Width, g.Height, result.Left, result.Right, g.palette)
	g.canvas.ShowCursor(x, y)
	g.canvas.Show()

	log.Printf("Game ended: %s", result)
	return result
}

// dispatch applies a decoded command
// Manual moves that would cross the border are dropped, never clamped
func (g *Game) dispatch(cmd input.Command) {
	switch cmd.Type {
	case input.CommandMoveUp:
		if g.Left.CanMoveUp() {
			g.Left.MoveUp()
		}
	case input.CommandMoveDown:
		if g.Left.CanMoveDown(g.Height) {
			g.Left.MoveDown()
		}
	case input.CommandResize:
		g.Resize(terminal.SurfaceSize(cmd.Width, cmd.Height))
	case input.CommandExit:
		g.phase = PhaseEnded
	}
}

// autopilot moves a computer-controlled paddle one row toward the ball when its policy allows
func (g *Game) autopilot(p *components.Paddle, policy AutopilotPolicy) {
	if policy.ShouldTrack(p.Side, g.Ball.Position.X, g.Width, g.Height) {
		p.AutoTrack(g.Ball.Position.Y, g.Height)
	}
}

// redraw repaints everything except the ball
func (g *Game) redraw() {
	g.canvas.Clear()
	render.DrawBorder(g.canvas, g.Width, g.Height, g.palette)
	render.DrawScore(g.canvas, g.Width, g.Left.Score, g.Right.Score, g.palette)
	g.Left.Render()
	g.Right.Render()
}
