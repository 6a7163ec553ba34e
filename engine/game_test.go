package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// scriptedEvents hands out queued events instantly; a nil entry or an empty queue
// behaves like an expired wait and advances the mock clock by the full timeout
type scriptedEvents struct {
	clock *MockTimeProvider
	queue []tcell.Event
	waits []time.Duration
}

func (s *scriptedEvents) Poll(timeout time.Duration) tcell.Event {
	s.waits = append(s.waits, timeout)
	if len(s.queue) > 0 {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		if ev != nil {
			return ev
		}
	}
	s.clock.Advance(timeout)
	return nil
}

type testGame struct {
	*Game
	screen tcell.SimulationScreen
	events *scriptedEvents
	clock  *MockTimeProvider
}

func newTestGame(t *testing.T, cfg Config, width, height int) *testGame {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width+constants.CellWidth-1, height)

	clock := NewMockTimeProvider(testStart)
	events := &scriptedEvents{clock: clock}
	canvas := render.NewCanvas(screen, tcell.StyleDefault)

	if cfg.Seed == 0 {
		cfg.Seed = 7
	}
	g, err := NewGame(cfg, canvas, events, clock, width, height)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return &testGame{Game: g, screen: screen, events: events, clock: clock}
}

func (tg *testGame) push(evs ...tcell.Event) {
	tg.events.queue = append(tg.events.queue, evs...)
}

func (tg *testGame) bgAt(x, y int) tcell.Color {
	_, _, style, _ := tg.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func keyEvent(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestNewGameLayout(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)

	if g.Left.Position != vmath.V(5, 9) || g.Left.Height != 6 {
		t.Errorf("Left paddle: expected (5,9) height 6, got %v height %d", g.Left.Position, g.Left.Height)
	}
	if g.Right.Position != vmath.V(73, 9) || g.Right.Height != 6 {
		t.Errorf("Right paddle: expected (73,9) height 6, got %v height %d", g.Right.Position, g.Right.Height)
	}
	if g.Ball.Position != vmath.V(39, 12) {
		t.Errorf("Ball: expected (39,12), got %v", g.Ball.Position)
	}
	if !g.Ball.Velocity.IsUnitStep() || g.Ball.Velocity.X != 1 {
		t.Errorf("Ball velocity: expected (1,±1), got %v", g.Ball.Velocity)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Expected playing phase, got %v", g.Phase())
	}
}

func TestNewGameErrors(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	canvas := render.NewCanvas(screen, tcell.StyleDefault)
	clock := NewMockTimeProvider(testStart)
	events := &scriptedEvents{clock: clock}

	cfg := DefaultConfig()
	cfg.TickInterval = 0
	if _, err := NewGame(cfg, canvas, events, clock, 79, 24); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for zero interval, got %v", err)
	}

	if _, err := NewGame(DefaultConfig(), canvas, events, clock, 10, 24); err == nil {
		t.Error("Expected error for a surface narrower than the minimum")
	}

	if _, err := NewGame(DefaultConfig(), nil, events, clock, 79, 24); err == nil {
		t.Error("Expected error for a missing canvas")
	}
}

func TestStartDrawsFrame(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()

	p := render.DefaultPalette()
	_, border, _ := p.Border.Decompose()
	_, left, _ := p.LeftPaddle.Decompose()
	_, right, _ := p.RightPaddle.Decompose()
	_, ball, _ := p.Ball.Decompose()

	if got := g.bgAt(0, 5); got != border {
		t.Error("Left border not drawn")
	}
	if got := g.bgAt(78, 5); got != border {
		t.Error("Right border not drawn")
	}
	for row := 9; row <= 14; row++ {
		if g.bgAt(5, row) != left {
			t.Errorf("Left paddle row %d not drawn", row)
		}
		if g.bgAt(73, row) != right {
			t.Errorf("Right paddle row %d not drawn", row)
		}
	}
	if g.bgAt(39, 12) != ball {
		t.Error("Ball not drawn")
	}
}

// Scenario: 80x24, ball centered at (40,12) with velocity (1,1) moves to (41,13) once the interval elapses
func TestStepBallCadence(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	g.Ball.Place(vmath.V(40, 12))
	g.Ball.Velocity = vmath.V(1, 1)
	g.Start()

	// First iteration: interval not yet elapsed, the wait runs out the full interval
	g.Step()
	if g.Ball.Position != vmath.V(40, 12) {
		t.Fatalf("Ball moved before the interval elapsed: %v", g.Ball.Position)
	}
	if g.events.waits[0] != constants.TickInterval {
		t.Errorf("Expected first wait %v, got %v", constants.TickInterval, g.events.waits[0])
	}

	g.Step()
	if g.Ball.Position != vmath.V(41, 13) {
		t.Errorf("Expected (41,13) after one interval, got %v", g.Ball.Position)
	}
	if g.Ball.Velocity != vmath.V(1, 1) {
		t.Errorf("Velocity changed without collision: %v", g.Ball.Velocity)
	}
}

func TestStepBallCadenceIndependentOfInput(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	g.Ball.Place(vmath.V(40, 12))
	g.Ball.Velocity = vmath.V(1, 1)
	g.Start()

	// A burst of instant key events must not advance the ball
	g.push(keyEvent(tcell.KeyUp), keyEvent(tcell.KeyDown), keyEvent(tcell.KeyUp))
	for i := 0; i < 3; i++ {
		g.Step()
	}
	if g.Ball.Position != vmath.V(40, 12) {
		t.Fatalf("Ball advanced on input alone: %v", g.Ball.Position)
	}

	// Half an interval has passed; the next wait only covers the remainder
	g.clock.Advance(constants.TickInterval / 2)
	g.Step()
	if got := g.events.waits[len(g.events.waits)-1]; got != constants.TickInterval/2 {
		t.Errorf("Expected wait trimmed to the ball deadline (%v), got %v", constants.TickInterval/2, got)
	}

	g.Step()
	if g.Ball.Position != vmath.V(41, 13) {
		t.Errorf("Expected exactly one tick, got %v", g.Ball.Position)
	}
}

func TestStepManualMoves(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()

	g.push(keyEvent(tcell.KeyUp))
	g.Step()
	if g.Left.Position.Y != 8 {
		t.Errorf("Expected left paddle at row 8 after up, got %d", g.Left.Position.Y)
	}

	g.push(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	g.Step()
	if g.Left.Position.Y != 9 {
		t.Errorf("Expected left paddle at row 9 after down, got %d", g.Left.Position.Y)
	}
}

func TestStepManualMovesRejectedAtBorder(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()

	g.Left.Position.Y = 1
	g.push(keyEvent(tcell.KeyUp))
	g.Step()
	if g.Left.Position.Y != 1 {
		t.Errorf("Move into the top border must be rejected, paddle at %d", g.Left.Position.Y)
	}

	g.Left.Position.Y = 24 - 1 - g.Left.Height
	g.push(keyEvent(tcell.KeyDown))
	g.Step()
	if g.Left.Position.Y != 17 {
		t.Errorf("Move into the bottom border must be rejected, paddle at %d", g.Left.Position.Y)
	}
	if g.Left.Height != 6 {
		t.Errorf("Paddle height changed: %d", g.Left.Height)
	}
}

func TestStepIgnoresUnboundInput(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()
	before := g.Left.Position

	g.push(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	for i := 0; i < 3; i++ {
		g.Step()
	}

	if g.Left.Position != before {
		t.Errorf("Unbound or no-op keys moved the paddle: %v -> %v", before, g.Left.Position)
	}
	if g.Phase() != PhasePlaying {
		t.Error("Unbound keys ended the game")
	}
}

func TestRunExit(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Left.Score = 3
	g.Right.Score = 5

	g.push(nil, keyEvent(tcell.KeyEscape))
	result := g.Run()

	if result != (Result{Left: 3, Right: 5}) {
		t.Errorf("Expected 3:5, got %v", result)
	}
	if g.Phase() != PhaseEnded {
		t.Error("Expected ended phase after exit")
	}
	if len(g.events.waits) != 2 {
		t.Errorf("Expected the loop to stop right after the exit iteration, polled %d times", len(g.events.waits))
	}

	label := "Your score: 3 | Computer score: 5"
	x := render.CenterOn(79/2, label)
	for i, want := range label {
		if r, _, _, _ := g.screen.GetContent(x+i, 12); r != want {
			t.Fatalf("Summary mismatch at offset %d: expected %q, got %q", i, want, r)
		}
	}

	// Surface was cleared before the summary
	p := render.DefaultPalette()
	_, border, _ := p.Border.Decompose()
	if g.bgAt(0, 5) == border {
		t.Error("Border still visible after exit")
	}
}

func TestStepExitStopsIteration(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	g.Start()

	// Ball already past the goal threshold
	g.Ball.Place(vmath.V(2, 12))
	g.push(keyEvent(tcell.KeyEscape))
	g.Step()

	if g.Phase() != PhaseEnded {
		t.Fatal("Expected ended phase after exit")
	}
	if g.Score() != (Result{}) {
		t.Errorf("Exit iteration must not score, got %v", g.Score())
	}
	if g.Ball.Position != vmath.V(2, 12) {
		t.Errorf("Ball must not be reset in the exit iteration, got %v", g.Ball.Position)
	}
}

// Scenario: ball reaches column 2, the computer scores and the ball recenters
func TestGoalComputerScores(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	g.Start()
	g.Ball.Place(vmath.V(2, 17))
	g.Ball.Velocity = vmath.V(-1, 1)

	scorer := g.checkGoal()

	if scorer != g.Right {
		t.Fatalf("Expected the right paddle to score")
	}
	if g.Right.Score != 1 || g.Left.Score != 0 {
		t.Errorf("Expected score 0:1, got %d:%d", g.Left.Score, g.Right.Score)
	}
	if g.Ball.Position != vmath.V(40, 12) {
		t.Errorf("Expected ball recentered to (40,12), got %v", g.Ball.Position)
	}
	if g.Ball.Velocity.X != 1 {
		t.Errorf("Expected horizontal direction reversed, got %v", g.Ball.Velocity)
	}
}

func TestGoalPlayerScores(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	g.Start()
	g.Ball.Place(vmath.V(77, 5))
	g.Ball.Velocity = vmath.V(1, -1)

	if scorer := g.checkGoal(); scorer != g.Left {
		t.Fatalf("Expected the left paddle to score")
	}
	if g.Left.Score != 1 || g.Right.Score != 0 {
		t.Errorf("Expected score 1:0, got %d:%d", g.Left.Score, g.Right.Score)
	}
	if g.Ball.Position.X != 40 {
		t.Errorf("Expected ball column 40, got %d", g.Ball.Position.X)
	}
}

func TestNoGoalInsideField(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 80, 24)
	for _, col := range []int{3, 40, 76} {
		g.Ball.Place(vmath.V(col, 12))
		if scorer := g.checkGoal(); scorer != nil {
			t.Errorf("Column %d scored for %s", col, scorer.Side)
		}
	}
}

func TestGoalThresholdsExclusive(t *testing.T) {
	for width := constants.MinWidth / 2; width <= 400; width++ {
		for col := -2; col <= width+2; col++ {
			left := col < constants.GoalMargin
			right := col > width-constants.GoalMargin-1
			if left && right {
				t.Fatalf("Width %d column %d satisfies both goal thresholds", width, col)
			}
		}
	}
}

// The ball slips past the player's paddle and the miss scores through the normal loop
func TestStepMissScores(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RightPilot.Enabled = false
	g := newTestGame(t, cfg, 80, 24)
	g.Start()

	// Paddle span [9,14]; ball heads for row 16 on the front edge
	g.Ball.Place(vmath.V(8, 15))
	g.Ball.Velocity = vmath.V(-1, 1)

	for i := 0; i < 40 && g.Right.Score == 0; i++ {
		g.Step()
	}

	if g.Right.Score != 1 {
		t.Fatalf("Expected the miss to score for the computer, score %d:%d", g.Left.Score, g.Right.Score)
	}
	if g.Left.Score != 0 {
		t.Errorf("Player must not score, got %d", g.Left.Score)
	}
}

func TestStepPaddleReturnsBall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RightPilot.Enabled = false
	g := newTestGame(t, cfg, 80, 24)
	g.Start()

	g.Ball.Place(vmath.V(9, 9))
	g.Ball.Velocity = vmath.V(-1, 1)

	for i := 0; i < 10; i++ {
		g.Step()
	}

	if g.Ball.Velocity.X != 1 {
		t.Errorf("Expected the ball to bounce off the left paddle, velocity %v", g.Ball.Velocity)
	}
	if g.Right.Score != 0 {
		t.Errorf("Bounce must not score, got %d", g.Right.Score)
	}
}

func TestAutopilotRightTracksInZone(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()

	// Outside the rightmost fifth: no motion
	g.Ball.Place(vmath.V(40, 20))
	g.Step()
	if g.Right.Position.Y != 9 {
		t.Errorf("Right paddle moved with the ball far away: row %d", g.Right.Position.Y)
	}

	// Inside the zone: one row per iteration toward the ball
	g.Ball.Place(vmath.V(70, 20))
	g.Ball.Velocity = vmath.V(-1, 1)
	g.push(nil)
	g.Step()
	if g.Right.Position.Y != 10 {
		t.Errorf("Expected right paddle to step down to 10, got %d", g.Right.Position.Y)
	}
	if g.Left.Position.Y != 9 {
		t.Errorf("Left paddle is human-controlled and must not track, row %d", g.Left.Position.Y)
	}
}

func TestAutopilotPortraitAlwaysTracks(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 30, 40)
	g.Start()
	top := g.Right.Position.Y

	g.Ball.Place(vmath.V(10, 35))
	g.Step()

	if g.Right.Position.Y != top+1 {
		t.Errorf("Portrait surface must track everywhere: expected row %d, got %d", top+1, g.Right.Position.Y)
	}
}

func TestAutopilotDemoMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftPilot.Enabled = true
	g := newTestGame(t, cfg, 79, 24)
	g.Start()

	g.Ball.Place(vmath.V(8, 3))
	g.Step()

	if g.Left.Position.Y != 8 {
		t.Errorf("Demo mode left paddle should step up to 8, got %d", g.Left.Position.Y)
	}
}

func TestAutopilotPolicyShouldTrack(t *testing.T) {
	tests := []struct {
		name   string
		policy AutopilotPolicy
		side   components.Side
		col    int
		w, h   int
		want   bool
	}{
		{"right far", AutopilotPolicy{true, 5}, components.SideRight, 40, 80, 24, false},
		{"right boundary", AutopilotPolicy{true, 5}, components.SideRight, 64, 80, 24, false},
		{"right inside", AutopilotPolicy{true, 5}, components.SideRight, 65, 80, 24, true},
		{"left inside", AutopilotPolicy{true, 5}, components.SideLeft, 15, 80, 24, true},
		{"left boundary", AutopilotPolicy{true, 5}, components.SideLeft, 16, 80, 24, false},
		{"portrait", AutopilotPolicy{true, 5}, components.SideRight, 1, 30, 40, true},
		{"square", AutopilotPolicy{true, 5}, components.SideRight, 1, 40, 40, true},
		{"disabled", AutopilotPolicy{false, 5}, components.SideRight, 70, 80, 24, false},
		{"no zone", AutopilotPolicy{true, 0}, components.SideRight, 1, 80, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.ShouldTrack(tt.side, tt.col, tt.w, tt.h); got != tt.want {
				t.Errorf("ShouldTrack = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepairPassThrough(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()
	_, right, _ := render.DefaultPalette().RightPaddle.Decompose()

	// Ball overlapping the right paddle footprint erased part of it
	g.canvas.Erase(73, 10)
	g.Ball.Place(vmath.V(74, 10))
	g.repairPassThrough()

	if g.bgAt(73, 10) != right {
		t.Error("Right paddle not repaired after the ball passed over it")
	}
}

func TestRepairPassThroughLeftUsesPreviousRow(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()
	_, left, _ := render.DefaultPalette().LeftPaddle.Decompose()

	// Ball was at (4,14) inside the span, ticked to (3,15) just below it
	g.Ball.Place(vmath.V(4, 14))
	g.Ball.Velocity = vmath.V(-1, 1)
	g.Ball.Tick(g.Height, g.Left.View(), g.Right.View())
	if g.bgAt(5, 14) == left {
		t.Fatal("Expected the ball erase to have damaged the paddle")
	}

	g.repairPassThrough()
	if g.bgAt(5, 14) != left {
		t.Error("Left paddle not repaired using the ball's previous row")
	}
}

func TestRepairPassThroughSkipsFrontEdge(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 79, 24)
	g.Start()

	g.canvas.Erase(5, 10)
	g.Ball.Place(vmath.V(7, 10))
	g.repairPassThrough()

	_, left, _ := render.DefaultPalette().LeftPaddle.Decompose()
	if g.bgAt(5, 10) == left {
		t.Error("A ball on the front edge does not overlap the paddle and must not trigger a repair")
	}
}
