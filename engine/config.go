package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/input"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid config")

// AutopilotPolicy decides when a computer-controlled paddle tracks the ball
type AutopilotPolicy struct {
	Enabled bool

	// ZoneDivisor limits tracking on landscape surfaces (width > height) to the outer
	// 1/ZoneDivisor of the width on the paddle's side; portrait surfaces always track.
	// Zero or negative tracks everywhere
	ZoneDivisor int
}

// Config holds the game tunables
type Config struct {
	// TickInterval is the ball cadence and the upper bound of each input wait
	TickInterval time.Duration

	// Padding is the distance from each side border to its paddle column
	Padding int

	// Seed for the ball direction generator; 0 seeds from the clock
	Seed uint64

	LeftPilot  AutopilotPolicy
	RightPilot AutopilotPolicy

	// Keys overrides the default key bindings when non-nil
	Keys *input.KeyTable
}

// DefaultConfig returns the standard single-player setup: human on the left, computer on the right
func DefaultConfig() Config {
	return Config{
		TickInterval: constants.TickInterval,
		Padding:      constants.Padding,
		RightPilot: AutopilotPolicy{
			Enabled:     true,
			ZoneDivisor: constants.AutopilotZoneDivisor,
		},
		LeftPilot: AutopilotPolicy{
			ZoneDivisor: constants.AutopilotZoneDivisor,
		},
	}
}

// Validate checks the config for values the loop cannot run with
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	if c.Padding < constants.BorderThickness {
		return fmt.Errorf("%w: padding %d is inside the border", ErrInvalidConfig, c.Padding)
	}
	return nil
}

// ShouldTrack reports whether a paddle on side with this policy follows a ball at ballColumn
// on a width x height surface
func (p AutopilotPolicy) ShouldTrack(side components.Side, ballColumn, width, height int) bool {
	if !p.Enabled {
		return false
	}
	if p.ZoneDivisor <= 0 || width <= height {
		return true
	}
	zone := width / p.ZoneDivisor
	if side == components.SideLeft {
		return ballColumn < zone
	}
	return ballColumn > width-zone
}
