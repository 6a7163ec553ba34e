package constants

import "time"

// Game Loop Timing
const (
	// TickInterval is the ball movement cadence and the longest single input wait
	TickInterval = 30 * time.Millisecond
)

// Surface Geometry
const (
	// BorderThickness is the width of the frame drawn around the play field
	BorderThickness = 1

	// CellWidth is the number of terminal columns one game cell spans
	CellWidth = 2

	// Padding is the distance from the side border to the left paddle column
	Padding = 5

	// PaddleHeightDivisor sets paddle height as surface height / divisor
	PaddleHeightDivisor = 4

	// PaddleOffsetDivisor offsets the initial paddle top above center by height / divisor
	PaddleOffsetDivisor = 8

	// MinWidth and MinHeight are the smallest surfaces on which goal thresholds stay disjoint
	// and a paddle still fits inside the border
	MinWidth  = 16
	MinHeight = 8
)

// Collision & Goal Thresholds
const (
	// WallMargin is the row distance from the top/bottom edge at which the ball bounces
	WallMargin = 2

	// FrontEdgeOffset is the column distance between a paddle and its collision column
	FrontEdgeOffset = 2

	// GoalMargin: the ball scores when column < GoalMargin or column > width - GoalMargin - 1
	GoalMargin = 3
)

// Autopilot
const (
	// AutopilotZoneDivisor limits tracking to the outer 1/divisor of the width on landscape surfaces
	AutopilotZoneDivisor = 5
)
