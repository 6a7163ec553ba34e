package constants

// Score and summary labels
const (
	PlayerScoreLabel   = "Your score: %d"
	ComputerScoreLabel = "Computer score: %d"
	SummaryLabel       = "Your score: %d | Computer score: %d"
)

// Palette hex values, converted to terminal colors by the render package
const (
	HexBorder      = "#3b5bdb"
	HexBall        = "#4dabf7"
	HexLeftPaddle  = "#2f9e44"
	HexRightPaddle = "#e03131"
	HexPlayerText  = "#69db7c"
	HexCompText    = "#a61e4d"
	HexSummaryText = "#22b8cf"
	HexBlank       = "#000000"
)

// Environment variables
const (
	// DebugEnvVar enables file logging when set to a non-empty value
	DebugEnvVar = "VI_PONG_DEBUG"

	// DemoEnvVar hands the left paddle to the computer as well
	DemoEnvVar = "VI_PONG_DEMO"
)
