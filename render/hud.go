package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/constants"
)

// CenterOn returns the column at which text must start to be centered on column x
func CenterOn(x int, text string) int {
	return max(x-runewidth.StringWidth(text)/2, 0)
}

// DrawBorder frames the width x height surface with a one-cell border
func DrawBorder(c *Canvas, width, height int, p Palette) {
	if width <= 0 || height <= 0 {
		return
	}
	for x := 0; x < width; x++ {
		c.Fill(x, 0, p.Border)
		c.Fill(x, height-1, p.Border)
	}
	for y := 1; y < height-1; y++ {
		c.Fill(0, y, p.Border)
		c.Fill(width-1, y, p.Border)
	}
}

// DrawScore writes both score labels onto the top border row,
// the player's centered on the left quarter and the computer's on the right quarter
func DrawScore(c *Canvas, width, left, right int, p Palette) {
	player := fmt.Sprintf(constants.PlayerScoreLabel, left)
	computer := fmt.Sprintf(constants.ComputerScoreLabel, right)

	c.DrawText(CenterOn(width/4, player), 0, player, p.PlayerText)
	c.DrawText(CenterOn(width-width/4, computer), 0, computer, p.ComputerText)
}

// DrawSummary writes the final score line centered on the surface
// Returns the position just below the line, where the cursor is restored
func DrawSummary(c *Canvas, width, height, left, right int, p Palette) (x, y int) {
	label := fmt.Sprintf(constants.SummaryLabel, left, right)
	x = CenterOn(width/2, label)
	y = height / 2
	c.DrawText(x, y, label, p.Summary)
	return x, y + 1
}
