package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/constants"
)

// Canvas is the display surface entities draw onto
// A game cell at column x covers terminal columns x .. x+CellWidth-1
type Canvas struct {
	screen tcell.Screen
	blank  tcell.Style
}

// NewCanvas wraps an initialized screen
func NewCanvas(screen tcell.Screen, blank tcell.Style) *Canvas {
	return &Canvas{screen: screen, blank: blank}
}

// Fill paints one game cell at (x, y) with the style's background
func (c *Canvas) Fill(x, y int, style tcell.Style) {
	for i := 0; i < constants.CellWidth; i++ {
		c.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// Erase paints one game cell at (x, y) with the blank style
func (c *Canvas) Erase(x, y int) {
	c.Fill(x, y, c.blank)
}

// DrawText writes text starting at (x, y), advancing by each rune's display width
// Returns the column after the last rune
func (c *Canvas) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		c.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Clear blanks the entire screen
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// HideCursor hides the terminal cursor
func (c *Canvas) HideCursor() {
	c.screen.HideCursor()
}

// ShowCursor makes the terminal cursor visible at (x, y)
func (c *Canvas) ShowCursor(x, y int) {
	c.screen.ShowCursor(x, y)
}

// Show flushes pending changes to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}
