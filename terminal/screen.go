package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/constants"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

// QuerySize returns the size of the terminal on fd in character cells
func QuerySize(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return width, height, nil
}

// Open verifies stdout is a usable terminal and initializes a tcell screen on it
// Returned screen must be released with Fini
func Open() (tcell.Screen, error) {
	if _, _, err := QuerySize(int(os.Stdout.Fd())); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// SurfaceSize converts a terminal size to the play surface size
// The last game cell spans CellWidth columns, so the surface is narrower than the terminal
func SurfaceSize(termWidth, termHeight int) (width, height int) {
	return max(termWidth-(constants.CellWidth-1), 0), termHeight
}
