package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-pong/constants"
)

// Palette holds every style the game draws with
type Palette struct {
	Blank        tcell.Style
	Border       tcell.Style
	Ball         tcell.Style
	LeftPaddle   tcell.Style
	RightPaddle  tcell.Style
	PlayerText   tcell.Style
	ComputerText tcell.Style
	Summary      tcell.Style
}

// HexColor converts a "#rrggbb" string to a terminal color, panicking on malformed input
func HexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("palette color %q: %v", hex, err))
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// DefaultPalette returns the standard color scheme
func DefaultPalette() Palette {
	border := HexColor(constants.HexBorder)
	return Palette{
		Blank:        tcell.StyleDefault,
		Border:       tcell.StyleDefault.Background(border),
		Ball:         tcell.StyleDefault.Background(HexColor(constants.HexBall)),
		LeftPaddle:   tcell.StyleDefault.Background(HexColor(constants.HexLeftPaddle)),
		RightPaddle:  tcell.StyleDefault.Background(HexColor(constants.HexRightPaddle)),
		PlayerText:   tcell.StyleDefault.Foreground(HexColor(constants.HexPlayerText)).Background(border),
		ComputerText: tcell.StyleDefault.Foreground(HexColor(constants.HexCompText)).Background(border),
		Summary:      tcell.StyleDefault.Foreground(HexColor(constants.HexSummaryText)).Bold(true),
	}
}
