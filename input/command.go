package input

import "fmt"

// CommandType discriminates the intents the game loop reacts to
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandMoveUp
	CommandMoveDown
	CommandBack
	CommandNext
	CommandExit
	CommandResize
)

var commandNames = [...]string{
	CommandNone:     "none",
	CommandMoveUp:   "move-up",
	CommandMoveDown: "move-down",
	CommandBack:     "back",
	CommandNext:     "next",
	CommandExit:     "exit",
	CommandResize:   "resize",
}

func (t CommandType) String() string {
	if int(t) < len(commandNames) {
		return commandNames[t]
	}
	return fmt.Sprintf("command(%d)", uint8(t))
}

// Command is one decoded intent
// Width and Height carry the new terminal size for CommandResize and are zero otherwise
type Command struct {
	Type   CommandType
	Width  int
	Height int
}

// None reports whether the event decoded to nothing
func (c Command) None() bool {
	return c.Type == CommandNone
}

func (c Command) String() string {
	if c.Type == CommandResize {
		return fmt.Sprintf("resize(%dx%d)", c.Width, c.Height)
	}
	return c.Type.String()
}
