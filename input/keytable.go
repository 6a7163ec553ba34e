package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to commands
// Several keys may share a command; a key appears at most once
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]CommandType

	// Printable rune bindings, matched case-sensitively
	Runes map[rune]CommandType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]CommandType{
			tcell.KeyUp:     CommandMoveUp,
			tcell.KeyDown:   CommandMoveDown,
			tcell.KeyEnter:  CommandNext,
			tcell.KeyEscape: CommandExit,
			tcell.KeyCtrlC:  CommandExit,
		},

		Runes: map[rune]CommandType{
			'w': CommandMoveUp,
			's': CommandMoveDown,
			'b': CommandBack,
			'n': CommandNext,
		},
	}
}

// Lookup returns the command bound to a key event, or CommandNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) CommandType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
