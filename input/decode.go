package input

import "github.com/gdamore/tcell/v2"

// Decoder turns raw terminal events into commands
// Decoding is pure: it never touches game state
type Decoder struct {
	keys *KeyTable
}

// NewDecoder creates a decoder over the given bindings; nil selects the defaults
func NewDecoder(keys *KeyTable) *Decoder {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Decoder{keys: keys}
}

// Decode maps an event to exactly one command
// Nil events, unbound keys and any other event kind decode to CommandNone
func (d *Decoder) Decode(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Command{Type: d.keys.Lookup(ev)}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Command{Type: CommandResize, Width: w, Height: h}
	}
	return Command{}
}
