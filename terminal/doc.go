// Package terminal opens the tcell screen the game draws on and turns its
// blocking event stream into a bounded-wait poll.
//
// The terminal is checked with golang.org/x/term before tcell takes over, so a
// missing TTY is reported as an error instead of a garbled screen.
package terminal
