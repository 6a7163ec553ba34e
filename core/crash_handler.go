package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashOut      io.Writer = os.Stderr
	crashExit               = os.Exit
)

// SetCrashTerminal registers the screen to restore before a crash report is printed
// Passing nil unregisters it
func SetCrashTerminal(f Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = f
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
// Intended as: defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if term != nil {
		term.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash still restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
