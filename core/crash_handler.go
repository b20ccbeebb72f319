package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	restoreMu sync.Mutex
	restoreFn func()
)

// SetCrashRestore registers the terminal restore hook run before a crash report is printed
// The shell registers screen finalization here so the stack trace lands on a sane tty
func SetCrashRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	stack := debug.Stack()

	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()
	if fn != nil {
		fn()
	}

	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDEAD-ARENA CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
